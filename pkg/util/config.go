package util

import (
	"errors"
	"fmt"

	"github.com/lintang-b-s/wirenet/pkg"
	"github.com/spf13/viper"
)

const (
	HEAP_ARITY_KEY               = "HEAP_ARITY"
	SHORTEST_PATH_CACHE_SIZE_KEY = "SHORTEST_PATH_CACHE_SIZE"
	LOG_DEVELOPMENT_KEY          = "LOG_DEVELOPMENT"
)

func SetConfigDefaults() {
	viper.SetDefault(HEAP_ARITY_KEY, pkg.DEFAULT_HEAP_ARITY)
	viper.SetDefault(SHORTEST_PATH_CACHE_SIZE_KEY, pkg.DEFAULT_SHORTEST_PATH_CACHE_SIZE)
	viper.SetDefault(LOG_DEVELOPMENT_KEY, false)
}

// ReadConfig loads config.yaml from configPath (or ./data/ when empty). A missing config file is not an error,
// the defaults registered by SetConfigDefaults are used instead.
func ReadConfig(configPath string) error {
	SetConfigDefaults()

	if configPath == "" {
		configPath = "./data/"
	}
	viper.SetConfigName("config")
	viper.AddConfigPath(configPath)
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}
