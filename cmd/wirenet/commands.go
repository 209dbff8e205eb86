package main

import (
	"github.com/lintang-b-s/wirenet/pkg/engine"
	"github.com/lintang-b-s/wirenet/pkg/logger"
	"github.com/lintang-b-s/wirenet/pkg/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	configDir  string
	copperOnly bool

	log *zap.Logger

	rootCmd = &cobra.Command{
		Use:   "wirenet",
		Short: "Analyze latency, bandwidth and resilience of a copper/optical wire network",
		Long: `wirenet reads a network description (vertex count followed by one
"start end medium bandwidth length" line per wire) and answers lowest latency
path, copper-only connectivity, spanning forest and two-vertex removal queries.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if log != nil {
				_ = log.Sync()
			}
		},
	}

	pathCmd = &cobra.Command{
		Use:   "path [graph-file] [source] [target]",
		Short: "Find the lowest latency path between two vertices",
		Args:  cobra.ExactArgs(3),
		RunE:  runPath, // Defined in cmd_analysis.go
	}

	copperCmd = &cobra.Command{
		Use:   "copper [graph-file]",
		Short: "Check whether the network is connected using copper wires only",
		Args:  cobra.ExactArgs(1),
		RunE:  runCopper, // Defined in cmd_analysis.go
	}

	spanningCmd = &cobra.Command{
		Use:   "spanning [graph-file]",
		Short: "Find the lowest average latency spanning forest",
		Args:  cobra.ExactArgs(1),
		RunE:  runSpanning, // Defined in cmd_analysis.go
	}

	resilienceCmd = &cobra.Command{
		Use:   "resilience [graph-file]",
		Short: "Check whether removing any two vertices disconnects the network",
		Args:  cobra.ExactArgs(1),
		RunE:  runResilience, // Defined in cmd_analysis.go
	}

	menuCmd = &cobra.Command{
		Use:   "menu [graph-file]",
		Short: "Start the interactive analysis menu",
		Args:  cobra.ExactArgs(1),
		RunE:  runMenu, // Defined in cmd_menu.go
	}

	convertCmd = &cobra.Command{
		Use:   "convert [input-graph-file] [output-graph-file]",
		Short: "Rewrite a graph file, compressing or decompressing by the .bz2 suffix",
		Args:  cobra.ExactArgs(2),
		RunE:  runConvert, // Defined in cmd_convert.go
	}
)

func init() {
	util.SetConfigDefaults()

	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "./data/", "directory holding config.yaml")
	rootCmd.PersistentFlags().Int("heap-arity", 0, "arity of the priority queue heap (overrides HEAP_ARITY)")
	rootCmd.PersistentFlags().Int("cache-size", 0,
		"number of shortest path trees kept in memory (overrides SHORTEST_PATH_CACHE_SIZE)")
	rootCmd.PersistentFlags().Bool("dev", false, "human readable debug logging (overrides LOG_DEVELOPMENT)")

	pathCmd.Flags().BoolVar(&copperOnly, "copper-only", false, "only use copper wires")

	rootCmd.AddCommand(pathCmd, copperCmd, spanningCmd, resilienceCmd, menuCmd, convertCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	if err := util.ReadConfig(configDir); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("heap-arity") {
		_ = viper.BindPFlag(util.HEAP_ARITY_KEY, flags.Lookup("heap-arity"))
	}
	if flags.Changed("cache-size") {
		_ = viper.BindPFlag(util.SHORTEST_PATH_CACHE_SIZE_KEY, flags.Lookup("cache-size"))
	}
	if flags.Changed("dev") {
		_ = viper.BindPFlag(util.LOG_DEVELOPMENT_KEY, flags.Lookup("dev"))
	}

	var err error
	log, err = logger.New(viper.GetBool(util.LOG_DEVELOPMENT_KEY))
	return err
}

func newEngine(graphFilePath string) (*engine.Engine, error) {
	return engine.NewEngineFromFile(graphFilePath, log, viper.GetInt(util.HEAP_ARITY_KEY),
		viper.GetInt(util.SHORTEST_PATH_CACHE_SIZE_KEY))
}
