package main

import (
	"fmt"

	"github.com/lintang-b-s/wirenet/pkg/networkparser"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runConvert(cmd *cobra.Command, args []string) error {
	graph, err := networkparser.NewNetworkParser(log).ParseFile(args[0])
	if err != nil {
		return err
	}
	if err := networkparser.WriteGraphFile(args[1], graph); err != nil {
		return err
	}

	log.Info("Network graph written", zap.String("filename", args[1]))
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d vertices and %d wires to %s\n",
		graph.NumberOfVertices(), graph.NumberOfWires(), args[1])
	return nil
}
