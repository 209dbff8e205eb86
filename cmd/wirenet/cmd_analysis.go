package main

import (
	"strconv"

	"github.com/lintang-b-s/wirenet/pkg/util"
	"github.com/spf13/cobra"
)

func runPath(cmd *cobra.Command, args []string) error {
	source, err := strconv.Atoi(args[1])
	if err != nil {
		return util.WrapErrorf(err, util.ErrBadParamInput, "source must be a vertex index")
	}
	target, err := strconv.Atoi(args[2])
	if err != nil {
		return util.WrapErrorf(err, util.ErrBadParamInput, "target must be a vertex index")
	}

	e, err := newEngine(args[0])
	if err != nil {
		return err
	}
	result, err := e.LowestLatencyPath(source, target, copperOnly)
	if err != nil {
		return err
	}
	printPath(cmd.OutOrStdout(), result)
	return nil
}

func runCopper(cmd *cobra.Command, args []string) error {
	e, err := newEngine(args[0])
	if err != nil {
		return err
	}
	printCopperOnly(cmd.OutOrStdout(), e.CopperOnlyConnected())
	return nil
}

func runSpanning(cmd *cobra.Command, args []string) error {
	e, err := newEngine(args[0])
	if err != nil {
		return err
	}
	printSpanningForest(cmd.OutOrStdout(), e.LowestAverageLatencySpanningForest())
	return nil
}

func runResilience(cmd *cobra.Command, args []string) error {
	e, err := newEngine(args[0])
	if err != nil {
		return err
	}
	printResilience(cmd.OutOrStdout(), e.TwoVertexResilience())
	return nil
}
