package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	da "github.com/lintang-b-s/wirenet/pkg/datastructure"
	"github.com/lintang-b-s/wirenet/pkg/engine"
	"github.com/lintang-b-s/wirenet/pkg/engine/analysis"
)

func formatLatency(latency float64) string {
	return strconv.FormatFloat(latency, 'g', -1, 64)
}

func formatBandwidth(bandwidth int) string {
	if engine.IsUnboundedBandwidth(bandwidth) {
		return "unbounded"
	}
	return strconv.Itoa(bandwidth)
}

func formatVertices(vertices []da.Index) string {
	ss := make([]string, 0, len(vertices))
	for _, v := range vertices {
		ss = append(ss, strconv.FormatUint(uint64(v), 10))
	}
	return strings.Join(ss, " ")
}

func printPath(w io.Writer, result engine.PathResult) {
	if !result.Found {
		fmt.Fprintln(w, "There is no path between the vertices entered.")
		return
	}
	fmt.Fprintf(w, "Best Path: %s\n", formatVertices(result.Path))
	fmt.Fprintf(w, "Total Latency of Path: %s\n", formatLatency(result.Latency))
	fmt.Fprintf(w, "Bandwidth of Path: %s\n", formatBandwidth(result.Bandwidth))
}

func printCopperOnly(w io.Writer, verdict analysis.Verdict) {
	switch verdict {
	case analysis.VerdictHolds:
		fmt.Fprintln(w, "The graph is copper only connected.")
	case analysis.VerdictViolated:
		fmt.Fprintln(w, "The graph is not copper only connected.")
	default:
		fmt.Fprintln(w, "The graph has no vertices, copper only connectivity is not applicable.")
	}
}

func printSpanningForest(w io.Writer, sf *analysis.SpanningForest) {
	if sf.NumberOfComponents() == 0 {
		fmt.Fprintln(w, "The graph has no vertices, there is no spanning tree.")
		return
	}
	if sf.NumberOfComponents() > 1 {
		fmt.Fprintf(w, "The graph is not connected, the spanning forest has %d trees.\n", sf.NumberOfComponents())
	}

	for i, tree := range sf.Trees() {
		fmt.Fprintf(w, "Tree %d: %s\n", i+1, formatVertices(tree.VisitedOrder))
		fmt.Fprintf(w, "Minimum Bandwidth: %s\n", formatBandwidth(tree.MinBandwidth))
	}

	if avg, ok := sf.AverageLatency(); ok {
		fmt.Fprintf(w, "Average Latency: %s\n", formatLatency(avg))
	}
}

func printResilience(w io.Writer, report analysis.ResilienceReport) {
	switch report.Verdict {
	case analysis.VerdictViolated:
		fmt.Fprintf(w, "Removal of %d and %d disconnected the graph.\n", report.V, report.W)
	case analysis.VerdictHolds:
		fmt.Fprintln(w, "The removal of any two vertices does not disconnect the graph.")
	default:
		fmt.Fprintln(w, "The graph has fewer than 3 vertices, removing two vertices is not applicable.")
	}
}
