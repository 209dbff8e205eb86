package analysis

import (
	"math"
	"sort"

	"github.com/lintang-b-s/wirenet/pkg"
	"github.com/lintang-b-s/wirenet/pkg/costfunction"
	da "github.com/lintang-b-s/wirenet/pkg/datastructure"
	"golang.org/x/exp/rand"
)

const testHeapArity = 4

var latencyCost = costfunction.NewLatencyCostFunction()

type wireDef struct {
	a, b      da.Index
	medium    pkg.Medium
	bandwidth int
	length    int
}

func buildGraph(n int, wires []wireDef) *da.NetworkGraph {
	g := da.NewNetworkGraph(n)
	for _, w := range wires {
		g.AddWire(da.NewWire(w.a, w.b, w.medium, w.bandwidth, w.length))
	}
	return g
}

// scenarioGraph: 0-1 copper latency 1, 1-2 optical latency 1, 0-2 copper latency 2, 2-3 copper latency 1.
func scenarioGraph() *da.NetworkGraph {
	return buildGraph(4, []wireDef{
		{0, 1, pkg.COPPER, 100, 230000000},
		{1, 2, pkg.OPTICAL, 50, 200000000},
		{0, 2, pkg.COPPER, 10, 460000000},
		{2, 3, pkg.COPPER, 100, 230000000},
	})
}

func randomGraph(rd *rand.Rand, n, m int) *da.NetworkGraph {
	g := da.NewNetworkGraph(n)
	for i := 0; i < m; i++ {
		a := da.Index(rd.Intn(n))
		b := da.Index(rd.Intn(n))
		if a == b {
			continue
		}
		g.AddWire(da.NewWire(a, b, pkg.Medium(rd.Intn(2)), 1+rd.Intn(1000), 1+rd.Intn(100000)))
	}
	return g
}

func snapshot(g *da.NetworkGraph) [][]*da.Wire {
	snap := make([][]*da.Wire, g.NumberOfVertices())
	for v := 0; v < g.NumberOfVertices(); v++ {
		snap[v] = append([]*da.Wire(nil), g.Adjacent(da.Index(v))...)
	}
	return snap
}

// floydWarshall computes all pairs lowest latency over wires accepted by filter.
func floydWarshall(g *da.NetworkGraph, filter WireFilter) [][]float64 {
	n := g.NumberOfVertices()
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			dist[i][j] = math.Inf(1)
		}
		dist[i][i] = 0
	}
	for _, e := range g.Wires() {
		if !filter(e) {
			continue
		}
		l := latencyCost.GetWeight(e)
		a, b := e.GetStart(), e.GetEnd()
		if l < dist[a][b] {
			dist[a][b] = l
			dist[b][a] = l
		}
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if dist[i][k]+dist[k][j] < dist[i][j] {
					dist[i][j] = dist[i][k] + dist[k][j]
				}
			}
		}
	}
	return dist
}

// kruskalTotalLatency returns the total latency of a minimum spanning forest.
func kruskalTotalLatency(g *da.NetworkGraph) float64 {
	wires := g.Wires()
	sort.SliceStable(wires, func(i, j int) bool {
		return latencyCost.GetWeight(wires[i]) < latencyCost.GetWeight(wires[j])
	})

	parent := make([]int, g.NumberOfVertices())
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}

	total := 0.0
	for _, e := range wires {
		ra, rb := find(int(e.GetStart())), find(int(e.GetEnd()))
		if ra == rb {
			continue
		}
		parent[ra] = rb
		total += latencyCost.GetWeight(e)
	}
	return total
}
