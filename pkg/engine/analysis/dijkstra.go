package analysis

import (
	"github.com/lintang-b-s/wirenet/pkg"
	"github.com/lintang-b-s/wirenet/pkg/costfunction"
	da "github.com/lintang-b-s/wirenet/pkg/datastructure"
	"github.com/lintang-b-s/wirenet/pkg/util"
)

// ShortestPath holds one single-source lowest latency search. All per-vertex state is owned by the instance and
// the search runs to completion inside NewShortestPath.
type ShortestPath struct {
	graph        *da.NetworkGraph
	costFunction costfunction.CostFunction
	filter       WireFilter
	source       da.Index

	distanceTo  []float64
	bandwidthTo []int // minimum bandwidth along the best known path
	wireTo      []*da.Wire
	settled     []bool

	pq *da.IndexedMinHeap

	numSettledNodes int
}

func NewShortestPath(graph *da.NetworkGraph, source da.Index, filter WireFilter,
	costFunction costfunction.CostFunction, heapArity int) *ShortestPath {
	n := graph.NumberOfVertices()
	util.AssertPanic(int(source) < n, "source vertex out of range")

	if filter == nil {
		filter = AllWires
	}

	sp := &ShortestPath{
		graph:        graph,
		costFunction: costFunction,
		filter:       filter,
		source:       source,
		distanceTo:   make([]float64, n),
		bandwidthTo:  make([]int, n),
		wireTo:       make([]*da.Wire, n),
		settled:      make([]bool, n),
		pq:           da.NewIndexedDAryHeap(n, heapArity),
	}

	for v := 0; v < n; v++ {
		sp.distanceTo[v] = pkg.INF_WEIGHT
		sp.bandwidthTo[v] = pkg.UNBOUNDED_BANDWIDTH
	}

	sp.run()
	return sp
}

func (sp *ShortestPath) run() {
	sp.distanceTo[sp.source] = 0
	sp.pq.Insert(sp.source, 0)

	for !sp.pq.IsEmpty() {
		v, err := sp.pq.ExtractMin()
		if err != nil {
			panic(err)
		}
		sp.scan(v)
	}
}

// scan settles v and relaxes every wire of v accepted by the filter. A path to w replaces the current one when it
// is strictly faster, or equally fast with a wider bottleneck.
func (sp *ShortestPath) scan(v da.Index) {
	sp.settled[v] = true
	sp.numSettledNodes++

	sp.graph.ForWiresOf(v, func(e *da.Wire) {
		if !sp.filter(e) {
			return
		}

		w := e.Other(v)
		if sp.settled[w] {
			return
		}

		newDist := sp.distanceTo[v] + sp.costFunction.GetWeight(e)
		newBandwidth := util.Min(sp.bandwidthTo[v], e.GetBandwidth())

		if newDist > sp.distanceTo[w] ||
			(newDist == sp.distanceTo[w] && newBandwidth <= sp.bandwidthTo[w]) {
			return
		}

		sp.distanceTo[w] = newDist
		sp.bandwidthTo[w] = newBandwidth
		sp.wireTo[w] = e

		if sp.pq.Contains(w) {
			if err := sp.pq.DecreaseKey(w, newDist); err != nil {
				panic(err)
			}
		} else {
			sp.pq.Insert(w, newDist)
		}
	})
}

func (sp *ShortestPath) Source() da.Index {
	return sp.source
}

func (sp *ShortestPath) NumberOfSettledNodes() int {
	return sp.numSettledNodes
}

func (sp *ShortestPath) Visited(v da.Index) bool {
	return sp.settled[v]
}

// VisitedAll reports whether the search reached every vertex of the graph.
func (sp *ShortestPath) VisitedAll() bool {
	return sp.numSettledNodes == len(sp.settled)
}

// Distance returns the lowest latency from the source to v, pkg.INF_WEIGHT if v is unreachable.
func (sp *ShortestPath) Distance(v da.Index) float64 {
	return sp.distanceTo[v]
}

// Bandwidth returns the bottleneck bandwidth of the lowest latency path to v. It is pkg.UNBOUNDED_BANDWIDTH for
// the source and for unreachable vertices.
func (sp *ShortestPath) Bandwidth(v da.Index) int {
	return sp.bandwidthTo[v]
}

func (sp *ShortestPath) WireTo(v da.Index) *da.Wire {
	return sp.wireTo[v]
}

// PathWiresTo returns the wires of the lowest latency path from the source to target, in travel order.
func (sp *ShortestPath) PathWiresTo(target da.Index) ([]*da.Wire, bool) {
	if !sp.settled[target] {
		return nil, false
	}

	wires := make([]*da.Wire, 0)
	for v := target; v != sp.source; {
		e := sp.wireTo[v]
		wires = append(wires, e)
		v = e.Other(v)
	}
	return util.ReverseG(wires), true
}

// PathTo returns the vertices of the lowest latency path from the source to target, both inclusive.
func (sp *ShortestPath) PathTo(target da.Index) ([]da.Index, bool) {
	wires, ok := sp.PathWiresTo(target)
	if !ok {
		return nil, false
	}

	path := make([]da.Index, 0, len(wires)+1)
	path = append(path, sp.source)
	v := sp.source
	for _, e := range wires {
		v = e.Other(v)
		path = append(path, v)
	}
	return path, true
}
