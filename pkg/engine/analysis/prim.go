package analysis

import (
	"github.com/lintang-b-s/wirenet/pkg"
	"github.com/lintang-b-s/wirenet/pkg/costfunction"
	da "github.com/lintang-b-s/wirenet/pkg/datastructure"
	"github.com/lintang-b-s/wirenet/pkg/util"
)

// SpanningTree is one component of a SpanningForest.
type SpanningTree struct {
	Root         da.Index
	VisitedOrder []da.Index
	// MinBandwidth is the running minimum over every tree wire selected so far in the whole forest, not only in
	// this component.
	MinBandwidth int
}

// SpanningForest is a minimum latency spanning forest built with Prim's algorithm, one tree per connected
// component, grown from the lowest unvisited vertex index.
type SpanningForest struct {
	graph        *da.NetworkGraph
	costFunction costfunction.CostFunction

	distanceTo []float64
	wireTo     []*da.Wire
	settled    []bool
	pq         *da.IndexedMinHeap

	trees        []SpanningTree
	visitedOrder []da.Index
	treeWires    []*da.Wire
	minBandwidth int
	totalLatency float64
}

func NewSpanningForest(graph *da.NetworkGraph, costFunction costfunction.CostFunction,
	heapArity int) *SpanningForest {
	n := graph.NumberOfVertices()
	sf := &SpanningForest{
		graph:        graph,
		costFunction: costFunction,
		distanceTo:   make([]float64, n),
		wireTo:       make([]*da.Wire, n),
		settled:      make([]bool, n),
		pq:           da.NewIndexedDAryHeap(n, heapArity),
		trees:        make([]SpanningTree, 0),
		visitedOrder: make([]da.Index, 0, n),
		treeWires:    make([]*da.Wire, 0, n),
		minBandwidth: pkg.UNBOUNDED_BANDWIDTH,
	}

	for v := 0; v < n; v++ {
		sf.distanceTo[v] = pkg.INF_WEIGHT
	}

	for v := 0; v < n; v++ {
		if !sf.settled[v] {
			sf.grow(da.Index(v))
		}
	}
	return sf
}

func (sf *SpanningForest) grow(root da.Index) {
	tree := SpanningTree{
		Root:         root,
		VisitedOrder: make([]da.Index, 0),
	}

	sf.distanceTo[root] = 0
	sf.pq.Insert(root, 0)

	for !sf.pq.IsEmpty() {
		v, err := sf.pq.ExtractMin()
		if err != nil {
			panic(err)
		}
		sf.scan(v, &tree)
	}

	tree.MinBandwidth = sf.minBandwidth
	sf.trees = append(sf.trees, tree)
}

func (sf *SpanningForest) scan(v da.Index, tree *SpanningTree) {
	sf.settled[v] = true
	tree.VisitedOrder = append(tree.VisitedOrder, v)
	sf.visitedOrder = append(sf.visitedOrder, v)

	// the wire that pulled v into the tree is final once v is settled
	if e := sf.wireTo[v]; e != nil {
		sf.treeWires = append(sf.treeWires, e)
		sf.minBandwidth = util.Min(sf.minBandwidth, e.GetBandwidth())
		sf.totalLatency += sf.distanceTo[v]
	}

	sf.graph.ForWiresOf(v, func(e *da.Wire) {
		w := e.Other(v)
		if sf.settled[w] {
			return
		}

		latency := sf.costFunction.GetWeight(e)
		if latency >= sf.distanceTo[w] {
			return
		}

		sf.distanceTo[w] = latency
		sf.wireTo[w] = e
		if sf.pq.Contains(w) {
			if err := sf.pq.DecreaseKey(w, latency); err != nil {
				panic(err)
			}
		} else {
			sf.pq.Insert(w, latency)
		}
	})
}

func (sf *SpanningForest) Trees() []SpanningTree {
	return sf.trees
}

func (sf *SpanningForest) NumberOfComponents() int {
	return len(sf.trees)
}

// VisitedOrder lists every vertex exactly once, in the order the forest settled them.
func (sf *SpanningForest) VisitedOrder() []da.Index {
	return sf.visitedOrder
}

func (sf *SpanningForest) TreeWires() []*da.Wire {
	return sf.treeWires
}

// MinBandwidth returns the minimum bandwidth over all tree wires. ok is false when the forest has no wire.
func (sf *SpanningForest) MinBandwidth() (int, bool) {
	return sf.minBandwidth, len(sf.treeWires) > 0
}

func (sf *SpanningForest) TotalLatency() float64 {
	return sf.totalLatency
}

// AverageLatency returns the mean latency of the tree wires. ok is false when the forest has no wire.
func (sf *SpanningForest) AverageLatency() (float64, bool) {
	if len(sf.treeWires) == 0 {
		return 0, false
	}
	return sf.totalLatency / float64(len(sf.treeWires)), true
}
