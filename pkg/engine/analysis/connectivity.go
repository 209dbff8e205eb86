package analysis

import (
	"github.com/lintang-b-s/wirenet/pkg/costfunction"
	da "github.com/lintang-b-s/wirenet/pkg/datastructure"
)

type Verdict uint8

const (
	VerdictNotApplicable Verdict = iota
	VerdictHolds
	VerdictViolated
)

func (v Verdict) String() string {
	switch v {
	case VerdictHolds:
		return "holds"
	case VerdictViolated:
		return "violated"
	default:
		return "not applicable"
	}
}

// IsConnected reports whether every vertex is reachable from vertex 0 over wires accepted by filter. An empty
// graph is not applicable.
func IsConnected(graph *da.NetworkGraph, filter WireFilter, costFunction costfunction.CostFunction,
	heapArity int) Verdict {
	if graph.NumberOfVertices() == 0 {
		return VerdictNotApplicable
	}

	sp := NewShortestPath(graph, 0, filter, costFunction, heapArity)
	if sp.VisitedAll() {
		return VerdictHolds
	}
	return VerdictViolated
}

// ResilienceReport is the outcome of CheckTwoVertexResilience. V and W are only meaningful when Verdict is
// VerdictViolated.
type ResilienceReport struct {
	Verdict Verdict
	V, W    da.Index
}

// CheckTwoVertexResilience looks for a pair of vertices whose removal disconnects the remaining ones. Pairs are
// scanned with v as the outer and w as the inner index; a pair and its reverse remove the same vertices, so only
// w > v is tried and the first pair found matches a scan over every ordered pair. Graphs with fewer than 3
// vertices are not applicable.
func CheckTwoVertexResilience(graph *da.NetworkGraph, costFunction costfunction.CostFunction,
	heapArity int) ResilienceReport {
	n := graph.NumberOfVertices()
	if n < 3 {
		return ResilienceReport{Verdict: VerdictNotApplicable}
	}

	for v := 0; v < n; v++ {
		for w := v + 1; w < n; w++ {
			if !connectedWithout(graph, da.Index(v), da.Index(w), costFunction, heapArity) {
				return ResilienceReport{
					Verdict: VerdictViolated,
					V:       da.Index(v),
					W:       da.Index(w),
				}
			}
		}
	}
	return ResilienceReport{Verdict: VerdictHolds}
}

// connectedWithout temporarily removes v and w and checks that a search from any other vertex reaches the rest.
// The graph is restored on return.
func connectedWithout(graph *da.NetworkGraph, v, w da.Index, costFunction costfunction.CostFunction,
	heapArity int) bool {
	removedV := graph.Remove(v)
	defer graph.Restore(removedV)
	removedW := graph.Remove(w)
	defer graph.Restore(removedW)

	probe := probeVertex(v, w)
	sp := NewShortestPath(graph, probe, AllWires, costFunction, heapArity)

	for u := 0; u < graph.NumberOfVertices(); u++ {
		if da.Index(u) == v || da.Index(u) == w {
			continue
		}
		if !sp.Visited(da.Index(u)) {
			return false
		}
	}
	return true
}

// probeVertex returns the smallest vertex index that is neither v nor w.
func probeVertex(v, w da.Index) da.Index {
	probe := da.Index(0)
	for probe == v || probe == w {
		probe++
	}
	return probe
}
