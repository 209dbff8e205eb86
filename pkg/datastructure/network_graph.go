package datastructure

import (
	"fmt"
	"slices"

	"github.com/lintang-b-s/wirenet/pkg/util"
)

// NetworkGraph is an undirected adjacency-list graph. adjacency[v] holds the wires touching v in insertion order,
// which is the order every traversal scans them in.
type NetworkGraph struct {
	adjacency     [][]*Wire
	numberOfWires int
}

func NewNetworkGraph(numberOfVertices int) *NetworkGraph {
	util.AssertPanic(numberOfVertices >= 0, "number of vertices must not be negative")

	adjacency := make([][]*Wire, numberOfVertices)
	for v := range adjacency {
		adjacency[v] = make([]*Wire, 0)
	}
	return &NetworkGraph{
		adjacency: adjacency,
	}
}

func (g *NetworkGraph) NumberOfVertices() int {
	return len(g.adjacency)
}

// NumberOfWires counts the wires currently attached, temporarily removed wires are not counted.
func (g *NetworkGraph) NumberOfWires() int {
	return g.numberOfWires
}

func (g *NetworkGraph) assertVertex(v Index) {
	if int(v) >= len(g.adjacency) {
		panic(fmt.Sprintf("vertex %d out of range [0, %d)", v, len(g.adjacency)))
	}
}

func (g *NetworkGraph) AddWire(wire *Wire) {
	g.assertVertex(wire.start)
	g.assertVertex(wire.end)

	g.adjacency[wire.start] = append(g.adjacency[wire.start], wire)
	g.adjacency[wire.end] = append(g.adjacency[wire.end], wire)
	g.numberOfWires++
}

func (g *NetworkGraph) AddWires(wires []*Wire) {
	for _, wire := range wires {
		g.AddWire(wire)
	}
}

// Adjacent returns the current bucket of v. The slice is owned by the graph.
func (g *NetworkGraph) Adjacent(v Index) []*Wire {
	g.assertVertex(v)
	return g.adjacency[v]
}

func (g *NetworkGraph) Degree(v Index) int {
	g.assertVertex(v)
	return len(g.adjacency[v])
}

func (g *NetworkGraph) ForWiresOf(v Index, handle func(wire *Wire)) {
	g.assertVertex(v)
	for _, wire := range g.adjacency[v] {
		handle(wire)
	}
}

// Wires returns every attached wire once, ordered by its start vertex bucket.
func (g *NetworkGraph) Wires() []*Wire {
	wires := make([]*Wire, 0, g.numberOfWires)
	for v, bucket := range g.adjacency {
		for _, wire := range bucket {
			if wire.start == Index(v) {
				wires = append(wires, wire)
			}
		}
	}
	return wires
}

// Removal is the token returned by NetworkGraph.Remove. It remembers where every detached wire sat in the bucket
// of its other endpoint so Restore can put it back at the same position.
type Removal struct {
	vertex   Index
	wires    []*Wire
	otherPos []int
	restored bool
}

func (r *Removal) GetVertex() Index {
	return r.vertex
}

func (r *Removal) GetWires() []*Wire {
	return r.wires
}

// Remove detaches every wire touching v. Removals must be restored in reverse order of removal.
func (g *NetworkGraph) Remove(v Index) *Removal {
	g.assertVertex(v)

	removed := g.adjacency[v]
	g.adjacency[v] = make([]*Wire, 0)

	otherPos := make([]int, len(removed))
	for i, wire := range removed {
		w := wire.Other(v)
		pos := slices.Index(g.adjacency[w], wire)
		util.AssertPanic(pos >= 0, "wire missing from the bucket of its other endpoint")

		g.adjacency[w] = slices.Delete(g.adjacency[w], pos, pos+1)
		otherPos[i] = pos
	}
	g.numberOfWires -= len(removed)

	return &Removal{
		vertex:   v,
		wires:    removed,
		otherPos: otherPos,
	}
}

// Restore re-attaches the wires detached by Remove, reproducing the adjacency order from before the removal.
func (g *NetworkGraph) Restore(r *Removal) {
	util.AssertPanic(!r.restored, "removal already restored")
	g.assertVertex(r.vertex)
	util.AssertPanic(len(g.adjacency[r.vertex]) == 0, "restoring into a vertex that has wires attached")

	for i := len(r.wires) - 1; i >= 0; i-- {
		wire := r.wires[i]
		w := wire.Other(r.vertex)
		g.adjacency[w] = slices.Insert(g.adjacency[w], r.otherPos[i], wire)
	}
	g.adjacency[r.vertex] = r.wires
	g.numberOfWires += len(r.wires)
	r.restored = true
}
