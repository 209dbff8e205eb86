package datastructure

import (
	"fmt"

	"github.com/lintang-b-s/wirenet/pkg"
)

type Index uint32

// Wire is an undirected physical link between two vertices. Both endpoint buckets of a NetworkGraph share the same
// *Wire, nothing mutates it after construction.
type Wire struct {
	start, end Index
	medium     pkg.Medium
	bandwidth  int
	length     int
}

func NewWire(start, end Index, medium pkg.Medium, bandwidth, length int) *Wire {
	return &Wire{
		start:     start,
		end:       end,
		medium:    medium,
		bandwidth: bandwidth,
		length:    length,
	}
}

func (w *Wire) GetStart() Index {
	return w.start
}

func (w *Wire) GetEnd() Index {
	return w.end
}

func (w *Wire) GetMedium() pkg.Medium {
	return w.medium
}

func (w *Wire) GetBandwidth() int {
	return w.bandwidth
}

func (w *Wire) GetLength() float64 {
	return float64(w.length)
}

func (w *Wire) GetRawLength() int {
	return w.length
}

func (w *Wire) IsCopper() bool {
	return w.medium == pkg.COPPER
}

// Other returns the endpoint of w that is not v.
func (w *Wire) Other(v Index) Index {
	if v == w.start {
		return w.end
	}
	if v != w.end {
		panic(fmt.Sprintf("vertex %d is not an endpoint of wire %v", v, w))
	}
	return w.start
}

func (w *Wire) String() string {
	return fmt.Sprintf("%d-%d %s bw=%d len=%d", w.start, w.end, w.medium, w.bandwidth, w.length)
}
