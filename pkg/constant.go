package pkg

import (
	"math"
	"strings"
)

// enum of wire medium
type Medium uint8

const (
	COPPER Medium = iota
	OPTICAL
	UNKNOWN_MEDIUM
)

// propagation speed of each medium, in length units per second
const (
	COPPER_SPEED  float64 = 230000000.0
	OPTICAL_SPEED float64 = 200000000.0
)

const (
	INF_WEIGHT = math.MaxFloat64

	// bandwidth bottleneck of a path that has no wire yet (the source itself)
	UNBOUNDED_BANDWIDTH = math.MaxInt
)

const (
	DEFAULT_HEAP_ARITY               = 4
	DEFAULT_SHORTEST_PATH_CACHE_SIZE = 1024
)

func (m Medium) String() string {
	switch m {
	case COPPER:
		return "copper"
	case OPTICAL:
		return "optical"
	default:
		return "unknown"
	}
}

// Speed returns the propagation speed of the medium.
func (m Medium) Speed() float64 {
	switch m {
	case COPPER:
		return COPPER_SPEED
	default:
		return OPTICAL_SPEED
	}
}

func GetMedium(medium string) Medium {
	switch strings.ToLower(medium) {
	case "copper":
		return COPPER
	case "optical":
		return OPTICAL
	default:
		return UNKNOWN_MEDIUM
	}
}
