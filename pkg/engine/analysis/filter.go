package analysis

import (
	da "github.com/lintang-b-s/wirenet/pkg/datastructure"
)

// WireFilter decides whether a traversal may use a wire. Rejected wires are treated as absent.
type WireFilter func(wire *da.Wire) bool

func AllWires(wire *da.Wire) bool {
	return true
}

func CopperOnly(wire *da.Wire) bool {
	return wire.IsCopper()
}
