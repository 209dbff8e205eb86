package costfunction

import (
	"github.com/lintang-b-s/wirenet/pkg"
)

type EdgeAttributes interface {
	GetLength() float64
	GetMedium() pkg.Medium
	GetBandwidth() int
}

type CostFunction interface {
	GetWeight(e EdgeAttributes) float64
}
