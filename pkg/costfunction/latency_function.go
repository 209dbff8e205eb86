package costfunction

import (
	"github.com/lintang-b-s/wirenet/pkg"
)

// LatencyFunction weights a wire by its propagation delay.
type LatencyFunction struct {
}

func NewLatencyCostFunction() *LatencyFunction {
	return &LatencyFunction{}
}

func (lf *LatencyFunction) GetWeight(e EdgeAttributes) float64 {
	return Latency(e.GetLength(), e.GetMedium())
}

// Latency returns length / speed(medium).
func Latency(length float64, medium pkg.Medium) float64 {
	return length / medium.Speed()
}
