package fastmath

import (
	"math"

	"github.com/meko-christian/algo-approx"
)

// tanhSaturation is where tanh equals ±1 in float64.
const tanhSaturation = 20.0

// Tanh approximates the hyperbolic tangent as 1 - 2/(e^(2x)+1).
func Tanh(x float64) float64 {
	switch {
	case x > tanhSaturation:
		return 1
	case x < -tanhSaturation:
		return -1
	case math.IsNaN(x):
		return x
	}

	return 1 - 2/(approx.FastExp(2*x)+1)
}
