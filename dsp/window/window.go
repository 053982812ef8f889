// Package window generates the analysis windows used for harmonic
// measurement of shaped signals.
package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function. The zero value is unset and lets
// consumers choose their own default.
type Type int

const (
	TypeRectangular Type = iota + 1
	TypeHann
	// TypeBlackmanHarris is the 4-term Blackman-Harris window (-92 dB sidelobes).
	TypeBlackmanHarris
)

var blackmanHarrisCoeffs = [4]float64{0.35875, 0.48829, 0.14128, 0.01168}

// Option configures window generation.
type Option func(*config)

type config struct {
	periodic bool
}

// WithPeriodic configures periodic form (FFT framing) instead of symmetric form.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Generate returns size coefficients of window t. Unknown types yield a
// rectangular window.
func Generate(t Type, size int, opts ...Option) []float64 {
	if size <= 0 {
		return nil
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, size)
	if size == 1 {
		out[0] = 1
		return out
	}

	denom := float64(size - 1)
	if cfg.periodic {
		denom = float64(size)
	}

	for i := range out {
		out[i] = eval(t, float64(i)/denom)
	}

	return out
}

// Apply multiplies buf in place by window t.
func Apply(t Type, buf []float64, opts ...Option) {
	if len(buf) == 0 {
		return
	}

	vecmath.MulBlockInPlace(buf, Generate(t, len(buf), opts...))
}

// ApplyCoefficientsInPlace multiplies samples with coeffs in place.
func ApplyCoefficientsInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}

// CoherentGain returns the mean coefficient, the amplitude scale a window
// applies to a bin-centred sinusoid.
func CoherentGain(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}

	return sum / float64(len(coeffs)), nil
}

// FirstMinimumBins returns the main-lobe half width in bins, used to size
// the capture region around a spectral peak.
func FirstMinimumBins(t Type) int {
	switch t {
	case TypeHann:
		return 2
	case TypeBlackmanHarris:
		return 4
	default:
		return 1
	}
}

func eval(t Type, x float64) float64 {
	switch t {
	case TypeHann:
		return 0.5 - 0.5*math.Cos(2*math.Pi*x)
	case TypeBlackmanHarris:
		a := blackmanHarrisCoeffs
		return a[0] - a[1]*math.Cos(2*math.Pi*x) + a[2]*math.Cos(4*math.Pi*x) - a[3]*math.Cos(6*math.Pi*x)
	default:
		return 1
	}
}
