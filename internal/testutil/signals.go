package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-waveshaper/dsp/core"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine[T core.Sample](freqHz, sampleRate, amplitude float64, length int) []T {
	out := make([]T, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = T(amplitude * math.Sin(step*float64(i)))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise[T core.Sample](seed int64, amplitude float64, length int) []T {
	out := make([]T, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = T((rng.Float64()*2 - 1) * amplitude)
	}
	return out
}

// Ramp generates length evenly spaced values from lo to hi inclusive.
func Ramp[T core.Sample](lo, hi float64, length int) []T {
	out := make([]T, length)
	if length == 1 {
		out[0] = T(lo)
		return out
	}
	step := (hi - lo) / float64(length-1)
	for i := range out {
		out[i] = T(lo + step*float64(i))
	}
	return out
}
