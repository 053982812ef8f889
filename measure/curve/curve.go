// Package curve samples static transfer curves of per-sample processors
// and classifies their shape.
package curve

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Processor is anything that shapes one sample of one channel.
type Processor interface {
	ProcessSample(channel int, x float64) float64
}

// Curve is a sampled input -> output mapping with ascending In.
type Curve struct {
	In  []float64
	Out []float64
}

// Sample evaluates fn on n evenly spaced inputs spanning [lo, hi].
func Sample(fn func(float64) float64, lo, hi float64, n int) (Curve, error) {
	if n < 2 {
		return Curve{}, fmt.Errorf("curve: need at least 2 points: %d", n)
	}

	if !(lo < hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return Curve{}, fmt.Errorf("curve: range must be finite with lo < hi: [%g, %g]", lo, hi)
	}

	c := Curve{
		In:  floats.Span(make([]float64, n), lo, hi),
		Out: make([]float64, n),
	}

	for i, x := range c.In {
		c.Out[i] = fn(x)
	}

	return c, nil
}

// SampleProcessor samples channel 0 of p over [lo, hi].
func SampleProcessor(p Processor, lo, hi float64, n int) (Curve, error) {
	return Sample(func(x float64) float64 { return p.ProcessSample(0, x) }, lo, hi, n)
}

// Len returns the number of points.
func (c Curve) Len() int { return len(c.In) }

// Peak returns the largest output magnitude.
func (c Curve) Peak() float64 {
	if len(c.Out) == 0 {
		return 0
	}

	return math.Max(floats.Max(c.Out), -floats.Min(c.Out))
}

// Range returns the smallest and largest output.
func (c Curve) Range() (lo, hi float64) {
	if len(c.Out) == 0 {
		return 0, 0
	}

	return floats.Min(c.Out), floats.Max(c.Out)
}

// IsMonotonic reports whether Out never decreases as In increases.
func (c Curve) IsMonotonic() bool {
	for i := 1; i < len(c.Out); i++ {
		if c.Out[i] < c.Out[i-1] {
			return false
		}
	}

	return true
}

// FoldCount counts direction reversals of Out, the signature of a
// wave-folding curve. Flat stretches do not count as reversals.
func (c Curve) FoldCount() int {
	folds := 0
	dir := 0

	for i := 1; i < len(c.Out); i++ {
		d := c.Out[i] - c.Out[i-1]

		var s int
		switch {
		case d > 0:
			s = 1
		case d < 0:
			s = -1
		default:
			continue
		}

		if dir != 0 && s != dir {
			folds++
		}

		dir = s
	}

	return folds
}

// MaxDeviation returns the largest |Out-In|, how far the curve departs from
// the identity line.
func (c Curve) MaxDeviation() float64 {
	if len(c.In) == 0 {
		return 0
	}

	diff := make([]float64, len(c.Out))
	floats.SubTo(diff, c.Out, c.In)

	return floats.Norm(diff, math.Inf(1))
}
