package waveshaper

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-waveshaper/dsp/core"
	"github.com/cwbudde/algo-waveshaper/dsp/effects/internal/fastmath"
)

// ShaperType selects the transfer curve applied to the driven signal.
type ShaperType int

const (
	// HardClip clamps the driven signal to [-1, 1].
	HardClip ShaperType = iota
	// SoftClip saturates smoothly through tanh.
	SoftClip
	// SinoidFold maps through sine; past ±π/2 the output folds back.
	SinoidFold
)

var shaperNames = [...]string{
	HardClip:   "hardclip",
	SoftClip:   "softclip",
	SinoidFold: "sinoidfold",
}

// ShaperTypes returns every curve in declaration order.
func ShaperTypes() []ShaperType {
	return []ShaperType{HardClip, SoftClip, SinoidFold}
}

// Valid reports whether t names a known curve.
func (t ShaperType) Valid() bool {
	return t >= HardClip && t <= SinoidFold
}

func (t ShaperType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("ShaperType(%d)", int(t))
	}

	return shaperNames[t]
}

// ParseShaperType resolves a case-insensitive curve name. Dashes and
// underscores are ignored, so "soft-clip" and "SOFT_CLIP" both match.
func ParseShaperType(name string) (ShaperType, error) {
	key := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(name))
	for i, n := range shaperNames {
		if n == key {
			return ShaperType(i), nil
		}
	}

	return 0, fmt.Errorf("waveshaper: unknown shaper type %q", name)
}

// ApproxMode selects exact vs fast evaluation of transcendental curves.
type ApproxMode int

const (
	// ApproxExact evaluates curves with the math package.
	ApproxExact ApproxMode = iota
	// ApproxFast evaluates SoftClip with an exponential approximation.
	// HardClip and SinoidFold are unaffected.
	ApproxFast
)

// Valid reports whether m names a known mode.
func (m ApproxMode) Valid() bool {
	return m == ApproxExact || m == ApproxFast
}

// Shape evaluates the transfer curve t at x with no drive and no mix.
func Shape[T core.Sample](t ShaperType, x T) T {
	return shape(t, ApproxExact, x)
}

// shape is the curve dispatch. Every ShaperType needs a case here.
func shape[T core.Sample](t ShaperType, mode ApproxMode, x T) T {
	switch t {
	case HardClip:
		return core.Clamp(x, -1, 1)
	case SoftClip:
		if mode == ApproxFast {
			return T(fastmath.Tanh(float64(x)))
		}

		return T(math.Tanh(float64(x)))
	case SinoidFold:
		return T(math.Sin(float64(x)))
	}

	return x
}
