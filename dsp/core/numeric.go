package core

import "math"

const (
	defaultEpsilon = 1e-12

	minNormalFloat32 = 0x1p-126
	minNormalFloat64 = 0x1p-1022
)

// Sample is the set of sample precisions processors are generic over.
type Sample interface {
	float32 | float64
}

// Clamp limits value to the inclusive range [min, max].
func Clamp[T Sample](value, min, max T) T {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// IsSubnormal reports whether x is a non-zero value below the smallest
// normal magnitude of its precision.
func IsSubnormal[T Sample](x T) bool {
	if x == 0 {
		return false
	}

	if x < 0 {
		x = -x
	}

	switch v := any(x).(type) {
	case float32:
		return v < minNormalFloat32
	case float64:
		return v < minNormalFloat64
	}

	return false
}

// SnapToZero replaces a subnormal value with exact zero.
// Subnormal arithmetic is slow on many CPUs; the audible result is unchanged.
func SnapToZero[T Sample](x *T) {
	if IsSubnormal(*x) {
		*x = 0
	}
}

// DBToGain converts dB to linear amplitude (20*log10 convention).
func DBToGain[T Sample](db T) T {
	return T(math.Pow(10, float64(db)/20))
}

// GainToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func GainToDB[T Sample](gain T) T {
	if gain < 0 {
		return T(math.NaN())
	}

	if gain == 0 {
		return T(math.Inf(-1))
	}

	return T(20 * math.Log10(float64(gain)))
}
