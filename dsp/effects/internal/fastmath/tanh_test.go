package fastmath

import (
	"math"
	"testing"
)

func TestTanhAccuracy(t *testing.T) {
	maxErr := 0.0
	for i := -4000; i <= 4000; i++ {
		x := float64(i) * 0.005
		err := math.Abs(Tanh(x) - math.Tanh(x))
		maxErr = math.Max(maxErr, err)
	}

	if maxErr > 2e-3 {
		t.Fatalf("max abs error = %g, want <= 2e-3", maxErr)
	}
}

func TestTanhSaturates(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{25, 1},
		{-25, -1},
		{math.Inf(1), 1},
		{math.Inf(-1), -1},
	}

	for _, tc := range cases {
		if got := Tanh(tc.in); got != tc.want {
			t.Fatalf("Tanh(%g) = %g, want %g", tc.in, got, tc.want)
		}
	}
}

func TestTanhOddAndBounded(t *testing.T) {
	for _, x := range []float64{0.01, 0.3, 1, 2.5, 7, 19} {
		pos, neg := Tanh(x), Tanh(-x)
		if math.Abs(pos+neg) > 4e-3 {
			t.Fatalf("Tanh(%g)=%g, Tanh(%g)=%g not odd-symmetric", x, pos, -x, neg)
		}
		if math.Abs(pos) > 1 {
			t.Fatalf("Tanh(%g) = %g out of [-1, 1]", x, pos)
		}
	}
}

func TestTanhNaN(t *testing.T) {
	if !math.IsNaN(Tanh(math.NaN())) {
		t.Fatal("Tanh(NaN) should be NaN")
	}
}
