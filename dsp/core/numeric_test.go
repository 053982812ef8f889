package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0, max: 1, expected: 0},
		{name: "above", value: 2, min: 0, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
}

func TestDBConversions(t *testing.T) {
	if got := DBToGain(0.0); got != 1 {
		t.Fatalf("DBToGain(0) = %v, want 1", got)
	}
	if got := DBToGain(20.0); !NearlyEqual(got, 10, 1e-12) {
		t.Fatalf("DBToGain(20) = %v, want 10", got)
	}
	if got := DBToGain(float32(-6)); math.Abs(float64(got)-0.501187) > 1e-5 {
		t.Fatalf("DBToGain(float32(-6)) = %v, want ~0.501187", got)
	}

	gain := DBToGain(-6.0)
	db := GainToDB(gain)
	if !NearlyEqual(db, -6, 1e-10) {
		t.Fatalf("GainToDB(DBToGain(-6)) = %v, want -6", db)
	}
	if !math.IsInf(GainToDB(0.0), -1) {
		t.Fatal("expected -Inf for zero")
	}
	if !math.IsNaN(GainToDB(-1.0)) {
		t.Fatal("expected NaN for negative amplitude")
	}
}

func TestDBToGainNeverNegative(t *testing.T) {
	for _, db := range []float64{-400, -120, -6, 0, 6, 40, 300} {
		if g := DBToGain(db); g < 0 {
			t.Fatalf("DBToGain(%g) = %g, want >= 0", db, g)
		}
	}
}

func TestIsSubnormal(t *testing.T) {
	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"zero64", IsSubnormal(0.0), false},
		{"one64", IsSubnormal(1.0), false},
		{"minNormal64", IsSubnormal(minNormalFloat64), false},
		{"tiny64", IsSubnormal(math.SmallestNonzeroFloat64), true},
		{"tinyNeg64", IsSubnormal(-math.SmallestNonzeroFloat64), true},
		{"half64", IsSubnormal(minNormalFloat64 / 2), true},
		{"zero32", IsSubnormal(float32(0)), false},
		{"minNormal32", IsSubnormal(float32(minNormalFloat32)), false},
		{"tiny32", IsSubnormal(float32(math.SmallestNonzeroFloat32)), true},
		{"tinyNeg32", IsSubnormal(-float32(math.SmallestNonzeroFloat32)), true},
		// Normal in float64, subnormal once narrowed.
		{"normal64As32", IsSubnormal(1e-40), false},
		{"inf", IsSubnormal(math.Inf(1)), false},
		{"nan", IsSubnormal(math.NaN()), false},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Fatalf("%s: IsSubnormal() = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestSnapToZero(t *testing.T) {
	x := math.SmallestNonzeroFloat64
	SnapToZero(&x)
	if x != 0 {
		t.Fatalf("SnapToZero(subnormal) = %v, want 0", x)
	}

	y := float32(1e-40)
	SnapToZero(&y)
	if y != 0 {
		t.Fatalf("SnapToZero(float32 subnormal) = %v, want 0", y)
	}

	z := 1e-30
	SnapToZero(&z)
	if z != 1e-30 {
		t.Fatalf("SnapToZero(normal) = %v, want unchanged", z)
	}
}

func TestEnsureLenAndFill(t *testing.T) {
	buf := make([]float32, 2, 8)
	buf = EnsureLen(buf, 6)
	if len(buf) != 6 || cap(buf) != 8 {
		t.Fatalf("EnsureLen reuse: len=%d cap=%d, want 6/8", len(buf), cap(buf))
	}

	buf = EnsureLen(buf, 16)
	if len(buf) != 16 {
		t.Fatalf("EnsureLen grow: len=%d, want 16", len(buf))
	}

	Fill(buf, 0.25)
	for i, v := range buf {
		if v != 0.25 {
			t.Fatalf("buf[%d] = %v, want 0.25", i, v)
		}
	}

	if n := CopyInto(buf[:3], []float32{1, 2, 3, 4}); n != 3 {
		t.Fatalf("CopyInto() = %d, want 3", n)
	}

	if got := EnsureLen(buf, 0); len(got) != 0 {
		t.Fatalf("EnsureLen(0) len = %d, want 0", len(got))
	}
}
