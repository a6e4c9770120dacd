package pricing

import (
	"math"
	"testing"
)

func TestNormCDFAtZero(t *testing.T) {
	got := NormCDF(0)
	if math.Abs(got-0.5) > 1e-7 {
		t.Fatalf("NormCDF(0) = %v, want 0.5 within 1e-7", got)
	}
}

func TestNormCDFSymmetry(t *testing.T) {
	for _, x := range []float64{0.1, 0.5, 1, 1.96, 2.5761, 4, 7.3} {
		sum := NormCDF(x) + NormCDF(-x)
		if math.Abs(sum-1) > 1e-12 {
			t.Fatalf("NormCDF(%v) + NormCDF(-%v) = %v, want 1", x, x, sum)
		}
	}
}

func TestNormCDFMonotonic(t *testing.T) {
	prev := NormCDF(-8)
	for x := -7.9; x <= 8; x += 0.1 {
		cur := NormCDF(x)
		if cur < prev {
			t.Fatalf("NormCDF decreased at x=%v: %v < %v", x, cur, prev)
		}
		prev = cur
	}
}

// The approximation error bound is part of the contract: within 1.5e-7 of
// the erf-based reference everywhere.
func TestNormCDFErrorBound(t *testing.T) {
	for i := -600; i <= 600; i++ {
		x := float64(i) / 100
		ref := 0.5 * (1.0 + math.Erf(x/math.Sqrt2))
		if diff := math.Abs(NormCDF(x) - ref); diff > 1.5e-7 {
			t.Fatalf("NormCDF(%v) error %v exceeds 1.5e-7", x, diff)
		}
	}
}

func TestNormCDFKnownValues(t *testing.T) {
	cases := []struct{ x, want float64 }{
		{1.0, 0.8413447},
		{-1.0, 0.1586553},
		{1.96, 0.9750021},
		{3.0, 0.9986501},
	}
	for _, c := range cases {
		if got := NormCDF(c.x); math.Abs(got-c.want) > 1e-6 {
			t.Fatalf("NormCDF(%v) = %v, want %v", c.x, got, c.want)
		}
	}
}
