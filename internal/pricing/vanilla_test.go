package pricing

import (
	"math"
	"testing"
)

// Put-call parity with r=0, q=0 reduces to C - P = S - K.
func TestVanillaPutCallParity(t *testing.T) {
	cases := []struct{ S, K, sigma, T float64 }{
		{100, 100, 0.2, 1},
		{100, 90, 0.25, 0.5},
		{50, 120, 0.8, 2},
		{100, 100.1, 0.5, 9.5e-6},
	}
	for _, c := range cases {
		call := VanillaCall(c.S, c.K, c.sigma, c.T)
		put := VanillaPut(c.S, c.K, c.sigma, c.T)
		lhs := call - put
		rhs := c.S - c.K
		if math.Abs(lhs-rhs) > 1e-6 {
			t.Fatalf("parity violated for %+v: C-P=%v S-K=%v", c, lhs, rhs)
		}
	}
}

func TestVanillaReferenceValue(t *testing.T) {
	// ATM, sigma=0.2, T=1, r=0: C = S*(2Φ(0.1)-1) ≈ 7.965579
	call := VanillaCall(100, 100, 0.2, 1)
	if math.Abs(call-7.965579) > 1e-3 {
		t.Fatalf("ATM call = %v, want ≈7.965579", call)
	}
	put := VanillaPut(100, 100, 0.2, 1)
	if math.Abs(put-call) > 1e-6 {
		t.Fatalf("ATM put should equal call with r=0: call=%v put=%v", call, put)
	}
}

// At the sigma/T boundary the pricer degrades to intrinsic value instead of
// dividing by zero in d1.
func TestVanillaIntrinsicFallback(t *testing.T) {
	cases := []struct {
		name           string
		S, K, sigma, T float64
		call, put      float64
	}{
		{"zero time", 110, 100, 0.2, 0, 10, 0},
		{"negative time", 90, 100, 0.2, -1, 0, 10},
		{"zero vol", 120, 100, 0, 1, 20, 0},
		{"negative vol", 80, 100, -0.1, 1, 0, 20},
	}
	for _, c := range cases {
		if got := VanillaCall(c.S, c.K, c.sigma, c.T); got != c.call {
			t.Fatalf("%s: call = %v, want %v", c.name, got, c.call)
		}
		if got := VanillaPut(c.S, c.K, c.sigma, c.T); got != c.put {
			t.Fatalf("%s: put = %v, want %v", c.name, got, c.put)
		}
	}
}

func TestVanillaPricesNonNegative(t *testing.T) {
	for _, K := range []float64{10, 50, 100, 150, 500} {
		if c := VanillaCall(100, K, 0.3, 0.25); c < 0 {
			t.Fatalf("call price negative at K=%v: %v", K, c)
		}
		if p := VanillaPut(100, K, 0.3, 0.25); p < 0 {
			t.Fatalf("put price negative at K=%v: %v", K, p)
		}
	}
}
