package pricing

import (
	"errors"
	"math"
)

// ErrCallLambda is returned when a digital call is requested with a strike
// offset that does not sit strictly below the barrier.
var ErrCallLambda = errors.New("callLambda must be < 1.0")

// ErrPutLambda is returned when a digital put is requested with a strike
// offset that does not sit strictly above the barrier.
var ErrPutLambda = errors.New("putLambda must be > 1.0")

// sigmaFloor keeps both spread legs at a strictly positive volatility so
// the vega buffer can never push a leg into the intrinsic-value branch.
const sigmaFloor = 1e-9

// DigitalCall approximates the price of a cash-or-nothing digital call: the
// probability-like price that the spot finishes above barrier B at expiry.
//
// The digital is priced as a call spread straddling the barrier,
// approximating -∂C/∂K: a long call struck at B·callLambda priced with
// sigma+vegaBuffer against a short call struck at B priced with
// sigma-vegaBuffer, divided by the strike width. The tight leg carries the
// higher vol so the spread widens with pricing uncertainty.
//
// callLambda must be strictly below 1.0; otherwise ErrCallLambda is
// returned. Small negative spread values near numerical boundaries are
// clamped to zero; a digital price is never negative.
func DigitalCall(S, B, sigma, T, vegaBuffer, callLambda float64) (float64, error) {
	if callLambda >= 1.0 {
		return 0, ErrCallLambda
	}

	k1 := B * callLambda
	k2 := B
	width := k2 - k1

	sigmaTight := math.Max(sigma+vegaBuffer, sigmaFloor)
	sigmaLoose := math.Max(sigma-vegaBuffer, sigmaFloor)

	c1 := VanillaCall(S, k1, sigmaTight, T)
	c2 := VanillaCall(S, k2, sigmaLoose, T)

	return math.Max((c1-c2)/width, 0), nil
}

// DigitalPut approximates the price of a cash-or-nothing digital put: the
// probability-like price that the spot finishes below barrier B at expiry.
//
// Mirror construction of DigitalCall: a put spread between B (priced with
// sigma-vegaBuffer) and B·putLambda (priced with sigma+vegaBuffer).
// putLambda must be strictly above 1.0; otherwise ErrPutLambda is returned.
func DigitalPut(S, B, sigma, T, vegaBuffer, putLambda float64) (float64, error) {
	if putLambda <= 1.0 {
		return 0, ErrPutLambda
	}

	k1 := B
	k2 := B * putLambda
	width := k2 - k1

	sigmaLoose := math.Max(sigma-vegaBuffer, sigmaFloor)
	sigmaTight := math.Max(sigma+vegaBuffer, sigmaFloor)

	p1 := VanillaPut(S, k1, sigmaLoose, T)
	p2 := VanillaPut(S, k2, sigmaTight, T)

	return math.Max((p2-p1)/width, 0), nil
}
