// Package engine composes market configuration and side into digital
// premiums, and inverts that composition to recover barrier levels.
package engine

import (
	"fmt"

	"github.com/contactkeval/digital-pricer/internal/market"
	"github.com/contactkeval/digital-pricer/internal/pricing"
)

// EvaluatePremium prices one digital position: the premium (per unit stake)
// of a long position finishing above the barrier, or a short position
// finishing below it.
//
// This is the single call surface for the solver, the curve sampler, and
// external callers. Volatility and time-to-expiry are always derived here
// from the configuration, so every path prices against identical
// parameters.
func EvaluatePremium(spot, barrier float64, side market.Side, cfg market.Config) (float64, error) {
	sigma := cfg.Sigma()
	expiry := cfg.TimeToExpiry()

	switch side {
	case market.SideLong:
		return pricing.DigitalCall(spot, barrier, sigma, expiry, cfg.VegaBuffer, cfg.CallLambda)
	case market.SideShort:
		return pricing.DigitalPut(spot, barrier, sigma, expiry, cfg.VegaBuffer, cfg.PutLambda)
	default:
		return 0, fmt.Errorf("unknown side %q", side)
	}
}
