package engine

import (
	"fmt"
	"math"

	"github.com/contactkeval/digital-pricer/internal/market"
)

const (
	defaultTolerance     = 1e-6
	defaultMaxIterations = 100
)

// Search brackets as multiples of spot. Long premiums fall as the barrier
// moves up and away from spot; short premiums rise as the barrier climbs
// toward spot from below. Bisection relies on that monotonicity holding
// across the bracket; that is a precondition, not something verified per
// iteration (a vega_buffer large relative to sigma2 can break it).
const (
	longBracketLo  = 1.001
	longBracketHi  = 3.0
	shortBracketLo = 0.01
	shortBracketHi = 0.999
)

// Result is the outcome of a barrier search.
type Result struct {
	Barrier     float64 `json:"barrier"`      // solved barrier level
	Premium     float64 `json:"premium"`      // premium achieved at Barrier
	PercentMove float64 `json:"percent_move"` // implied move from spot, in percent
	Iterations  int     `json:"iterations"`   // bisection steps taken
	Converged   bool    `json:"converged"`    // interval narrowed within tolerance and target was achievable
}

// Option adjusts solver behavior.
type Option func(*solverOpts)

type solverOpts struct {
	tolerance     float64
	maxIterations int
}

// WithTolerance sets the absolute interval width at which the search stops.
func WithTolerance(tol float64) Option {
	return func(o *solverOpts) { o.tolerance = tol }
}

// WithMaxIterations caps the number of bisection steps.
func WithMaxIterations(n int) Option {
	return func(o *solverOpts) { o.maxIterations = n }
}

// SolveBarrier finds the barrier at which EvaluatePremium matches the
// target premium, by bisection over a side-specific bracket.
//
// The returned Result always carries the best estimate (the final interval
// midpoint). Converged is false when the iteration budget ran out before
// the interval narrowed within tolerance, and also when the target premium
// is not achievable inside the bracket. In that case bisection walks to
// the nearest endpoint and the estimate should be treated as best-effort
// only.
func SolveBarrier(target, spot float64, side market.Side, cfg market.Config, opts ...Option) (Result, error) {
	if target <= 0 || target >= 1 {
		return Result{}, fmt.Errorf("target premium must be in (0,1), got %f", target)
	}
	if spot <= 0 {
		return Result{}, fmt.Errorf("spot must be positive, got %f", spot)
	}

	o := solverOpts{tolerance: defaultTolerance, maxIterations: defaultMaxIterations}
	for _, opt := range opts {
		opt(&o)
	}

	var lo, hi float64
	switch side {
	case market.SideLong:
		lo, hi = spot*longBracketLo, spot*longBracketHi
	case market.SideShort:
		lo, hi = spot*shortBracketLo, spot*shortBracketHi
	default:
		return Result{}, fmt.Errorf("unknown side %q", side)
	}

	// Achievability guard: if the target lies outside the premiums at the
	// bracket endpoints, bisection can only converge to an endpoint.
	pLo, err := EvaluatePremium(spot, lo, side, cfg)
	if err != nil {
		return Result{}, err
	}
	pHi, err := EvaluatePremium(spot, hi, side, cfg)
	if err != nil {
		return Result{}, err
	}
	achievable := target >= math.Min(pLo, pHi) && target <= math.Max(pLo, pHi)

	mid := (lo + hi) / 2
	iters := 0
	for ; iters < o.maxIterations && hi-lo > o.tolerance; iters++ {
		mid = (lo + hi) / 2
		p, err := EvaluatePremium(spot, mid, side, cfg)
		if err != nil {
			return Result{}, err
		}

		if side == market.SideLong {
			// Premium decreases in barrier: too rich means the barrier
			// sits too close to spot.
			if p > target {
				lo = mid
			} else {
				hi = mid
			}
		} else {
			if p > target {
				hi = mid
			} else {
				lo = mid
			}
		}
	}

	mid = (lo + hi) / 2
	achieved, err := EvaluatePremium(spot, mid, side, cfg)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Barrier:     mid,
		Premium:     achieved,
		PercentMove: (mid - spot) / spot * 100,
		Iterations:  iters,
		Converged:   achievable && hi-lo <= o.tolerance,
	}, nil
}
