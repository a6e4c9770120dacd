package engine

import (
	"runtime"
	"sync"

	"github.com/contactkeval/digital-pricer/internal/market"
)

// CurvePoint is one sample of a premium-vs-spot curve.
type CurvePoint struct {
	Spot    float64 `json:"spot"`
	Premium float64 `json:"premium"`
}

// SpotGrid returns n evenly spaced spot levels across [lo, hi] inclusive.
func SpotGrid(lo, hi float64, n int) []float64 {
	if n <= 1 {
		return []float64{lo}
	}
	step := (hi - lo) / float64(n-1)
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	return out
}

// PremiumCurve evaluates the premium at every spot level against a fixed
// barrier. Each evaluation is an independent pure call, so the grid is
// fanned out across worker goroutines; output order matches input order.
//
// Lambda validation errors do not depend on the spot, so the first point
// is priced up front and any configuration error surfaces before workers
// start.
func PremiumCurve(spots []float64, barrier float64, side market.Side, cfg market.Config) ([]CurvePoint, error) {
	if len(spots) == 0 {
		return nil, nil
	}

	first, err := EvaluatePremium(spots[0], barrier, side, cfg)
	if err != nil {
		return nil, err
	}

	points := make([]CurvePoint, len(spots))
	points[0] = CurvePoint{Spot: spots[0], Premium: first}

	workers := runtime.GOMAXPROCS(0)
	idx := make(chan int)
	var wg sync.WaitGroup

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range idx {
				p, _ := EvaluatePremium(spots[i], barrier, side, cfg)
				points[i] = CurvePoint{Spot: spots[i], Premium: p}
			}
		}()
	}

	for i := 1; i < len(spots); i++ {
		idx <- i
	}
	close(idx)
	wg.Wait()

	return points, nil
}
