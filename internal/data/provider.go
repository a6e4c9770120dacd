// Package data provides the market data providers the CLI prices against.
//
// The engine itself is pure and takes spot and variance as inputs; this
// package only exists to derive those inputs from a real or synthetic
// market: the last daily close for spot, realized log-return variance for
// sigma2.
package data

import (
	"math"
	"time"
)

// Provider supplies daily bars for an underlying.
type Provider interface {
	// GetDailyBars returns daily OHLCV bars for [fromDate, toDate].
	GetDailyBars(underlying string, fromDate, toDate time.Time) ([]Bar, error)

	// Secondary returns an optional fallback provider, or nil.
	Secondary() Provider
}

// Bar simplified OHLC
type Bar struct {
	Date  time.Time
	Open  float64
	High  float64
	Low   float64
	Close float64
	Vol   float64
}

// defaultVariance is used when the close series is too short to estimate
// anything (matches a 30% annual vol).
const defaultVariance = 0.09

// tradingDaysPerYear annualizes daily log-return variance.
const tradingDaysPerYear = 252.0

// Closes extracts the close series from a bar slice.
func Closes(bars []Bar) []float64 {
	out := make([]float64, 0, len(bars))
	for _, b := range bars {
		out = append(out, b.Close)
	}
	return out
}

// RealizedVariance estimates the annualized variance of log returns over a
// close series, the sigma2 proxy the market configuration carries. With
// fewer than two closes it falls back to defaultVariance.
func RealizedVariance(closes []float64) float64 {
	if len(closes) < 2 {
		return defaultVariance
	}
	var rets []float64
	for i := 1; i < len(closes); i++ {
		rets = append(rets, math.Log(closes[i]/closes[i-1]))
	}
	mean := 0.0
	for _, v := range rets {
		mean += v
	}
	mean /= float64(len(rets))
	variance := 0.0
	for _, v := range rets {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(rets) - 1)
	return variance * tradingDaysPerYear
}
