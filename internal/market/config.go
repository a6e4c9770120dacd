// Package market holds the market configuration consumed by the pricing
// engine and the side enumeration shared by all callers.
package market

import (
	"fmt"
	"math"
)

// SecondsPerYear converts epoch-based settlement horizons into the
// year-denominated expiries the Black-Scholes formulas expect.
const SecondsPerYear = 365.25 * 24 * 3600

// Side selects which tail of the distribution a position pays on.
type Side string

const (
	SideLong  Side = "long"  // pays when spot finishes above the barrier
	SideShort Side = "short" // pays when spot finishes below the barrier
)

// Valid reports whether s is one of the two known sides.
func (s Side) Valid() bool {
	return s == SideLong || s == SideShort
}

// Config describes the market a digital option is priced against. It is a
// plain immutable value: callers construct it once (or start from
// DefaultConfig) and pass it by value into every pricing call. The engine
// never retains or mutates it.
type Config struct {
	EpochDurationSeconds int64   `json:"epoch_duration_seconds"` // seconds per settlement period
	SettleDelayEpochs    int64   `json:"settle_delay_epochs"`    // epochs until settlement
	Sigma2               float64 `json:"sigma2"`                 // variance proxy; volatility = sqrt(sigma2)
	VegaBuffer           float64 `json:"vega_buffer"`            // IV spread half-width for the two legs
	CallLambda           float64 `json:"call_lambda"`            // strike offset for digital calls, < 1.0
	PutLambda            float64 `json:"put_lambda"`             // strike offset for digital puts, > 1.0
}

// DefaultConfig returns the starting configuration for an interactive
// session: five-minute epochs settling one epoch out, 25% annual variance,
// and spread legs 0.1% either side of the barrier.
func DefaultConfig() Config {
	return Config{
		EpochDurationSeconds: 300,
		SettleDelayEpochs:    1,
		Sigma2:               0.25,
		VegaBuffer:           0.05,
		CallLambda:           0.999,
		PutLambda:            1.001,
	}
}

// Validate checks the structural fields. The lambda ordering against 1.0
// is deliberately left to the digital pricer, which rejects it at the
// point of use.
func (c Config) Validate() error {
	if c.EpochDurationSeconds <= 0 {
		return fmt.Errorf("epoch_duration_seconds must be positive, got %d", c.EpochDurationSeconds)
	}
	if c.SettleDelayEpochs < 0 {
		return fmt.Errorf("settle_delay_epochs must be non-negative, got %d", c.SettleDelayEpochs)
	}
	if c.Sigma2 < 0 {
		return fmt.Errorf("sigma2 must be non-negative, got %f", c.Sigma2)
	}
	if c.VegaBuffer < 0 {
		return fmt.Errorf("vega_buffer must be non-negative, got %f", c.VegaBuffer)
	}
	return nil
}

// Sigma derives the annual volatility from the variance proxy.
func (c Config) Sigma() float64 {
	return math.Sqrt(math.Max(c.Sigma2, 0))
}

// TimeToExpiry derives the settlement horizon in years.
func (c Config) TimeToExpiry() float64 {
	return float64(c.EpochDurationSeconds) * float64(c.SettleDelayEpochs) / SecondsPerYear
}
