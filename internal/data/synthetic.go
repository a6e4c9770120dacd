package data

import (
	"math"
	"math/rand"
	"time"
)

// synthDataProvider implements Provider generating a seeded random walk,
// for offline runs without an API key.
type synthDataProvider struct {
	rng       *rand.Rand
	secondary Provider
}

// NewSyntheticProvider constructs a synthetic provider. The same seed
// reproduces the same walk. A non-nil secondary takes precedence over the
// walk, which lets the synthetic provider stand in at the end of a
// provider chain.
func NewSyntheticProvider(seed int64, secondary Provider) Provider {
	return &synthDataProvider{rng: rand.New(rand.NewSource(seed)), secondary: secondary}
}

func (synthDataProv *synthDataProvider) Secondary() Provider {
	return synthDataProv.secondary
}

func (synthDataProv *synthDataProvider) GetDailyBars(underlying string, fromDate, toDate time.Time) ([]Bar, error) {
	if synthDataProv.secondary != nil {
		return synthDataProv.secondary.GetDailyBars(underlying, fromDate, toDate)
	}

	rng := synthDataProv.rng
	cur := fromDate
	price := 100.0 + float64(rng.Intn(200))
	var out []Bar
	for !cur.After(toDate) {
		if cur.Weekday() != time.Saturday && cur.Weekday() != time.Sunday {
			delta := rng.NormFloat64() * 0.01 * price
			open := price
			close := price + delta
			high := math.Max(open, close) + math.Abs(rng.NormFloat64()*0.3)
			low := math.Min(open, close) - math.Abs(rng.NormFloat64()*0.3)
			out = append(out, Bar{Date: cur, Open: open, High: high, Low: low, Close: close, Vol: float64(1000 + rng.Intn(5000))})
			price = close
		}
		cur = cur.AddDate(0, 0, 1)
	}
	return out, nil
}
