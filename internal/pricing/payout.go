package pricing

import (
	"math"

	"github.com/shopspring/decimal"
)

// oddsFloor guards the odds division when a digital price underflows to
// numerically zero.
const oddsFloor = 1e-12

// PayoutCashOrNothing settles a cash-or-nothing wager: the winner receives
// the full stake back, the loser receives nothing.
func PayoutCashOrNothing(stake decimal.Decimal, won bool) decimal.Decimal {
	if won {
		return stake
	}
	return decimal.Zero
}

// PayoutOdds settles an odds-based wager: the winner receives
// stake / digitalPrice, so a 0.10 digital pays 10x. The digital price is
// floored at 1e-12 to keep the division bounded when it is numerically
// zero. The loser receives nothing.
func PayoutOdds(stake decimal.Decimal, digitalPrice float64, won bool) decimal.Decimal {
	if !won {
		return decimal.Zero
	}
	return stake.Div(decimal.NewFromFloat(math.Max(digitalPrice, oddsFloor)))
}

// Premium returns the cost of entering a position of the given stake at the
// given digital price: stake × digitalPrice.
func Premium(stake decimal.Decimal, digitalPrice float64) decimal.Decimal {
	return stake.Mul(decimal.NewFromFloat(digitalPrice))
}
