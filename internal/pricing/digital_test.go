package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSigma  = 0.5     // sqrt of sigma2=0.25
	testExpiry = 0.08214 // 30 days of 86400s epochs, in years
)

func TestDigitalCallRejectsBadLambda(t *testing.T) {
	for _, lambda := range []float64{1.0, 1.5} {
		_, err := DigitalCall(100, 100, testSigma, testExpiry, 0.05, lambda)
		require.ErrorIs(t, err, ErrCallLambda, "callLambda=%v", lambda)
	}
}

func TestDigitalPutRejectsBadLambda(t *testing.T) {
	for _, lambda := range []float64{1.0, 0.5} {
		_, err := DigitalPut(100, 100, testSigma, testExpiry, 0.05, lambda)
		require.ErrorIs(t, err, ErrPutLambda, "putLambda=%v", lambda)
	}
}

func TestDigitalPricesNeverNegative(t *testing.T) {
	for _, barrier := range []float64{50, 90, 100, 110, 200, 500} {
		call, err := DigitalCall(100, barrier, testSigma, testExpiry, 0.05, 0.999)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, call, 0.0, "digital call at B=%v", barrier)

		put, err := DigitalPut(100, barrier, testSigma, testExpiry, 0.05, 1.001)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, put, 0.0, "digital put at B=%v", barrier)
	}
}

// Deep out-of-the-money digitals clamp to zero rather than reporting the
// small negative values the finite difference can produce.
func TestDigitalDeepOTMClampsToZero(t *testing.T) {
	call, err := DigitalCall(100, 500, testSigma, testExpiry, 0.05, 0.999)
	require.NoError(t, err)
	assert.Zero(t, call)

	put, err := DigitalPut(100, 5, testSigma, testExpiry, 0.05, 1.001)
	require.NoError(t, err)
	assert.Zero(t, put)
}

// With no vega buffer the spread is a pure strike finite difference, so as
// callLambda approaches 1 from below the price approaches the limiting
// -dC/dK derivative instead of diverging.
func TestDigitalCallBoundedNearLambdaBoundary(t *testing.T) {
	var prev float64
	for i, lambda := range []float64{0.99, 0.999, 0.9999, 0.999999} {
		price, err := DigitalCall(100, 105, testSigma, testExpiry, 0, lambda)
		require.NoError(t, err)
		assert.Greater(t, price, 0.0)
		assert.Less(t, price, 1.0)
		if i > 0 {
			// successive refinements stay close to the limit ≈ 0.3401
			assert.InDelta(t, prev, price, 0.02, "lambda=%v", lambda)
		}
		prev = price
	}
	assert.InDelta(t, 0.3401, prev, 1e-3)
}

// The vega buffer widens the quote: a buffered digital prices above the
// unbuffered strike derivative on the call side.
func TestDigitalVegaBufferWidensQuote(t *testing.T) {
	plain, err := DigitalCall(100, 105, testSigma, testExpiry, 0, 0.999)
	require.NoError(t, err)
	buffered, err := DigitalCall(100, 105, testSigma, testExpiry, 0.05, 0.999)
	require.NoError(t, err)
	assert.Greater(t, buffered, plain)
}

// Degenerate expiry: both legs collapse to intrinsic value.
func TestDigitalZeroExpiry(t *testing.T) {
	// Spot above barrier: both legs in the money, spread = width/width = 1.
	call, err := DigitalCall(110, 100, testSigma, 0, 0.05, 0.999)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, call, 1e-9)

	// Spot below barrier: both legs worthless.
	call, err = DigitalCall(90, 100, testSigma, 0, 0.05, 0.999)
	require.NoError(t, err)
	assert.Zero(t, call)
}
