package pricing

import "math"

const sqrt2Pi = 2.5066282746310002

// Abramowitz & Stegun 26.2.17 coefficients. The stated 1.5e-7 error
// bound only holds with these exact values.
const (
	asP  = 0.2316419
	asA1 = 0.31938153
	asA2 = -0.356563782
	asA3 = 1.781477937
	asA4 = -1.821255978
	asA5 = 1.330274429
)

// normPDF calculates the probability density function (PDF) of the standard
// normal distribution at x: exp(-0.5 * x^2) / sqrt(2π).
func normPDF(x float64) float64 {
	return math.Exp(-0.5*x*x) / sqrt2Pi
}

// NormCDF computes the cumulative distribution function of the standard
// normal distribution using the Abramowitz & Stegun rational approximation.
//
// It returns a value between 0 and 1 representing the probability that a
// standard normal random variable is less than or equal to x, accurate to
// within 1.5e-7 for all real x.
//
// The approximation works on z = |x| and folds negative inputs through the
// symmetry Φ(-x) = 1 - Φ(x). The degree-5 polynomial in t = 1/(1+p·z) is
// evaluated in Horner form for numerical stability.
func NormCDF(x float64) float64 {
	z := math.Abs(x)
	t := 1.0 / (1.0 + asP*z)

	poly := t * (asA1 + t*(asA2+t*(asA3+t*(asA4+t*asA5))))
	cdf := 1.0 - normPDF(z)*poly

	if x < 0 {
		return 1.0 - cdf
	}
	return cdf
}
