package pricing

import "math"

// VanillaCall calculates the price of a European call option using the
// Black-Scholes model with zero risk-free rate and zero dividend yield.
//
// Parameters:
//   - S: spot price of the underlying asset
//   - K: strike price of the option
//   - sigma: volatility of the underlying asset (annual, as a decimal)
//   - T: time to expiry in years
//
// Returns:
//
//	The theoretical price of the option. If time to expiry or volatility is
//	zero or negative, returns the intrinsic value of the option.
func VanillaCall(S, K, sigma, T float64) float64 {
	if T <= 0 || sigma <= 0 {
		return math.Max(S-K, 0) // intrinsic fallback
	}

	sigmaT := sigma * math.Sqrt(T)
	d1 := (math.Log(S/K) + 0.5*sigmaT*sigmaT) / sigmaT
	d2 := d1 - sigmaT

	return S*NormCDF(d1) - K*NormCDF(d2)
}

// VanillaPut calculates the price of a European put option under the same
// r=0, q=0 Black-Scholes model as VanillaCall.
//
// Like VanillaCall it never errors: at the sigma/T boundary it degrades to
// the intrinsic value max(K-S, 0) instead of dividing by zero in d1.
func VanillaPut(S, K, sigma, T float64) float64 {
	if T <= 0 || sigma <= 0 {
		return math.Max(K-S, 0) // intrinsic fallback
	}

	sigmaT := sigma * math.Sqrt(T)
	d1 := (math.Log(S/K) + 0.5*sigmaT*sigmaT) / sigmaT
	d2 := d1 - sigmaT

	return K*NormCDF(-d2) - S*NormCDF(-d1)
}
