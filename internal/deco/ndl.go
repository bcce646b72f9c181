package deco

import "math"

// NoDecoMinutes solves the constant-depth loading curve for the time at
// which the tissue first reaches limit, floored to whole minutes.
//
// The curve p(t) = pAlv + (tissueStart - pAlv) * exp(-k t) is monotone, so
// there are inputs for which the limit is never crossed upward: the tissue
// is already at or past it, or equilibrium (pAlv) lies at or below it. Those
// cases return NaN. NaN is a defined sentinel ("no limit reached"), not an
// error; callers test it with math.IsNaN.
func NoDecoMinutes(ambient, gasFraction, k, tissueStart, limit float64) float64 {
	pAlv := gasFraction * (ambient - WaterVapourPressure)
	if tissueStart >= limit || pAlv <= limit {
		return math.NaN()
	}
	v := (pAlv - limit) / (pAlv - tissueStart)
	return math.Floor(math.Log(v) / -k)
}
