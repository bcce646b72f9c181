package deco

import "math"

// Integrate computes the inert-gas pressure of a tissue after an exposure
// with linearly changing ambient pressure (Schreiner equation).
//
// ambientStart is the absolute pressure at the start of the interval [bar],
// minutes the exposure time, tissueStart the tissue pressure going in [bar],
// rate the ambient pressure change [bar/min] (negative on ascent, zero at
// constant depth), gasFraction the inert-gas fraction of the breathing mix
// and k the compartment decay constant [1/min].
//
// With rate = 0 this degenerates to the classical Haldanian exponential.
// A zero exposure returns tissueStart exactly.
func Integrate(ambientStart, minutes, tissueStart, rate, gasFraction, k float64) float64 {
	if minutes == 0 {
		return tissueStart
	}
	pAlv := gasFraction * (ambientStart - WaterVapourPressure)
	r := gasFraction * rate
	return pAlv + r*(minutes-1/k) - (pAlv-tissueStart-r/k)*math.Exp(-k*minutes)
}
