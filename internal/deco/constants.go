// Package deco implements the Bühlmann ZH-L16B decompression model with
// gradient factors: Schreiner gas kinetics, M-value ceilings, surface-projected
// ceilings and closed-form no-decompression limits over a recorded dive series.
package deco

// Physical constants of the model. Pressures are absolute, in bar; rates are
// bar per minute unless noted.
const (
	// WaterVapourPressure is the alveolar water vapour pressure subtracted
	// from ambient pressure before computing inspired partial pressure.
	WaterVapourPressure = 0.0627

	// SurfacePressure is standard atmospheric pressure at sea level.
	SurfacePressure = 1.01325

	// MeterToBar converts a depth in metres of sea water to pressure.
	MeterToBar = 0.09985

	// AscentRate is the idealized ascent speed used when projecting a
	// tissue to the surface, in metres per minute.
	AscentRate = 10.0

	// DefaultGasFraction is the inert-gas fraction of air (nitrogen).
	DefaultGasFraction = 0.79

	// DefaultGradientFactor tightens the raw M-value line; 1.0 is the
	// unmodified Bühlmann limit, 0 tolerates no supersaturation at all.
	DefaultGradientFactor = 0.85
)

// DepthToPressure converts a depth in metres to absolute ambient pressure.
func DepthToPressure(depthMeters, surface float64) float64 {
	return surface + depthMeters*MeterToBar
}
