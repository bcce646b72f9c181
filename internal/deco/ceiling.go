package deco

// MValueLimit returns the maximum tolerated tissue pressure at the given
// ambient pressure under the gradient-factor-adjusted Workman/Bühlmann line.
// gf = 1 yields the raw M-value line ambient/b + a; gf = 0 collapses the
// limit to the ambient pressure itself (no supersaturation tolerated).
func MValueLimit(ambient, a, b, gf float64) float64 {
	return ambient*(gf/b+1-gf) + a*gf
}

// Ceiling returns the minimum safe ambient pressure for a tissue at the
// given inert-gas pressure: the algebraic inverse of MValueLimit solved for
// ambient pressure. Any shallower pressure puts the tissue past its
// adjusted limit.
func Ceiling(tissue, a, b, gf float64) float64 {
	return (tissue - a*gf) / (gf/b + 1 - gf)
}

// SurfaceProjectedCeiling returns the ceiling the tissue would have after an
// idealized immediate constant-rate ascent from the current ambient pressure
// to the surface. The tissue keeps on- or off-gassing during the virtual
// ascent, so this answers whether surfacing now would cross an unsafe zone.
// At or above the surface the tissue pressure passes through unchanged.
func SurfaceProjectedCeiling(ambient, tissue float64, c Compartment, gasFraction, gf, surface float64) float64 {
	minutes := (ambient - surface) / MeterToBar / AscentRate
	projected := tissue
	if minutes > 0 {
		rate := -AscentRate * MeterToBar
		projected = Integrate(ambient, minutes, tissue, rate, gasFraction, c.K)
	}
	return Ceiling(projected, c.A, c.B, gf)
}
