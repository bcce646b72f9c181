package deco

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMValueLimit_GradientFactorBoundaries(t *testing.T) {
	for _, c := range ZHL16B().Compartments() {
		for _, ambient := range []float64{SurfacePressure, 2.0, 4.5} {
			// gf=0 tolerates no supersaturation: the limit is ambient itself.
			assert.InDelta(t, ambient, MValueLimit(ambient, c.A, c.B, 0), 1e-12)

			// gf=1 is the raw Workman/Bühlmann line.
			assert.InDelta(t, ambient/c.B+c.A, MValueLimit(ambient, c.A, c.B, 1), 1e-12)
		}
	}
}

func TestCeiling_InvertsMValueLimit(t *testing.T) {
	for _, c := range ZHL16B().Compartments() {
		for _, gf := range []float64{0.3, 0.85, 1.0} {
			for _, ambient := range []float64{1.01325, 2.5, 5.0} {
				limit := MValueLimit(ambient, c.A, c.B, gf)
				assert.InDelta(t, ambient, Ceiling(limit, c.A, c.B, gf), 1e-9,
					"tissue %d gf %v ambient %v", c.Index, gf, ambient)
			}
		}
	}
}

func TestCeiling_MonotoneInTissuePressure(t *testing.T) {
	c, err := ZHL16B().ByIndex(5)
	require.NoError(t, err)

	prev := Ceiling(0.5, c.A, c.B, DefaultGradientFactor)
	for p := 0.6; p < 6.0; p += 0.1 {
		cur := Ceiling(p, c.A, c.B, DefaultGradientFactor)
		assert.GreaterOrEqual(t, cur, prev, "tissue pressure %v", p)
		prev = cur
	}
}

func TestSurfaceProjectedCeiling_AtOrAboveSurface(t *testing.T) {
	c, err := ZHL16B().ByIndex(1)
	require.NoError(t, err)

	// At or above surface pressure there is no ascent to integrate; the
	// ceiling is computed from the tissue pressure as-is.
	want := Ceiling(2.0, c.A, c.B, DefaultGradientFactor)
	got := SurfaceProjectedCeiling(1.0, 2.0, c, DefaultGasFraction, DefaultGradientFactor, SurfacePressure)
	assert.InDelta(t, want, got, 1e-12)

	got = SurfaceProjectedCeiling(SurfacePressure, 2.0, c, DefaultGasFraction, DefaultGradientFactor, SurfacePressure)
	assert.InDelta(t, want, got, 1e-12)
}

func TestSurfaceProjectedCeiling_KnownValue(t *testing.T) {
	c, err := ZHL16B().ByIndex(1)
	require.NoError(t, err)

	got := SurfaceProjectedCeiling(3.0, 2.0, c, DefaultGasFraction, DefaultGradientFactor, SurfacePressure)
	assert.InDelta(t, 0.5288599603938621, got, 1e-9)

	// A fast tissue off-gasses on the way up, so the projected ceiling sits
	// below the instantaneous one.
	raw := Ceiling(2.0, c.A, c.B, DefaultGradientFactor)
	assert.Less(t, got, raw)
}
