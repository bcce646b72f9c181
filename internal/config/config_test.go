package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reefscope/divetrace/internal/deco"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "divetrace.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, deco.DefaultGradientFactor, cfg.Model.GradientFactor)
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
[model]
gradient_factor = 0.7

[evaluate]
workers = 2
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.7, cfg.Model.GradientFactor)
	assert.Equal(t, 2, cfg.Evaluate.Workers)

	// Untouched sections keep their defaults.
	assert.Equal(t, deco.DefaultGasFraction, cfg.Model.GasFraction)
	assert.Equal(t, "data/divetrace.db", cfg.Store.Path)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	cases := []struct{ name, body string }{
		{"gf above one", "[model]\ngradient_factor = 1.5\n"},
		{"negative gf", "[model]\ngradient_factor = -0.1\n"},
		{"zero gas fraction", "[model]\ngas_fraction = 0.0\n"},
		{"bad toml", "[model\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			require.Error(t, err)
		})
	}
}

func TestDecoOptions_Mapping(t *testing.T) {
	cfg := Default()
	cfg.Model.GradientFactor = 0.6
	cfg.Evaluate.Workers = 3

	opts := cfg.DecoOptions()
	assert.Equal(t, 0.6, opts.GradientFactor)
	assert.Equal(t, 3, opts.Workers)
	assert.Equal(t, deco.SurfacePressure, opts.Surface)
}
