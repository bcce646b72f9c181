// Package config loads divetrace settings from a TOML file, overlaying them
// on top of the model defaults.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/reefscope/divetrace/internal/deco"
	"github.com/reefscope/divetrace/internal/divelog"
)

// Config holds all tunable settings of the analyzer.
type Config struct {
	Model    Model    `toml:"model"`
	Ingest   Ingest   `toml:"ingest"`
	Evaluate Evaluate `toml:"evaluate"`
	Store    Store    `toml:"store"`
}

// Model configures the decompression model itself.
type Model struct {
	GradientFactor  float64 `toml:"gradient_factor"`
	GasFraction     float64 `toml:"gas_fraction"`
	SurfacePressure float64 `toml:"surface_pressure"`
}

// Ingest configures dive-log parsing.
type Ingest struct {
	MinTimeSeconds float64 `toml:"min_time_seconds"`
}

// Evaluate configures the series evaluator.
type Evaluate struct {
	Workers int `toml:"workers"` // 0 = NumCPU
}

// Store configures run persistence.
type Store struct {
	Path string `toml:"path"`
}

// Default returns the built-in settings: air, sea level, gf 0.85.
func Default() Config {
	return Config{
		Model: Model{
			GradientFactor:  deco.DefaultGradientFactor,
			GasFraction:     deco.DefaultGasFraction,
			SurfacePressure: deco.SurfacePressure,
		},
		Ingest: Ingest{MinTimeSeconds: divelog.DefaultMinTime},
		Store:  Store{Path: "data/divetrace.db"},
	}
}

// Load reads the TOML file at path over the defaults. A missing file is not
// an error: the defaults apply unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Model.GradientFactor < 0 || c.Model.GradientFactor > 1 {
		return fmt.Errorf("gradient_factor %v outside [0, 1]", c.Model.GradientFactor)
	}
	if c.Model.GasFraction <= 0 || c.Model.GasFraction > 1 {
		return fmt.Errorf("gas_fraction %v outside (0, 1]", c.Model.GasFraction)
	}
	if c.Model.SurfacePressure <= 0 {
		return fmt.Errorf("surface_pressure %v not positive", c.Model.SurfacePressure)
	}
	return nil
}

// DecoOptions maps the configuration onto evaluator options.
func (c Config) DecoOptions() deco.Options {
	return deco.Options{
		GradientFactor: c.Model.GradientFactor,
		GasFraction:    c.Model.GasFraction,
		Surface:        c.Model.SurfacePressure,
		Workers:        c.Evaluate.Workers,
	}
}

// LogOptions maps the configuration onto dive-log ingestion options.
func (c Config) LogOptions() divelog.Options {
	return divelog.Options{
		Surface: c.Model.SurfacePressure,
		MinTime: c.Ingest.MinTimeSeconds,
	}
}
