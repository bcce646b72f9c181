// Package profile generates synthetic dive logs: a square depth profile with
// simplex-noise jitter at the bottom, with all 16 tissue pressures integrated
// forward through the profile so generated logs are physically consistent
// input for the analyzer.
package profile

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"strconv"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/reefscope/divetrace/internal/deco"
	"github.com/reefscope/divetrace/internal/divelog"
)

// Config holds profile generation parameters.
type Config struct {
	MaxDepth      float64 // metres
	BottomMinutes float64 // time at depth, descent excluded
	DescentRate   float64 // m/min
	AscentRate    float64 // m/min
	PeriodSeconds float64 // sample period
	NoiseAmp      float64 // metres of depth jitter at the bottom; 0 = flat
	Seed          int64   // 0 = random
	GasFraction   float64 // inert-gas fraction of the mix
	Surface       float64 // bar
}

// DefaultConfig returns a 30 m / 20 min air dive sampled every 10 seconds.
func DefaultConfig() Config {
	return Config{
		MaxDepth:      30,
		BottomMinutes: 20,
		DescentRate:   20,
		AscentRate:    deco.AscentRate,
		PeriodSeconds: 10,
		NoiseAmp:      0.8,
		GasFraction:   deco.DefaultGasFraction,
		Surface:       deco.SurfacePressure,
	}
}

// Generate produces the wide-format rows of a synthetic dive. Each row's
// tissue pressures come from integrating the Schreiner equation over the
// preceding interval, starting from surface saturation.
func Generate(cfg Config, table *deco.Table) ([]divelog.Row, error) {
	if cfg.MaxDepth <= 0 || cfg.BottomMinutes < 0 {
		return nil, fmt.Errorf("profile: bad dimensions depth=%v bottom=%v", cfg.MaxDepth, cfg.BottomMinutes)
	}
	if cfg.DescentRate <= 0 || cfg.AscentRate <= 0 || cfg.PeriodSeconds <= 0 {
		return nil, fmt.Errorf("profile: bad rates descent=%v ascent=%v period=%v",
			cfg.DescentRate, cfg.AscentRate, cfg.PeriodSeconds)
	}
	if table.Len() != divelog.TissueColumns {
		return nil, fmt.Errorf("profile: table has %d compartments, want %d", table.Len(), divelog.TissueColumns)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	noise := opensimplex.NewNormalized(seed)

	descentMin := cfg.MaxDepth / cfg.DescentRate
	ascentStart := descentMin + cfg.BottomMinutes
	totalMin := ascentStart + cfg.MaxDepth/cfg.AscentRate

	// Surface-saturated starting load for every compartment.
	start := cfg.GasFraction * (cfg.Surface - deco.WaterVapourPressure)
	var pressure [divelog.TissueColumns]float64
	for i := range pressure {
		pressure[i] = start
	}

	depthAt := func(minutes float64) float64 {
		switch {
		case minutes < descentMin:
			return minutes * cfg.DescentRate
		case minutes < ascentStart:
			d := cfg.MaxDepth
			if cfg.NoiseAmp > 0 {
				// Normalized noise is in [0, 1]; recenter to +/- amp.
				d += (noise.Eval2(minutes/2, 0)*2 - 1) * cfg.NoiseAmp
			}
			if d < 0 {
				d = 0
			}
			return d
		default:
			d := cfg.MaxDepth - (minutes-ascentStart)*cfg.AscentRate
			if d < 0 {
				d = 0
			}
			return d
		}
	}

	stepMin := cfg.PeriodSeconds / 60
	compartments := table.Compartments()
	var rows []divelog.Row
	prevDepth := 0.0

	for minutes := 0.0; minutes <= totalMin+stepMin/2; minutes += stepMin {
		depth := depthAt(minutes)

		if minutes > 0 {
			ambient := deco.DepthToPressure(prevDepth, cfg.Surface)
			rate := (depth - prevDepth) * deco.MeterToBar / stepMin
			for i := range pressure {
				pressure[i] = deco.Integrate(ambient, stepMin, pressure[i], rate, cfg.GasFraction, compartments[i].K)
			}
		}

		rows = append(rows, divelog.Row{
			Time:     minutes * 60,
			Depth:    depth,
			NDL:      0, // written as empty; the analyzer recomputes it
			Pressure: pressure,
		})
		prevDepth = depth
	}

	return rows, nil
}

// WriteCSV writes rows in the dive-log format read by the divelog package.
// The reported-NDL column is left empty.
func WriteCSV(w io.Writer, rows []divelog.Row) error {
	cw := csv.NewWriter(w)

	header := []string{"time", "depth", "ndl"}
	for i := 1; i <= divelog.TissueColumns; i++ {
		header = append(header, fmt.Sprintf("tissue%d", i))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	record := make([]string, len(header))
	for _, row := range rows {
		record[0] = strconv.FormatFloat(row.Time, 'f', -1, 64)
		record[1] = strconv.FormatFloat(row.Depth, 'f', 4, 64)
		record[2] = ""
		for i, p := range row.Pressure {
			record[3+i] = strconv.FormatFloat(p, 'f', 6, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
