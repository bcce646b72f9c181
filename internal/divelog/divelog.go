// Package divelog reads tabular dive logs and reshapes them into the
// long-format sample series consumed by the deco engines. A log row carries
// one timestamp, the depth and the recorded pressure of all 16 tissue
// compartments; reshaping turns it into one sample per (time, tissue).
package divelog

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"

	"github.com/reefscope/divetrace/internal/deco"
)

// TissueColumns is the number of per-tissue pressure columns in a log row.
const TissueColumns = 16

// DefaultMinTime drops the leading seconds of a log, where depth and tissue
// columns hold degenerate pre-dive readings.
const DefaultMinTime = 5.0

// Options controls parsing and the depth-to-pressure conversion.
type Options struct {
	Surface float64 // bar, surface pressure
	MinTime float64 // seconds; rows at or below this time are dropped
}

// DefaultOptions returns the standard ingestion settings.
func DefaultOptions() Options {
	return Options{Surface: deco.SurfacePressure, MinTime: DefaultMinTime}
}

// Row is one wide-format record of the dive log.
type Row struct {
	Time     float64 // seconds since dive start
	Depth    float64 // metres
	NDL      float64 // minutes reported by the dive computer; NaN when absent
	Pressure [TissueColumns]float64
}

// ReadFile parses the dive log at path and returns the long-format series.
func ReadFile(path string, opts Options) ([]deco.DiveSample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dive log: %w", err)
	}
	defer f.Close()

	samples, err := Read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return samples, nil
}

// Read parses a CSV dive log and reshapes it. The expected header is
// time,depth,ndl,tissue1..tissue16; rows must be monotonically non-decreasing
// in time. Rows at or below opts.MinTime are filtered out.
func Read(r io.Reader, opts Options) ([]deco.DiveSample, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) != 3+TissueColumns {
		return nil, fmt.Errorf("dive log has %d columns, want %d", len(header), 3+TissueColumns)
	}

	var samples []deco.DiveSample
	dropped := 0
	lastTime := math.Inf(-1)

	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		row, err := parseRow(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if row.Time < lastTime {
			return nil, fmt.Errorf("line %d: time %v goes backwards", line, row.Time)
		}
		lastTime = row.Time

		if row.Time <= opts.MinTime {
			dropped++
			continue
		}
		samples = append(samples, reshape(row, opts.Surface)...)
	}

	slog.Debug("dive log parsed",
		"rows", len(samples)/TissueColumns,
		"samples", len(samples),
		"dropped", dropped,
	)
	return samples, nil
}

func parseRow(record []string) (Row, error) {
	var row Row
	var err error

	if row.Time, err = strconv.ParseFloat(record[0], 64); err != nil {
		return row, fmt.Errorf("time %q: %w", record[0], err)
	}
	if row.Depth, err = strconv.ParseFloat(record[1], 64); err != nil {
		return row, fmt.Errorf("depth %q: %w", record[1], err)
	}

	// The reported NDL column is optional ground truth.
	row.NDL = math.NaN()
	if record[2] != "" {
		if row.NDL, err = strconv.ParseFloat(record[2], 64); err != nil {
			return row, fmt.Errorf("ndl %q: %w", record[2], err)
		}
	}

	for i := 0; i < TissueColumns; i++ {
		if row.Pressure[i], err = strconv.ParseFloat(record[3+i], 64); err != nil {
			return row, fmt.Errorf("tissue %d pressure %q: %w", i+1, record[3+i], err)
		}
	}
	return row, nil
}

// reshape expands one wide log row into 16 long-format samples.
func reshape(row Row, surface float64) []deco.DiveSample {
	out := make([]deco.DiveSample, TissueColumns)
	ambient := deco.DepthToPressure(row.Depth, surface)
	for i := range out {
		out[i] = deco.DiveSample{
			Time:           row.Time,
			Depth:          row.Depth,
			Ambient:        ambient,
			TissueIndex:    i + 1,
			TissuePressure: row.Pressure[i],
			ReportedNDL:    row.NDL,
		}
	}
	return out
}
