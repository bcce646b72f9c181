// Package aggregate collapses per-(time, tissue) evaluation results into one
// record per time step: the controlling (minimum) NDL across tissues, the
// logical OR of in-deco flags and the deepest ceiling.
package aggregate

import (
	"encoding/json"
	"math"

	"github.com/reefscope/divetrace/internal/deco"
)

// TimeStep is the per-timestamp summary across all tissue compartments.
type TimeStep struct {
	Time        float64 // seconds since dive start
	Depth       float64 // metres
	Ambient     float64 // bar
	ReportedNDL float64 // minutes, NaN when the log carried none
	MinNDL      float64 // minutes, controlling tissue; NaN when no tissue has a limit
	MaxCeiling  float64 // bar, deepest ceiling across tissues
	InDeco      bool    // any tissue in deco
	Tissues     int     // samples folded into this step
}

// ByTime folds an evaluated series into per-time-step summaries, preserving
// the series order. Samples sharing a timestamp are assumed adjacent, which
// holds for any series produced by the divelog reshape.
func ByTime(samples []deco.EvaluatedSample) []TimeStep {
	var out []TimeStep
	for _, s := range samples {
		if n := len(out); n == 0 || out[n-1].Time != s.Time {
			out = append(out, TimeStep{
				Time:        s.Time,
				Depth:       s.Depth,
				Ambient:     s.Ambient,
				ReportedNDL: s.ReportedNDL,
				MinNDL:      math.NaN(),
				MaxCeiling:  math.Inf(-1),
			})
		}
		step := &out[len(out)-1]
		step.Tissues++
		if s.InDeco {
			step.InDeco = true
		}
		if s.Ceiling > step.MaxCeiling {
			step.MaxCeiling = s.Ceiling
		}
		// NaN-aware minimum: an undefined NDL never controls the step.
		if !math.IsNaN(s.NDL) && (math.IsNaN(step.MinNDL) || s.NDL < step.MinNDL) {
			step.MinNDL = s.NDL
		}
	}
	return out
}

// MarshalJSON emits undefined NDLs as null; JSON has no NaN.
func (s TimeStep) MarshalJSON() ([]byte, error) {
	type step struct {
		Time        float64  `json:"time"`
		Depth       float64  `json:"depth"`
		Ambient     float64  `json:"ambient"`
		ReportedNDL *float64 `json:"reported_ndl"`
		MinNDL      *float64 `json:"min_ndl"`
		MaxCeiling  float64  `json:"max_ceiling"`
		InDeco      bool     `json:"in_deco"`
		Tissues     int      `json:"tissues"`
	}
	opt := func(v float64) *float64 {
		if math.IsNaN(v) {
			return nil
		}
		return &v
	}
	return json.Marshal(step{
		Time:        s.Time,
		Depth:       s.Depth,
		Ambient:     s.Ambient,
		ReportedNDL: opt(s.ReportedNDL),
		MinNDL:      opt(s.MinNDL),
		MaxCeiling:  s.MaxCeiling,
		InDeco:      s.InDeco,
		Tissues:     s.Tissues,
	})
}

// DecoSeconds returns the time spent with a deco obligation, assuming the
// fixed sample period between consecutive steps.
func DecoSeconds(steps []TimeStep) float64 {
	total := 0.0
	for i := 1; i < len(steps); i++ {
		if steps[i].InDeco {
			total += steps[i].Time - steps[i-1].Time
		}
	}
	return total
}

// FirstDeco returns the time of the first in-deco step, or NaN when the
// whole dive stayed within no-deco limits.
func FirstDeco(steps []TimeStep) float64 {
	for _, s := range steps {
		if s.InDeco {
			return s.Time
		}
	}
	return math.NaN()
}
