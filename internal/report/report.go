// Package report renders a human-readable summary of an evaluated dive.
package report

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/reefscope/divetrace/internal/aggregate"
)

// Summary holds the headline figures of one evaluated dive.
type Summary struct {
	Duration    time.Duration
	MaxDepth    float64 // metres
	MinNDL      float64 // minutes, tightest limit seen during the dive; NaN if none
	DecoTime    time.Duration
	FirstDeco   float64 // seconds into the dive; NaN when never in deco
	Steps       int
	SampleCount int
}

// Summarize derives the headline figures from aggregated time steps.
func Summarize(steps []aggregate.TimeStep) Summary {
	s := Summary{
		MinNDL:    math.NaN(),
		FirstDeco: aggregate.FirstDeco(steps),
		DecoTime:  time.Duration(aggregate.DecoSeconds(steps) * float64(time.Second)),
		Steps:     len(steps),
	}
	for _, step := range steps {
		if step.Depth > s.MaxDepth {
			s.MaxDepth = step.Depth
		}
		if !math.IsNaN(step.MinNDL) && (math.IsNaN(s.MinNDL) || step.MinNDL < s.MinNDL) {
			s.MinNDL = step.MinNDL
		}
		s.SampleCount += step.Tissues
	}
	if len(steps) > 0 {
		s.Duration = time.Duration((steps[len(steps)-1].Time - steps[0].Time) * float64(time.Second))
	}
	return s
}

// Write prints the summary as a short text report.
func Write(w io.Writer, source string, s Summary) error {
	_, err := fmt.Fprintf(w, "Dive: %s\n", source)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "  duration:    %s over %s samples\n",
		s.Duration.Round(time.Second),
		humanize.Comma(int64(s.SampleCount)))
	fmt.Fprintf(w, "  max depth:   %.1f m\n", s.MaxDepth)

	if math.IsNaN(s.MinNDL) {
		fmt.Fprintf(w, "  min NDL:     none reached\n")
	} else {
		fmt.Fprintf(w, "  min NDL:     %d min\n", int(s.MinNDL))
	}

	if math.IsNaN(s.FirstDeco) {
		fmt.Fprintf(w, "  deco:        stayed within no-deco limits\n")
	} else {
		fmt.Fprintf(w, "  deco:        entered at %s, obligation held for %s\n",
			(time.Duration(s.FirstDeco) * time.Second).String(),
			s.DecoTime.String())
	}
	return nil
}
