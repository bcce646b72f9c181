package deco

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
)

// Options configures a series evaluation.
type Options struct {
	GradientFactor float64 // in [0, 1]
	GasFraction    float64 // inert-gas fraction of the breathing mix
	Surface        float64 // bar, surface pressure
	Workers        int     // worker pool size; <= 0 means NumCPU
}

// DefaultOptions returns the evaluation settings used by the original
// analysis: air, sea-level surface pressure, a fixed gradient factor.
func DefaultOptions() Options {
	return Options{
		GradientFactor: DefaultGradientFactor,
		GasFraction:    DefaultGasFraction,
		Surface:        SurfacePressure,
	}
}

// Evaluate derives ceiling, in-deco state, surface M-value and recalculated
// NDL for every sample in the series. Samples are independent of one another,
// so the work is spread over a fixed-size worker pool; results are written by
// input index, preserving order.
//
// A sample whose tissue index has no compartment is skipped and reported via
// the joined error; the remaining samples still evaluate. Skipped samples
// appear in the output with only the input fields populated.
func Evaluate(samples []DiveSample, table *Table, opts Options) ([]EvaluatedSample, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(samples) {
		workers = len(samples)
	}

	out := make([]EvaluatedSample, len(samples))
	errs := make([]error, len(samples))

	var wg sync.WaitGroup
	jobs := make(chan int)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				out[i], errs[i] = evaluateOne(samples[i], table, opts)
			}
		}()
	}
	for i := range samples {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return out, errors.Join(errs...)
}

func evaluateOne(s DiveSample, table *Table, opts Options) (EvaluatedSample, error) {
	ev := EvaluatedSample{DiveSample: s}

	c, err := table.ByIndex(s.TissueIndex)
	if err != nil {
		return ev, fmt.Errorf("sample at t=%.0fs: %w", s.Time, err)
	}

	ev.Ceiling = SurfaceProjectedCeiling(s.Ambient, s.TissuePressure, c, opts.GasFraction, opts.GradientFactor, opts.Surface)
	ev.InDeco = ev.Ceiling > opts.Surface
	ev.MValueSurface = MValueLimit(opts.Surface, c.A, c.B, opts.GradientFactor)
	ev.NDL = NoDecoMinutes(s.Ambient, opts.GasFraction, c.K, s.TissuePressure, ev.MValueSurface)

	return ev, nil
}
