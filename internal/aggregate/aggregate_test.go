package aggregate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reefscope/divetrace/internal/deco"
)

func evalSample(timeSec float64, tissue int, ndl, ceiling float64, inDeco bool) deco.EvaluatedSample {
	return deco.EvaluatedSample{
		DiveSample: deco.DiveSample{
			Time:        timeSec,
			Depth:       20,
			Ambient:     3.0,
			TissueIndex: tissue,
			ReportedNDL: 12,
		},
		NDL:     ndl,
		Ceiling: ceiling,
		InDeco:  inDeco,
	}
}

func TestByTime_FoldsTissuesPerStep(t *testing.T) {
	samples := []deco.EvaluatedSample{
		evalSample(10, 1, 8, 1.2, true),
		evalSample(10, 2, 14, 0.9, false),
		evalSample(10, 3, math.NaN(), 0.8, false),
		evalSample(20, 1, math.NaN(), 0.7, false),
		evalSample(20, 2, math.NaN(), 0.6, false),
	}

	steps := ByTime(samples)
	require.Len(t, steps, 2)

	first := steps[0]
	assert.Equal(t, 10.0, first.Time)
	assert.Equal(t, 3, first.Tissues)
	assert.Equal(t, 8.0, first.MinNDL)
	assert.Equal(t, 1.2, first.MaxCeiling)
	assert.True(t, first.InDeco)
	assert.Equal(t, 12.0, first.ReportedNDL)

	// All tissues undefined: the step NDL stays undefined.
	second := steps[1]
	assert.True(t, math.IsNaN(second.MinNDL))
	assert.False(t, second.InDeco)
}

func TestByTime_Empty(t *testing.T) {
	assert.Empty(t, ByTime(nil))
}

func TestDecoSeconds(t *testing.T) {
	steps := []TimeStep{
		{Time: 0},
		{Time: 10, InDeco: true},
		{Time: 20, InDeco: true},
		{Time: 30},
	}
	assert.Equal(t, 20.0, DecoSeconds(steps))
}

func TestFirstDeco(t *testing.T) {
	steps := []TimeStep{
		{Time: 0},
		{Time: 10},
		{Time: 20, InDeco: true},
	}
	assert.Equal(t, 20.0, FirstDeco(steps))
	assert.True(t, math.IsNaN(FirstDeco(steps[:2])))
}
