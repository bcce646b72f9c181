package store

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reefscope/divetrace/internal/deco"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "divetrace.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSaveRun_RoundTrip(t *testing.T) {
	db := openTestDB(t)
	opts := deco.DefaultOptions()

	samples := []deco.EvaluatedSample{
		{
			DiveSample: deco.DiveSample{
				Time: 10, Depth: 20, Ambient: 3.0,
				TissueIndex: 1, TissuePressure: 1.5, ReportedNDL: 12,
			},
			Ceiling: 1.2, InDeco: true, MValueSurface: 2.69, NDL: 8,
		},
		{
			DiveSample: deco.DiveSample{
				Time: 10, Depth: 20, Ambient: 3.0,
				TissueIndex: 2, TissuePressure: 1.1, ReportedNDL: math.NaN(),
			},
			Ceiling: 0.9, InDeco: false, MValueSurface: 2.41, NDL: math.NaN(),
		},
	}

	run, err := db.SaveRun("dive-001.csv", opts, samples)
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, 2, run.SampleCount)
	assert.Equal(t, opts.GradientFactor, run.GradientFactor)

	got, err := db.RunSamples(run.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, samples[0].Ceiling, got[0].Ceiling)
	assert.True(t, got[0].InDeco)
	assert.Equal(t, 8.0, got[0].NDL)

	// Undefined NDLs survive the NULL round trip as NaN.
	assert.True(t, math.IsNaN(got[1].NDL))
	assert.True(t, math.IsNaN(got[1].ReportedNDL))
	assert.False(t, got[1].InDeco)
}

func TestRecentRuns_NewestFirst(t *testing.T) {
	db := openTestDB(t)
	opts := deco.DefaultOptions()

	first, err := db.SaveRun("a.csv", opts, nil)
	require.NoError(t, err)
	second, err := db.SaveRun("b.csv", opts, nil)
	require.NoError(t, err)

	runs, err := db.RecentRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, []string{second.ID, first.ID}, []string{runs[0].ID, runs[1].ID})

	runs, err = db.RecentRuns(1)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestRunSamples_UnknownRun(t *testing.T) {
	db := openTestDB(t)
	got, err := db.RunSamples("nope")
	require.NoError(t, err)
	assert.Empty(t, got)
}
