// SPDX-License-Identifier: MIT

package bootstrap_test

import (
	"bytes"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/bootci/bootstrap"
	"github.com/katalvlaran/bootci/log/zerolog"
	"github.com/katalvlaran/bootci/stats"
)

// TestRun_InvalidInput verifies every malformed argument fails with ErrInvalidInput.
func TestRun_InvalidInput(t *testing.T) {
	data := seq(10)

	_, err := bootstrap.Run(data, stats.Mean, 0)
	assert.ErrorIs(t, err, bootstrap.ErrInvalidInput, "r = 0")

	_, err = bootstrap.Run(data, stats.Mean, -5)
	assert.ErrorIs(t, err, bootstrap.ErrInvalidInput, "r < 0")

	_, err = bootstrap.Run(data, nil, 10)
	assert.ErrorIs(t, err, bootstrap.ErrInvalidInput, "nil statistic")

	_, err = bootstrap.Run(nil, stats.Mean, 10)
	assert.ErrorIs(t, err, bootstrap.ErrInvalidInput, "nil data")

	_, err = bootstrap.Run(bootstrap.Vector{}, stats.Mean, 10)
	assert.ErrorIs(t, err, bootstrap.ErrInvalidInput, "empty data")

	_, err = bootstrap.RunMulti(bootstrap.Table{}, stats.Multi(stats.Mean), 10)
	assert.ErrorIs(t, err, bootstrap.ErrInvalidInput, "empty table")

	_, err = bootstrap.RunMulti(data, nil, 10)
	assert.ErrorIs(t, err, bootstrap.ErrInvalidInput, "nil multi statistic")
}

// TestRun_OriginalAndShape checks the invariants every Result carries.
func TestRun_OriginalAndShape(t *testing.T) {
	data := normalData(1, 200)
	want, err := stats.Mean(data)
	require.NoError(t, err)

	res, err := bootstrap.Run(data, stats.Mean, 300, bootstrap.WithSeed(seedDet))
	require.NoError(t, err)

	assert.Equal(t, want, res.Original(), "original must be fn(data) exactly")
	assert.Equal(t, 300, res.R())
	assert.Equal(t, 200, res.N())
	assert.Equal(t, 0, res.Index())

	reps := res.Replicates()
	require.Len(t, reps, 300)
	mean, sd := stat.MeanStdDev(reps, nil)
	assert.InDelta(t, mean-res.Original(), res.Bias(), epsTight, "bias = mean(reps) − original")
	assert.InDelta(t, sd, res.StdDev(), epsTight, "stdev is the sample standard deviation")
}

// TestRun_SingleReplicate covers r = 1: no spread, bias from one value.
func TestRun_SingleReplicate(t *testing.T) {
	res, err := bootstrap.Run(seq(5), stats.Mean, 1, bootstrap.WithSeed(seedDet))
	require.NoError(t, err)

	reps := res.Replicates()
	require.Len(t, reps, 1)
	assert.Equal(t, 0.0, res.StdDev())
	assert.InDelta(t, reps[0]-res.Original(), res.Bias(), epsTight)
}

// TestRun_SeedDeterminismAcrossWorkers locks the same-seed ⇒ same-replicates
// guarantee for any degree of parallelism.
func TestRun_SeedDeterminismAcrossWorkers(t *testing.T) {
	data := normalData(2, 150)

	base, err := bootstrap.Run(data, stats.Median, 500,
		bootstrap.WithSeed(seedDet), bootstrap.WithWorkers(1))
	require.NoError(t, err)

	for _, w := range []int{2, 3, 8, 32} {
		res, err := bootstrap.Run(data, stats.Median, 500,
			bootstrap.WithSeed(seedDet), bootstrap.WithWorkers(w))
		require.NoError(t, err)
		if diff := cmp.Diff(base.Replicates(), res.Replicates()); diff != "" {
			t.Fatalf("workers=%d changed replicates (-1 worker +%d workers):\n%s", w, w, diff)
		}
	}

	other, err := bootstrap.Run(data, stats.Median, 500, bootstrap.WithSeed(seedDet+1))
	require.NoError(t, err)
	assert.NotEqual(t, base.Replicates(), other.Replicates(), "different seeds should differ")
}

// TestRun_StatisticErrorPropagates checks that a failing statistic aborts
// the run and its error arrives unmodified.
func TestRun_StatisticErrorPropagates(t *testing.T) {
	var calls atomic.Int64
	failing := func(s bootstrap.Sample) (float64, error) {
		if calls.Add(1) > 10 {
			return 0, errBoom
		}
		return vectorMean(s)
	}

	res, err := bootstrap.Run(seq(20), failing, 200, bootstrap.WithSeed(seedDet), bootstrap.WithWorkers(4))
	assert.Nil(t, res, "no partial result")
	assert.True(t, err == errBoom, "error must be passed through unwrapped, got %v", err)
}

// TestRun_OriginalErrorPropagates covers a statistic failing on the original data.
func TestRun_OriginalErrorPropagates(t *testing.T) {
	_, err := bootstrap.Run(bootstrap.Vector{1}, stats.Variance, 10)
	assert.ErrorIs(t, err, stats.ErrTooFewObservations)
	assert.NotErrorIs(t, err, bootstrap.ErrInvalidInput)
}

// TestRun_DoesNotMutateInput ensures the caller's data is left untouched and
// later writes to it do not reach the Result.
func TestRun_DoesNotMutateInput(t *testing.T) {
	data := seq(8)
	orig := append(bootstrap.Vector(nil), data...)

	res, err := bootstrap.Run(data, stats.Mean, 50, bootstrap.WithSeed(seedDet))
	require.NoError(t, err)
	assert.Equal(t, orig, data)

	data[0] = 1000
	assert.Equal(t, orig, res.Data(), "Result keeps its own snapshot")
}

// TestResult_AccessorsReturnCopies ensures external writes cannot corrupt a Result.
func TestResult_AccessorsReturnCopies(t *testing.T) {
	res, err := bootstrap.Run(seq(10), stats.Mean, 40, bootstrap.WithSeed(seedDet))
	require.NoError(t, err)

	reps := res.Replicates()
	before, err := res.CI(bootstrap.WithType(bootstrap.Percentile))
	require.NoError(t, err)

	for i := range reps {
		reps[i] = 1e9
	}
	d := res.Data().(bootstrap.Vector)
	d[0] = -1e9

	after, err := res.CI(bootstrap.WithType(bootstrap.Percentile))
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.NotEqual(t, reps, res.Replicates())
	assert.Equal(t, 1.0, res.Data().(bootstrap.Vector)[0])
}

// TestRun_TableResamplesWholeRows verifies that table resampling never
// mixes cells from different observations.
func TestRun_TableResamplesWholeRows(t *testing.T) {
	rows := make([][]float64, 30)
	for i := range rows {
		rows[i] = []float64{float64(i), 10 * float64(i)}
	}
	tbl, err := bootstrap.NewTable(rows)
	require.NoError(t, err)

	rowsIntact := func(s bootstrap.Sample) (float64, error) {
		m := s.(bootstrap.Table).Dense()
		for i := 0; i < m.Rows(); i++ {
			row, err := m.Row(i)
			if err != nil {
				return 0, err
			}
			if row[1] != 10*row[0] {
				return 0, errBoom
			}
		}
		return stats.Column(0, stats.Mean)(s)
	}

	res, err := bootstrap.Run(tbl, rowsIntact, 100, bootstrap.WithSeed(seedDet))
	require.NoError(t, err)
	assert.InDelta(t, 14.5, res.Original(), epsTight)
}

// TestNewTable_Invalid maps matrix construction failures to ErrInvalidInput.
func TestNewTable_Invalid(t *testing.T) {
	_, err := bootstrap.NewTable(nil)
	assert.ErrorIs(t, err, bootstrap.ErrInvalidInput)

	_, err = bootstrap.NewTable([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, bootstrap.ErrInvalidInput)
}

// TestRunMulti_SplitsColumns checks the multi-statistic mode end to end on
// a small deterministic problem.
func TestRunMulti_SplitsColumns(t *testing.T) {
	data := normalData(3, 120)
	fn := stats.Multi(stats.Mean, stats.Variance)

	rs, err := bootstrap.RunMulti(data, fn, 250, bootstrap.WithSeed(seedDet))
	require.NoError(t, err)
	require.Len(t, rs, 2)

	wantMean, _ := stats.Mean(data)
	wantVar, _ := stats.Variance(data)
	assert.Equal(t, wantMean, rs[0].Original())
	assert.Equal(t, wantVar, rs[1].Original())

	for j, res := range rs {
		assert.Equal(t, j, res.Index())
		assert.Equal(t, 250, res.R())
		mean, sd := stat.MeanStdDev(res.Replicates(), nil)
		assert.InDelta(t, mean-res.Original(), res.Bias(), epsTight)
		assert.InDelta(t, sd, res.StdDev(), epsTight)

		// The stored statistic selects component j.
		v, err := res.Statistic()(data)
		require.NoError(t, err)
		assert.Equal(t, res.Original(), v)
	}

	// Same seed, scalar run of the first component: identical replicates.
	single, err := bootstrap.Run(data, stats.Mean, 250, bootstrap.WithSeed(seedDet))
	require.NoError(t, err)
	assert.Equal(t, single.Replicates(), rs[0].Replicates())
}

// TestRunMulti_OutputLengthMismatch rejects statistics whose arity changes.
func TestRunMulti_OutputLengthMismatch(t *testing.T) {
	var calls atomic.Int64
	unstable := func(s bootstrap.Sample) ([]float64, error) {
		if calls.Add(1) == 1 {
			return []float64{1, 2}, nil
		}
		return []float64{1}, nil
	}
	_, err := bootstrap.RunMulti(seq(5), unstable, 10, bootstrap.WithSeed(seedDet))
	assert.ErrorIs(t, err, bootstrap.ErrInvalidInput)

	empty := func(bootstrap.Sample) ([]float64, error) { return nil, nil }
	_, err = bootstrap.RunMulti(seq(5), empty, 10)
	assert.ErrorIs(t, err, bootstrap.ErrInvalidInput)
}

// TestOptions_Panics locks the programmer-error policy of run options.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { bootstrap.WithWorkers(0) })
	assert.Panics(t, func() { bootstrap.WithChunkSize(0) })
	assert.Panics(t, func() { bootstrap.WithRand(nil) })
}

// TestRun_ChunkSizeChangesStreams documents that the chunk size is part of
// the reproducibility key.
func TestRun_ChunkSizeChangesStreams(t *testing.T) {
	data := seq(40)
	a, err := bootstrap.Run(data, stats.Mean, 100, bootstrap.WithSeed(seedDet), bootstrap.WithChunkSize(10))
	require.NoError(t, err)
	b, err := bootstrap.Run(data, stats.Mean, 100, bootstrap.WithSeed(seedDet), bootstrap.WithChunkSize(10), bootstrap.WithWorkers(7))
	require.NoError(t, err)
	c, err := bootstrap.Run(data, stats.Mean, 100, bootstrap.WithSeed(seedDet), bootstrap.WithChunkSize(25))
	require.NoError(t, err)

	assert.Equal(t, a.Replicates(), b.Replicates())
	assert.NotEqual(t, a.Replicates(), c.Replicates())
}

// TestRun_VectorAndTableDrawSameResamples: a Vector and the equivalent
// single-column Table see the same positions for the same seed, so their
// replicate vectors match exactly.
func TestRun_VectorAndTableDrawSameResamples(t *testing.T) {
	data := normalData(7, 60)
	rows := make([][]float64, len(data))
	for i, v := range data {
		rows[i] = []float64{v}
	}
	tbl, err := bootstrap.NewTable(rows)
	require.NoError(t, err)

	a, err := bootstrap.Run(data, stats.Median, 300, bootstrap.WithSeed(seedDet), bootstrap.WithWorkers(3))
	require.NoError(t, err)
	b, err := bootstrap.Run(tbl, stats.Median, 300, bootstrap.WithSeed(seedDet), bootstrap.WithWorkers(3))
	require.NoError(t, err)

	if diff := cmp.Diff(a.Replicates(), b.Replicates()); diff != "" {
		t.Fatalf("vector and table replicates differ (-vector +table):\n%s", diff)
	}
}

// TestRun_LogsThroughWithLogger checks that the engine reports through the
// supplied logger, tagged with its component.
func TestRun_LogsThroughWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(zerolog.Options{Level: "debug", Out: &buf, JSON: true})

	_, err := bootstrap.Run(seq(10), stats.Mean, 20, bootstrap.WithSeed(seedDet), bootstrap.WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"message":"replication started"`)
	assert.Contains(t, out, `"message":"replication finished"`)
	assert.Contains(t, out, `"component":"bootstrap"`)
}
