// SPDX-License-Identifier: MIT

package stats_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bootci/bootstrap"
	"github.com/katalvlaran/bootci/stats"
)

const eps = 1e-12

func TestScalarStatistics(t *testing.T) {
	x := bootstrap.Vector{2, 4, 4, 4, 5, 5, 7, 9}

	tests := []struct {
		name string
		fn   bootstrap.Statistic
		want float64
	}{
		{"mean", stats.Mean, 5},
		{"median", stats.Median, 4.5},
		{"variance", stats.Variance, 32.0 / 7},
		{"stddev", stats.StdDev, math.Sqrt(32.0 / 7)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.fn(x)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, eps)
		})
	}
}

func TestMedian_OddAndUnsorted(t *testing.T) {
	x := bootstrap.Vector{9, 1, 5}
	got, err := stats.Median(x)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got)
	assert.Equal(t, bootstrap.Vector{9, 1, 5}, x, "input untouched")
}

func TestMedian_EvenAverageMiddle(t *testing.T) {
	x := bootstrap.Vector{8, -2, 3, 1}
	got, err := stats.Median(x)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)
	assert.Equal(t, bootstrap.Vector{8, -2, 3, 1}, x, "input untouched")

	tbl, err := bootstrap.NewTable([][]float64{{4}, {1}, {7}, {2}})
	require.NoError(t, err)
	got, err = stats.Median(tbl)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)
}

func TestSkewnessAndKurtosis(t *testing.T) {
	sym := bootstrap.Vector{-3, -1, 0, 1, 3}
	s, err := stats.Skewness(sym)
	require.NoError(t, err)
	assert.InDelta(t, 0, s, eps)

	right := bootstrap.Vector{1, 1, 1, 2, 10}
	s, err = stats.Skewness(right)
	require.NoError(t, err)
	assert.Greater(t, s, 0.0)

	k, err := stats.Kurtosis(bootstrap.Vector{1, 2, 3, 4, 100})
	require.NoError(t, err)
	assert.Greater(t, k, 0.0)
}

func TestTooFewObservations(t *testing.T) {
	cases := map[string]struct {
		fn bootstrap.Statistic
		x  bootstrap.Vector
	}{
		"mean":     {stats.Mean, bootstrap.Vector{}},
		"median":   {stats.Median, bootstrap.Vector{}},
		"variance": {stats.Variance, bootstrap.Vector{1}},
		"stddev":   {stats.StdDev, bootstrap.Vector{1}},
		"skewness": {stats.Skewness, bootstrap.Vector{1, 2}},
		"kurtosis": {stats.Kurtosis, bootstrap.Vector{1, 2, 3}},
	}
	for name, tc := range cases {
		_, err := tc.fn(tc.x)
		assert.ErrorIs(t, err, stats.ErrTooFewObservations, name)
	}
}

func TestSingleColumnTable(t *testing.T) {
	tbl, err := bootstrap.NewTable([][]float64{{1}, {2}, {6}})
	require.NoError(t, err)
	m, err := stats.Mean(tbl)
	require.NoError(t, err)
	assert.Equal(t, 3.0, m)

	wide, err := bootstrap.NewTable([][]float64{{1, 2}})
	require.NoError(t, err)
	_, err = stats.Mean(wide)
	assert.ErrorIs(t, err, stats.ErrUnsupportedSample)
}
