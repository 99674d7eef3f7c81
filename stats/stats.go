// SPDX-License-Identifier: MIT

// Package stats provides ready-made statistic functions for bootstrap runs.
//
// Every function has the bootstrap.Statistic signature. Scalar statistics
// accept a bootstrap.Vector or a single-column bootstrap.Table; Column
// lifts them onto one column of a wider table. The reductions themselves
// are gonum's (gonum.org/v1/gonum/stat) and, for order statistics,
// github.com/montanaflynn/stats.
package stats

import (
	"errors"
	"fmt"

	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/bootci/bootstrap"
)

var (
	// ErrUnsupportedSample is returned for Sample kinds a statistic cannot read,
	// e.g. a multi-column table passed to a scalar statistic.
	ErrUnsupportedSample = errors.New("stats: unsupported sample")

	// ErrTooFewObservations is returned when a statistic is undefined for
	// the sample size (e.g. variance of a single value).
	ErrTooFewObservations = errors.New("stats: too few observations")

	// ErrUnknownStatistic is returned by ByName for names it does not know.
	ErrUnknownStatistic = errors.New("stats: unknown statistic")
)

// values extracts the scalar observations of s.
func values(s bootstrap.Sample) ([]float64, error) {
	switch v := s.(type) {
	case bootstrap.Vector:
		return v, nil
	case bootstrap.Table:
		if v.Cols() != 1 {
			return nil, fmt.Errorf("%w: table with %d columns", ErrUnsupportedSample, v.Cols())
		}
		return v.Col(0)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedSample, s)
	}
}

func atLeast(x []float64, n int) error {
	if len(x) < n {
		return fmt.Errorf("%w: have %d, need %d", ErrTooFewObservations, len(x), n)
	}
	return nil
}

// Mean is the arithmetic mean.
func Mean(s bootstrap.Sample) (float64, error) {
	x, err := values(s)
	if err != nil {
		return 0, err
	}
	if err = atLeast(x, 1); err != nil {
		return 0, err
	}
	return stat.Mean(x, nil), nil
}

// Median is the middle order statistic (mean of the two middle values for
// even n).
func Median(s bootstrap.Sample) (float64, error) {
	return robust("median", s, 1, mstats.Median)
}

// Variance is the unbiased sample variance (divisor n−1).
func Variance(s bootstrap.Sample) (float64, error) {
	x, err := values(s)
	if err != nil {
		return 0, err
	}
	if err = atLeast(x, 2); err != nil {
		return 0, err
	}
	return stat.Variance(x, nil), nil
}

// StdDev is the sample standard deviation (divisor n−1).
func StdDev(s bootstrap.Sample) (float64, error) {
	x, err := values(s)
	if err != nil {
		return 0, err
	}
	if err = atLeast(x, 2); err != nil {
		return 0, err
	}
	return stat.StdDev(x, nil), nil
}

// Skewness is the sample skewness as computed by gonum's stat.Skew.
func Skewness(s bootstrap.Sample) (float64, error) {
	x, err := values(s)
	if err != nil {
		return 0, err
	}
	if err = atLeast(x, 3); err != nil {
		return 0, err
	}
	return stat.Skew(x, nil), nil
}

// Kurtosis is the sample excess kurtosis as computed by gonum's stat.ExKurtosis.
func Kurtosis(s bootstrap.Sample) (float64, error) {
	x, err := values(s)
	if err != nil {
		return 0, err
	}
	if err = atLeast(x, 4); err != nil {
		return 0, err
	}
	return stat.ExKurtosis(x, nil), nil
}
