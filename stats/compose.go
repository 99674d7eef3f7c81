// SPDX-License-Identifier: MIT

package stats

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/bootci/bootstrap"
)

// Column applies a scalar statistic to column j of a table sample.
func Column(j int, fn bootstrap.Statistic) bootstrap.Statistic {
	return func(s bootstrap.Sample) (float64, error) {
		t, ok := s.(bootstrap.Table)
		if !ok {
			return 0, fmt.Errorf("%w: %T is not a table", ErrUnsupportedSample, s)
		}
		col, err := t.Col(j)
		if err != nil {
			return 0, err
		}
		return fn(bootstrap.Vector(col))
	}
}

// Correlation returns the Pearson correlation between columns i and j of a
// table sample.
func Correlation(i, j int) bootstrap.Statistic {
	return func(s bootstrap.Sample) (float64, error) {
		t, ok := s.(bootstrap.Table)
		if !ok {
			return 0, fmt.Errorf("%w: %T is not a table", ErrUnsupportedSample, s)
		}
		if t.Len() < 2 {
			return 0, fmt.Errorf("%w: have %d, need 2", ErrTooFewObservations, t.Len())
		}
		x, err := t.Col(i)
		if err != nil {
			return 0, err
		}
		y, err := t.Col(j)
		if err != nil {
			return 0, err
		}
		return stat.Correlation(x, y, nil), nil
	}
}

// CorrelationMatrix returns every upper-triangle correlation of a table
// sample, row by row: (0,1), (0,2), ..., (1,2), ... It uses gonum's
// stat.CorrelationMatrix over a zero-copy view of the table.
func CorrelationMatrix(s bootstrap.Sample) ([]float64, error) {
	t, ok := s.(bootstrap.Table)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not a table", ErrUnsupportedSample, s)
	}
	c := t.Cols()
	if c < 2 || t.Len() < 2 {
		return nil, fmt.Errorf("%w: need at least 2 rows and 2 columns", ErrTooFewObservations)
	}

	var corr mat.SymDense
	stat.CorrelationMatrix(&corr, t.Dense().Mat(), nil)

	out := make([]float64, 0, c*(c-1)/2)
	for i := 0; i < c; i++ {
		for j := i + 1; j < c; j++ {
			out = append(out, corr.At(i, j))
		}
	}
	return out, nil
}

// Multi combines scalar statistics into one multi-output statistic,
// evaluated in order on the same sample.
func Multi(fns ...bootstrap.Statistic) bootstrap.MultiStatistic {
	return func(s bootstrap.Sample) ([]float64, error) {
		out := make([]float64, len(fns))
		for k, fn := range fns {
			v, err := fn(s)
			if err != nil {
				return nil, err
			}
			out[k] = v
		}
		return out, nil
	}
}

// ByName resolves a statistic name as accepted by the bootci command:
// mean, median, variance, stddev, skewness, kurtosis, mad, iqr, trimean,
// geomean, harmean.
func ByName(name string) (bootstrap.Statistic, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mean":
		return Mean, nil
	case "median":
		return Median, nil
	case "variance", "var":
		return Variance, nil
	case "stddev", "sd":
		return StdDev, nil
	case "skewness", "skew":
		return Skewness, nil
	case "kurtosis":
		return Kurtosis, nil
	case "mad":
		return MAD, nil
	case "iqr":
		return IQR, nil
	case "trimean":
		return Trimean, nil
	case "geomean":
		return GeometricMean, nil
	case "harmean":
		return HarmonicMean, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatistic, name)
	}
}
