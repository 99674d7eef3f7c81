// SPDX-License-Identifier: MIT

package stats

import (
	"errors"
	"fmt"

	mstats "github.com/montanaflynn/stats"

	"github.com/katalvlaran/bootci/bootstrap"
)

// ErrOutOfDomain is returned when an observation lies outside the domain a
// statistic is defined on (e.g. a non-positive value for GeometricMean).
var ErrOutOfDomain = errors.New("stats: value outside domain")

// robust evaluates a montanaflynn/stats reduction after the shared checks.
func robust(name string, s bootstrap.Sample, minN int, fn func(mstats.Float64Data) (float64, error)) (float64, error) {
	x, err := values(s)
	if err != nil {
		return 0, err
	}
	if err = atLeast(x, minN); err != nil {
		return 0, err
	}
	v, err := fn(x)
	if err != nil {
		return 0, fmt.Errorf("stats: %s: %w", name, err)
	}
	return v, nil
}

func positive(x []float64) error {
	for i, v := range x {
		if !(v > 0) {
			return fmt.Errorf("%w: observation %d = %v, want > 0", ErrOutOfDomain, i, v)
		}
	}
	return nil
}

// MAD is the median absolute deviation from the median (unscaled).
func MAD(s bootstrap.Sample) (float64, error) {
	return robust("mad", s, 1, mstats.MedianAbsoluteDeviation)
}

// IQR is the interquartile range Q3 − Q1, with quartiles taken as the
// medians of the lower and upper halves.
func IQR(s bootstrap.Sample) (float64, error) {
	return robust("iqr", s, 2, mstats.InterQuartileRange)
}

// Trimean is (Q1 + 2·Q2 + Q3) / 4.
func Trimean(s bootstrap.Sample) (float64, error) {
	return robust("trimean", s, 2, mstats.Trimean)
}

// GeometricMean is the n-th root of the product. Every observation must be > 0.
func GeometricMean(s bootstrap.Sample) (float64, error) {
	return robust("geomean", s, 1, func(x mstats.Float64Data) (float64, error) {
		if err := positive(x); err != nil {
			return 0, err
		}
		return mstats.GeometricMean(x)
	})
}

// HarmonicMean is n / Σ(1/xᵢ). Every observation must be > 0.
func HarmonicMean(s bootstrap.Sample) (float64, error) {
	return robust("harmean", s, 1, func(x mstats.Float64Data) (float64, error) {
		if err := positive(x); err != nil {
			return 0, err
		}
		return mstats.HarmonicMean(x)
	})
}
