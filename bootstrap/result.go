// SPDX-License-Identifier: MIT

package bootstrap

import (
	"fmt"

	"github.com/katalvlaran/bootci/log"
	"github.com/katalvlaran/bootci/matrix"
)

// Result is the immutable outcome of bootstrapping one statistic.
//
// All fields are unexported; accessors that expose slices or samples
// return deep copies, so nothing a caller does to them can change what a
// later CI call sees. Safe for concurrent use.
type Result struct {
	original   float64
	bias       float64
	stdev      float64
	replicates []float64 // generation order, len == r
	data       Sample    // shared, read-only
	stat       Statistic // scalar statistic used for jackknife recomputation
	index      int       // component index in multi-statistic runs

	workers int
	logger  log.Logger
}

// aggregate reduces the r×k replicate table column by column.
// Column j yields bias_j = mean_j − tHat_j and the sample standard
// deviation (divisor r−1) via matrix.ColumnMeanStdDev.
func aggregate(tHat []float64, raw *matrix.Dense, stats []Statistic, data Sample, cfg *config) ([]*Result, error) {
	means, sds, err := matrix.ColumnMeanStdDev(raw)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: aggregate: %w", err)
	}

	out := make([]*Result, len(tHat))
	for j := range tHat {
		col, err := raw.Col(j)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: aggregate: %w", err)
		}
		out[j] = &Result{
			original:   tHat[j],
			bias:       means[j] - tHat[j],
			stdev:      sds[j],
			replicates: col,
			data:       data,
			stat:       stats[j],
			index:      j,
			workers:    cfg.workers,
			logger:     cfg.logger,
		}
	}
	return out, nil
}

// Original returns the statistic evaluated on the unresampled data.
func (r *Result) Original() float64 { return r.original }

// Bias returns mean(replicates) − Original().
func (r *Result) Bias() float64 { return r.bias }

// StdDev returns the sample standard deviation of the replicates
// (divisor r−1); 0 when there is a single replicate.
func (r *Result) StdDev() float64 { return r.stdev }

// R returns the number of replicates.
func (r *Result) R() int { return len(r.replicates) }

// N returns the number of observations in the original data.
func (r *Result) N() int { return r.data.Len() }

// Index returns the output component this Result describes (0 for Run).
func (r *Result) Index() int { return r.index }

// Replicates returns a copy of the replicate values in generation order.
func (r *Result) Replicates() []float64 {
	out := make([]float64, len(r.replicates))
	copy(out, r.replicates)
	return out
}

// Data returns a deep copy of the original observation set.
func (r *Result) Data() Sample { return r.data.Clone() }

// Statistic returns the scalar statistic that produced this Result. For
// RunMulti it is the selector for component Index().
func (r *Result) Statistic() Statistic { return r.stat }

// CI computes a confidence interval for this Result; see CI.
func (r *Result) CI(opts ...CIOption) (Interval, error) {
	return CI(r, opts...)
}

// String summarizes the Result.
func (r *Result) String() string {
	return fmt.Sprintf("original=%g bias=%g stdev=%g r=%d n=%d", r.original, r.bias, r.stdev, r.R(), r.N())
}
