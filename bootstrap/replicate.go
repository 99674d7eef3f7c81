// SPDX-License-Identifier: MIT

package bootstrap

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bootci/log"
	"github.com/katalvlaran/bootci/matrix"
	"github.com/katalvlaran/bootci/sample"
)

// Run bootstraps a scalar statistic.
//
// Description:
//
//	Evaluates fn once on data (the original estimate), then r times on
//	resamples of data drawn with replacement, and summarizes the replicates
//	into a Result. Replicates are computed in parallel (see WithWorkers);
//	with WithSeed the outcome does not depend on the degree of parallelism.
//
// Errors:
//   - ErrInvalidInput if r < 1, fn is nil, or data is nil or empty.
//   - Any error returned by fn, unmodified. No partial result is returned.
//
// Complexity: O(r·(n + cost(fn))) work, spread over the workers.
func Run(data Sample, fn Statistic, r int, opts ...Option) (*Result, error) {
	if fn == nil {
		return nil, bootErrorf(opRun, ErrInvalidInput, "nil statistic")
	}
	multi := func(s Sample) ([]float64, error) {
		v, err := fn(s)
		if err != nil {
			return nil, err
		}
		return []float64{v}, nil
	}

	cfg := newConfig(opts)
	results, err := run(opRun, data, multi, []Statistic{fn}, r, cfg)
	if err != nil {
		return nil, err
	}
	return results[0], nil
}

// RunMulti bootstraps a statistic with k outputs and returns one Result per
// output, in output order. All Results share the observation set and r but
// hold their own replicate column; each stores a component-selecting
// wrapper around fn, so BCA's jackknife recomputes the right scalar.
//
// Errors:
//   - ErrInvalidInput if r < 1, fn is nil, data is nil or empty, fn returns
//     no values, or the number of outputs changes between calls.
//   - Any error returned by fn, unmodified.
func RunMulti(data Sample, fn MultiStatistic, r int, opts ...Option) ([]*Result, error) {
	if fn == nil {
		return nil, bootErrorf(opRunMulti, ErrInvalidInput, "nil statistic")
	}
	cfg := newConfig(opts)
	return run(opRunMulti, data, fn, nil, r, cfg)
}

// run validates, replicates and aggregates. stats holds the per-component
// scalar statistics to store; nil means "build selectors over fn".
func run(op string, data Sample, fn MultiStatistic, stats []Statistic, r int, cfg *config) ([]*Result, error) {
	if r < 1 {
		return nil, bootErrorf(op, ErrInvalidInput, "replicate count %d < 1", r)
	}
	if data == nil || data.Len() < 1 {
		return nil, bootErrorf(op, ErrInvalidInput, "empty observation set")
	}

	// Snapshot once: later writes to the caller's data cannot reach the run
	// or the Results.
	data = data.Clone()

	tHat, raw, err := replicate(op, data, fn, r, cfg)
	if err != nil {
		return nil, err
	}

	if stats == nil {
		stats = make([]Statistic, len(tHat))
		for j := range stats {
			stats[j] = pick(fn, j)
		}
	}
	return aggregate(tHat, raw, stats, data, cfg)
}

// replicate computes tHat = fn(data) and the r×k replicate table.
// Implementation:
//   - Stage 1: evaluate fn on the original data; k = len(tHat).
//   - Stage 2: split [0, r) into chunks of cfg.chunk replicates and derive one
//     random stream per chunk, sequentially, on this goroutine.
//   - Stage 3: fork-join over chunks with an errgroup limited to cfg.workers.
//     A Vector is resampled by value (sample.Floats), anything else through
//     sample.Indices and Select; both draw the same positions.
//     Replicate i always lands in row i. The first failure cancels the group;
//     remaining chunks stop before their next replicate.
func replicate(op string, data Sample, fn MultiStatistic, r int, cfg *config) ([]float64, *matrix.Dense, error) {
	n := data.Len()
	tHat, err := fn(data)
	if err != nil {
		return nil, nil, err
	}
	k := len(tHat)
	if k == 0 {
		return nil, nil, bootErrorf(op, ErrInvalidInput, "statistic returned no values")
	}

	raw, err := matrix.NewDense(r, k)
	if err != nil {
		return nil, nil, bootErrorf(op, ErrInvalidInput, "replicate table: %v", err)
	}

	chunks := (r + cfg.chunk - 1) / cfg.chunk
	streams := cfg.src.Streams(chunks)
	logger := log.Component(cfg.logger, "bootstrap")
	logger.Debug("replication started", log.Fields{
		"observations": n,
		"replicates":   r,
		"statistics":   k,
		"chunks":       chunks,
		"workers":      cfg.workers,
	})
	start := time.Now()

	// Vectors are drawn directly; both paths consume the stream identically.
	vec, isVec := data.(Vector)

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(cfg.workers)
	for c := 0; c < chunks; c++ {
		lo := c * cfg.chunk
		hi := min(lo+cfg.chunk, r)
		rng := streams[c]
		g.Go(func() error {
			var idx []int
			var t []float64
			var err error
			for i := lo; i < hi; i++ {
				if ctx.Err() != nil {
					return nil
				}
				var rs Sample
				if isVec {
					// Fresh buffer each time: the statistic may keep its sample.
					var x []float64
					if x, err = sample.Floats(rng, vec, nil); err != nil {
						return bootErrorf(op, ErrInvalidInput, "resample: %v", err)
					}
					rs = Vector(x)
				} else {
					if idx, err = sample.Indices(rng, n, idx); err != nil {
						return bootErrorf(op, ErrInvalidInput, "resample: %v", err)
					}
					rs = data.Select(idx)
				}
				if t, err = fn(rs); err != nil {
					return err
				}
				if len(t) != k {
					return bootErrorf(op, ErrInvalidInput, "statistic returned %d values on replicate %d, want %d", len(t), i, k)
				}
				if err = raw.SetRow(i, t); err != nil {
					return bootErrorf(op, ErrInvalidInput, "replicate %d: %v", i, err)
				}
			}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		logger.Debug("replication failed", log.Fields{"error": err})
		return nil, nil, err
	}

	logger.Debug("replication finished", log.Fields{"elapsed": time.Since(start)})
	return tHat, raw, nil
}

// pick returns a Statistic that evaluates fn and selects output j.
func pick(fn MultiStatistic, j int) Statistic {
	return func(s Sample) (float64, error) {
		out, err := fn(s)
		if err != nil {
			return 0, err
		}
		if j >= len(out) {
			return 0, bootErrorf(opRunMulti, ErrInvalidInput, "statistic returned %d values, want > %d", len(out), j)
		}
		return out[j], nil
	}
}
