// SPDX-License-Identifier: MIT

package bootstrap

import (
	"context"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bootci/log"
)

// jackknifeChunk is the number of leave-one-out evaluations per task.
const jackknifeChunk = 32

// acceleration computes the BCA acceleration constant
//
//	a = Σuᵢ³ / (6·(Σuᵢ²)^{3/2}),  uᵢ = t − t₍ᵢ₎
//
// where t₍ᵢ₎ is the stored statistic on the ORIGINAL data without
// observation i.
//
// Errors:
//   - ErrComputation if n < 2 (no leave-one-out subset is non-empty).
//   - ErrDegenerateStatistic if Σuᵢ² == 0.
//   - Errors from the statistic, unmodified.
func acceleration(res *Result) (float64, error) {
	u, err := jackknife(res)
	if err != nil {
		return 0, err
	}

	var s2, s3 float64
	for _, v := range u {
		sq := v * v
		s2 += sq
		s3 += sq * v
	}
	if s2 == 0 {
		return 0, bootErrorf(opCI, ErrDegenerateStatistic, "sum of squared jackknife deviations is zero")
	}
	return s3 / (6 * math.Pow(s2, 1.5)), nil
}

// jackknife returns the deviations uᵢ = t − t₍ᵢ₎ for i in [0, n).
// Implementation:
//   - Stage 1: guard n ≥ 2.
//   - Stage 2: fork-join over chunks of indices with an errgroup limited to
//     the run's worker count; deviation i always lands in slot i.
//   - Stage 3: the barrier (Wait) returns the first statistic error as is.
func jackknife(res *Result) ([]float64, error) {
	data := res.data
	n := data.Len()
	if n < 2 {
		return nil, bootErrorf(opCI, ErrComputation, "jackknife needs at least 2 observations, have %d", n)
	}

	logger := log.Component(res.logger, "bootstrap").With(log.Fields{"output": res.index})
	logger.Debug("jackknife started", log.Fields{"observations": n})
	start := time.Now()

	u := make([]float64, n)
	tHat := res.original
	workers := max(res.workers, 1)

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += jackknifeChunk {
		hi := min(lo+jackknifeChunk, n)
		g.Go(func() error {
			var idx []int
			for i := lo; i < hi; i++ {
				if ctx.Err() != nil {
					return nil
				}
				var subset Sample
				subset, idx = leaveOneOut(data, i, idx)
				t, err := res.stat(subset)
				if err != nil {
					return err
				}
				u[i] = tHat - t
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Debug("jackknife finished", log.Fields{"elapsed": time.Since(start)})
	return u, nil
}

// leaveOneOut returns data without observation i. Samples that implement
// Without use it; others go through Select with a reusable index buffer.
func leaveOneOut(data Sample, i int, idx []int) (Sample, []int) {
	if w, ok := data.(leaveOneOuter); ok {
		return w.Without(i), idx
	}
	n := data.Len()
	idx = idx[:0]
	for j := 0; j < n; j++ {
		if j != i {
			idx = append(idx, j)
		}
	}
	return data.Select(idx), idx
}
