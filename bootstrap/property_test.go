// SPDX-License-Identifier: MIT

package bootstrap_test

import (
	"math"
	"testing"

	"pgregory.net/rapid"

	"github.com/katalvlaran/bootci/bootstrap"
	"github.com/katalvlaran/bootci/stats"
)

// Property-based tests: random data, seeds and alphas. They check the
// structural guarantees every run and every interval must satisfy,
// independent of the particular draws.

func genVector(t *rapid.T, minLen, maxLen int) bootstrap.Vector {
	x := rapid.SliceOfN(rapid.Float64Range(-1e3, 1e3), minLen, maxLen).Draw(t, "data")
	return bootstrap.Vector(x)
}

// TestRun_Invariants_Property checks original/bias/shape on arbitrary input.
func TestRun_Invariants_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		data := genVector(t, 1, 40)
		r := rapid.IntRange(1, 200).Draw(t, "r")
		seed := rapid.Int64().Draw(t, "seed")
		workers := rapid.IntRange(1, 8).Draw(t, "workers")

		res, err := bootstrap.Run(data, stats.Mean, r,
			bootstrap.WithSeed(seed), bootstrap.WithWorkers(workers))
		if err != nil {
			t.Fatalf("run: %v", err)
		}

		want, _ := stats.Mean(data)
		if res.Original() != want {
			t.Fatalf("original %v, want %v", res.Original(), want)
		}
		reps := res.Replicates()
		if len(reps) != r {
			t.Fatalf("len(replicates) = %d, want %d", len(reps), r)
		}

		var sum float64
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, v := range reps {
			sum += v
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
		bias := sum/float64(r) - want
		if math.Abs(bias-res.Bias()) > 1e-9*math.Max(1, math.Abs(bias)) {
			t.Fatalf("bias %v, want %v", res.Bias(), bias)
		}
		if res.StdDev() < 0 || math.IsNaN(res.StdDev()) {
			t.Fatalf("stdev %v", res.StdDev())
		}

		// The mean of a resample lies within the data range.
		dlo, dhi := math.Inf(1), math.Inf(-1)
		for _, v := range data {
			dlo, dhi = math.Min(dlo, v), math.Max(dhi, v)
		}
		if lo < dlo-1e-9 || hi > dhi+1e-9 {
			t.Fatalf("replicate range [%v,%v] outside data range [%v,%v]", lo, hi, dlo, dhi)
		}
	})
}

// TestCI_Ordering_Property checks Low ≤ High and the basic/percentile
// reflection for random alphas.
func TestCI_Ordering_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		data := genVector(t, 2, 30)
		r := rapid.IntRange(2, 150).Draw(t, "r")
		alpha := rapid.Float64Range(1e-6, 1-1e-6).Draw(t, "alpha")

		res, err := bootstrap.Run(data, stats.Median, r, bootstrap.WithSeed(rapid.Int64().Draw(t, "seed")))
		if err != nil {
			t.Fatalf("run: %v", err)
		}

		perc, err := res.CI(bootstrap.WithType(bootstrap.Percentile), bootstrap.WithAlpha(alpha))
		if err != nil {
			t.Fatalf("percentile: %v", err)
		}
		basic, err := res.CI(bootstrap.WithType(bootstrap.Basic), bootstrap.WithAlpha(alpha))
		if err != nil {
			t.Fatalf("basic: %v", err)
		}
		norm, err := res.CI(bootstrap.WithType(bootstrap.Normal), bootstrap.WithAlpha(alpha))
		if err != nil {
			t.Fatalf("normal: %v", err)
		}

		for name, iv := range map[string]bootstrap.Interval{"percentile": perc, "basic": basic, "normal": norm} {
			if iv.Low > iv.High {
				t.Fatalf("%s interval %s is reversed", name, iv)
			}
		}

		tol := 1e-9 * math.Max(1, math.Abs(res.Original()))
		if math.Abs(basic.Low-(2*res.Original()-perc.High)) > tol ||
			math.Abs(basic.High-(2*res.Original()-perc.Low)) > tol {
			t.Fatalf("basic %s is not the reflection of percentile %s about %v", basic, perc, res.Original())
		}
	})
}

// TestRun_WorkerInvariance_Property: for a fixed seed the replicate vector is
// the same whatever the worker count and however chunks are scheduled.
func TestRun_WorkerInvariance_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		data := genVector(t, 1, 25)
		r := rapid.IntRange(1, 300).Draw(t, "r")
		seed := rapid.Int64().Draw(t, "seed")
		chunk := rapid.IntRange(1, 70).Draw(t, "chunk")

		a, err := bootstrap.Run(data, stats.Mean, r,
			bootstrap.WithSeed(seed), bootstrap.WithChunkSize(chunk), bootstrap.WithWorkers(1))
		if err != nil {
			t.Fatalf("run: %v", err)
		}
		b, err := bootstrap.Run(data, stats.Mean, r,
			bootstrap.WithSeed(seed), bootstrap.WithChunkSize(chunk),
			bootstrap.WithWorkers(rapid.IntRange(2, 16).Draw(t, "workers")))
		if err != nil {
			t.Fatalf("run: %v", err)
		}

		ra, rb := a.Replicates(), b.Replicates()
		for i := range ra {
			if ra[i] != rb[i] {
				t.Fatalf("replicate %d differs: %v vs %v", i, ra[i], rb[i])
			}
		}
	})
}
