// SPDX-License-Identifier: MIT

// Package bootstrap: functional configuration for runs (Option) and for
// interval computation (CIOption).
//
// Contract:
//   - Run options validate in their constructors and PANIC on meaningless
//     values (programmer error).
//   - Interval options are different: a bad alpha, level, type or variance
//     is a user-facing ErrValidation, reported by CI before any computation.
//   - Determinism is explicit: seed with WithSeed or WithRand; without either
//     a run draws its base seed once from the process-wide generator.

package bootstrap

import (
	"math"
	"math/rand"
	"runtime"

	"github.com/katalvlaran/bootci/log"
	"github.com/katalvlaran/bootci/sample"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultAlpha is the two-sided significance used when neither WithAlpha
	// nor WithLevel is supplied.
	DefaultAlpha = 0.05

	// DefaultType is the interval method used when WithType is not supplied.
	DefaultType = Basic

	// DefaultChunkSize is the number of consecutive replicates that share
	// one random stream and one task.
	DefaultChunkSize = 64
)

// ---------- Run options ----------

// Option customizes a bootstrap run.
type Option func(*config)

type config struct {
	src     *sample.Source
	workers int
	chunk   int
	logger  log.Logger
}

func newConfig(opts []Option) *config {
	cfg := &config{
		workers: runtime.GOMAXPROCS(0),
		chunk:   DefaultChunkSize,
		logger:  log.Discard,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	if cfg.src == nil {
		cfg.src = sample.NewRandomSource()
	}
	return cfg
}

// WithSeed makes the run reproducible: the same seed, data, statistic and
// r give identical replicates for any worker count.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.src = sample.NewSource(seed)
	}
}

// WithRand derives the run's random streams from r. r is read only on the
// calling goroutine, before workers start. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("bootstrap: WithRand(nil)")
	}
	return func(c *config) {
		c.src = sample.FromRand(r)
	}
}

// WithWorkers bounds the number of goroutines evaluating the statistic,
// both for replicates and for the BCA jackknife. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("bootstrap: WithWorkers(n<1)")
	}
	return func(c *config) {
		c.workers = n
	}
}

// WithChunkSize sets how many replicates share one random stream.
// Changing it changes which draws a seed produces. Panics if n < 1.
func WithChunkSize(n int) Option {
	if n < 1 {
		panic("bootstrap: WithChunkSize(n<1)")
	}
	return func(c *config) {
		c.chunk = n
	}
}

// WithLogger attaches a structured logger. nil means no logging.
func WithLogger(l log.Logger) Option {
	return func(c *config) {
		c.logger = log.OrDiscard(l)
	}
}

// ---------- Interval options ----------

// CIOption customizes an interval computation.
type CIOption func(*ciConfig)

type ciConfig struct {
	typ         Type
	alpha       float64
	alphaSet    bool
	level       float64
	levelSet    bool
	variance    []float64
	varianceSet bool
}

// ciParams is the validated, canonical form of the interval options.
// Significance is always carried as alpha.
type ciParams struct {
	typ      Type
	alpha    float64
	variance []float64
}

// WithType selects the interval method.
func WithType(t Type) CIOption {
	return func(c *ciConfig) {
		c.typ = t
	}
}

// WithAlpha sets the two-sided significance, alpha ∈ (0,1).
// Mutually exclusive with WithLevel.
func WithAlpha(alpha float64) CIOption {
	return func(c *ciConfig) {
		c.alpha, c.alphaSet = alpha, true
	}
}

// WithLevel sets the confidence level, level ∈ (0,1); alpha = 1 − level.
// Mutually exclusive with WithAlpha.
func WithLevel(level float64) CIOption {
	return func(c *ciConfig) {
		c.level, c.levelSet = level, true
	}
}

// WithVariance supplies one variance estimate per replicate (typically
// from a nested bootstrap). Required by Studentized, ignored otherwise.
// The slice is read, never modified.
func WithVariance(v []float64) CIOption {
	return func(c *ciConfig) {
		c.variance, c.varianceSet = v, true
	}
}

// resolveCI applies opts and validates them against a replicate set of
// length r. Every failure wraps ErrValidation.
func resolveCI(op string, opts []CIOption, r int) (ciParams, error) {
	cfg := ciConfig{typ: DefaultType}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if !cfg.typ.valid() {
		return ciParams{}, bootErrorf(op, ErrValidation, "unknown interval type %d", int(cfg.typ))
	}

	p := ciParams{typ: cfg.typ, alpha: DefaultAlpha}
	switch {
	case cfg.alphaSet && cfg.levelSet:
		return ciParams{}, bootErrorf(op, ErrValidation, "alpha and level are mutually exclusive")
	case cfg.alphaSet:
		if !inOpenUnit(cfg.alpha) {
			return ciParams{}, bootErrorf(op, ErrValidation, "alpha %v outside (0,1)", cfg.alpha)
		}
		p.alpha = cfg.alpha
	case cfg.levelSet:
		if !inOpenUnit(cfg.level) {
			return ciParams{}, bootErrorf(op, ErrValidation, "level %v outside (0,1)", cfg.level)
		}
		p.alpha = 1 - cfg.level
	}

	if p.typ == Studentized {
		if !cfg.varianceSet || cfg.variance == nil {
			return ciParams{}, bootErrorf(op, ErrValidation, "studentized interval requires per-replicate variances")
		}
		if len(cfg.variance) != r {
			return ciParams{}, bootErrorf(op, ErrValidation, "got %d variances for %d replicates", len(cfg.variance), r)
		}
		for i, v := range cfg.variance {
			if !(v > 0) || math.IsInf(v, 0) {
				return ciParams{}, bootErrorf(op, ErrValidation, "variance[%d] = %v, want finite and > 0", i, v)
			}
		}
		p.variance = cfg.variance
	}

	return p, nil
}

// inOpenUnit reports x ∈ (0,1); NaN is rejected.
func inOpenUnit(x float64) bool {
	return x > 0 && x < 1
}
