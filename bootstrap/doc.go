// Package bootstrap computes nonparametric bootstrap estimates of a
// statistic's sampling distribution and confidence intervals from them.
//
// 🚀 What is the bootstrap?
//
//	Resample the observed data with replacement r times, recompute the
//	statistic on every resample, and treat the r replicate values as an
//	empirical sampling distribution: its mean gives the bias, its spread
//	the standard error, its quantiles the confidence limits.
//
// ✨ Key features:
//   - scalar (Run) and multi-output (RunMulti) statistics
//   - vector or table observations (rows resampled whole)
//   - five interval methods: basic, percentile, normal, studentized, BCA
//   - parallel replicate generation and jackknife, reproducible per seed
//     regardless of the worker count
//   - immutable Results: accessors return copies, CI never mutates
//
// ⚙️ Usage:
//
//	res, err := bootstrap.Run(bootstrap.Vector(x), stats.Mean, 1000, bootstrap.WithSeed(7))
//	if err != nil {
//	  // ErrInvalidInput, or the statistic's own error
//	}
//	iv, err := res.CI(bootstrap.WithType(bootstrap.BCA), bootstrap.WithLevel(0.95))
//
// Errors are sentinels matched with errors.Is: ErrInvalidInput,
// ErrValidation, ErrComputation (refined by ErrDegenerateStatistic and
// ErrDegenerateBias). Errors from statistic functions are returned as is.
//
// Performance:
//
//   - Replication: O(r·(n + cost(stat))) work over WithWorkers goroutines.
//   - CI: O(r log r) for the sorted snapshot; BCA adds n statistic calls.
package bootstrap
