// Package bootci is a toolkit for nonparametric bootstrap estimation:
// resample your data, recompute a statistic, and turn the replicate
// distribution into bias, standard error and confidence intervals.
//
// 🚀 What is bootci?
//
//	A small, deterministic, parallel bootstrap engine that brings together:
//		• Replication: r resamples with replacement, fanned out over workers
//		• Aggregation: original estimate, bias and bootstrap standard error
//		• Intervals: basic, percentile, normal, studentized and BCA
//		• Jackknife acceleration for BCA, computed once per result
//		• Ready-made statistics: mean, median, variance, robust spreads, correlation
//
// ✨ Why choose bootci?
//
//   - Reproducible: one seed gives the same replicates for any worker count
//   - Honest errors: sentinel errors matched with errors.Is, statistic errors untouched
//   - Composable: scalar or multi-output statistics over vectors or tables
//   - Scriptable: the bootci command reads text or CSV and prints text, JSON, YAML or TOML
//
// Packages:
//
//	bootstrap/  Run, RunMulti, Result, CI, CIAll, Intervals
//	sample/     seeded random streams and resample index draws
//	matrix/     dense row-major tables backing bootstrap.Table
//	stats/      statistics ready to pass to Run
//	log/        logging interface with a zerolog adapter
//	cmd/        the bootci command line
//
// Quick ASCII picture of one run:
//
//	data ──► resample ×r ──► T*₁ … T*ᵣ ──► sort ──► [low, high]
//	  │                                     ▲
//	  └──────────── t = fn(data) ───────────┘
//
//	go install github.com/katalvlaran/bootci/cmd/bootci@latest
package bootci
