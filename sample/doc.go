// Package sample draws bootstrap resamples: n positions chosen uniformly
// with replacement from a population of size n.
//
// Randomness always flows through an explicit *Source:
//
//	src := sample.NewSource(42)      // reproducible
//	streams := src.Streams(8)        // one independent stream per task
//	idx, err := sample.Indices(streams[0], n, nil)
//
// Streams are derived sequentially from the Source with a SplitMix64 mix,
// so a given seed yields the same draws however the streams are later
// scheduled across goroutines.
package sample
