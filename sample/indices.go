// SPDX-License-Identifier: MIT

package sample

import "math/rand"

// Indices fills dst with n indices drawn independently and uniformly from
// [0, n): one bootstrap resample, by position. dst is reused when its
// capacity allows, so a worker can draw many resamples without allocating.
//
// Errors:
//   - ErrEmpty if n < 1.
//
// Complexity: O(n) time, O(n) space only when dst must grow.
func Indices(rng *rand.Rand, n int, dst []int) ([]int, error) {
	if n < 1 {
		return nil, ErrEmpty
	}
	if cap(dst) < n {
		dst = make([]int, n)
	}
	dst = dst[:n]

	var i int
	for i = 0; i < n; i++ {
		dst[i] = rng.Intn(n)
	}

	return dst, nil
}

// Floats draws a resample of x (same length, with replacement) into dst.
//
// Errors:
//   - ErrEmpty if x is empty.
//
// Complexity: O(len(x)).
func Floats(rng *rand.Rand, x []float64, dst []float64) ([]float64, error) {
	n := len(x)
	if n < 1 {
		return nil, ErrEmpty
	}
	if cap(dst) < n {
		dst = make([]float64, n)
	}
	dst = dst[:n]

	var i int
	for i = 0; i < n; i++ {
		dst[i] = x[rng.Intn(n)]
	}

	return dst, nil
}
