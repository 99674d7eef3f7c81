// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column summaries over an r×c table (r observations of c variables).
//     The bootstrap aggregator reduces its replicate-by-statistic table with
//     ColumnMeanStdDev; statistic helpers reuse it for multivariate data.
//
// Determinism & Performance:
//   - Fixed column order; each column is reduced by gonum/stat in one pass.
//   - Dense fast-path reads the row-major buffer directly; other Matrix
//     implementations fall back to At with full error propagation.

package matrix

import "gonum.org/v1/gonum/stat"

const opColumnMeanStdDev = "ColumnMeanStdDev"

// ColumnMeanStdDev returns the per-column mean and sample standard deviation
// (divisor r-1) of X.
// Implementation:
//   - Stage 1: Validate X (non-nil, non-empty).
//   - Stage 2: Gather each column into a scratch buffer (Dense fast-path; At fallback).
//   - Stage 3: Reduce with stat.MeanStdDev.
//
// Behavior highlights:
//   - A single row carries no spread information: stds are 0 when r == 1.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape from validation; wrapped At errors from the fallback path.
//
// Complexity:
//   - Time O(r*c), Space O(r + c).
func ColumnMeanStdDev(X Matrix) (means, stds []float64, err error) {
	if err = ValidateNonEmpty(X); err != nil {
		return nil, nil, matrixErrorf(opColumnMeanStdDev, err)
	}

	r, c := X.Rows(), X.Cols()
	means = make([]float64, c)
	stds = make([]float64, c)
	col := make([]float64, r) // scratch, reused per column

	var i, j int
	d, fast := X.(*Dense)
	for j = 0; j < c; j++ {
		if fast {
			for i = 0; i < r; i++ {
				col[i] = d.data[i*c+j]
			}
		} else {
			for i = 0; i < r; i++ {
				if col[i], err = X.At(i, j); err != nil {
					return nil, nil, matrixErrorf(opColumnMeanStdDev, err)
				}
			}
		}

		if r == 1 {
			means[j] = col[0]
			continue
		}
		means[j], stds[j] = stat.MeanStdDev(col, nil)
	}

	return means, stds, nil
}
