// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All routines return these sentinels (optionally wrapped with an operation
// tag) and tests check them via errors.Is. No routine panics on
// user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." for consistency. Sentinels
// are returned wrapped with the operation tag via matrixErrorf; callers
// still match them with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> index -> NaN/Inf -> dimension mismatch.

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<=0 or cols<=0),
	// or when an operation would produce an empty table.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible lengths, e.g. ragged input
	// rows or a flat buffer whose length is not rows*cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// matrixErrorf wraps err with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
