// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for common validation checks.
//  - Return sentinel errors tagged with the validator name so call sites
//    can wrap uniformly and tests can match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil or m is a nil *Dense.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return matrixErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return matrixErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateFinite ensures every element of x is finite.
//
// Returns ErrNaNInf on the first NaN or ±Inf.
// Complexity: O(len(x)).
func ValidateFinite(x []float64) error {
	for _, v := range x {
		if !isFinite(v) {
			return matrixErrorf("ValidateFinite", ErrNaNInf)
		}
	}

	return nil
}

// ValidateNonEmpty ensures m is non-nil and has at least one row and column.
//
// Errors: ErrNilMatrix, then ErrBadShape.
// Complexity: O(1).
func ValidateNonEmpty(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() == 0 || m.Cols() == 0 {
		return matrixErrorf("ValidateNonEmpty", ErrBadShape)
	}

	return nil
}
