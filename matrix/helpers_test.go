// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the Dense and summary tests.
//   • Force the generic (non-*Dense) code paths via hide.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bootci/matrix"
)

const epsTight = 1e-12

// hide wraps any Matrix to hide its concrete type from type assertions,
// so code under test takes its At-based fallback path.
type hide struct{ matrix.Matrix }

// mustRows builds a Dense from rows or fails the test.
func mustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseRows(rows)
	require.NoError(t, err)
	return m
}

// mustAt reads (i,j) or fails the test.
func mustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)
	return v
}
