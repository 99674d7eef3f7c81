// SPDX-License-Identifier: MIT

// Package matrix: Dense is a concrete, row-major implementation of the
// Matrix interface, storing elements in a flat slice for cache friendliness.
// Row gathering (SelectRows, WithoutRow) is the primitive the bootstrap
// engine uses to resample whole observations.

package matrix

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Operation name constants for unified error wrapping.
const (
	opNewDense     = "NewDense"
	opNewDenseData = "NewDenseData"
	opNewDenseRows = "NewDenseRows"
	opSelectRows   = "SelectRows"
	opWithoutRow   = "WithoutRow"
	opRow          = "Row"
	opSetRow       = "SetRow"
	opCol          = "Col"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opNewDense, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseData creates an r×c Dense matrix from a row-major buffer.
// The buffer is copied; later writes to data do not affect the matrix.
//
// Errors:
//   - ErrBadShape if rows<=0 or cols<=0.
//   - ErrDimensionMismatch if len(data) != rows*cols.
//   - ErrNaNInf if any element is not finite.
//
// Complexity: O(r*c).
func NewDenseData(rows, cols int, data []float64) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opNewDenseData, ErrBadShape)
	}
	if len(data) != rows*cols {
		return nil, matrixErrorf(opNewDenseData, ErrDimensionMismatch)
	}
	if err := ValidateFinite(data); err != nil {
		return nil, matrixErrorf(opNewDenseData, err)
	}

	buf := make([]float64, len(data))
	copy(buf, data)

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewDenseRows builds a Dense matrix from a slice of rows (one observation per row).
// Stage 1 (Validate): non-empty, rectangular, finite.
// Stage 2 (Execute): copy rows into a flat row-major buffer.
//
// Errors:
//   - ErrBadShape if there are no rows or the first row is empty.
//   - ErrDimensionMismatch if rows are ragged.
//   - ErrNaNInf if any element is not finite.
//
// Complexity: O(r*c).
func NewDenseRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opNewDenseRows, ErrBadShape)
	}
	r, c := len(rows), len(rows[0])
	data := make([]float64, 0, r*c)

	var i int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, matrixErrorf(opNewDenseRows, ErrDimensionMismatch)
		}
		if err := ValidateFinite(rows[i]); err != nil {
			return nil, matrixErrorf(opNewDenseRows, err)
		}
		data = append(data, rows[i]...)
	}

	return &Dense{r: r, c: c, data: data}, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int {
	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, matrixErrorf(opRow, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// SetRow overwrites row i with v. Writers targeting distinct rows may run
// concurrently: rows never share backing elements.
//
// Errors:
//   - ErrOutOfRange if i is invalid.
//   - ErrDimensionMismatch if len(v) != Cols().
//
// Complexity: O(c).
func (m *Dense) SetRow(i int, v []float64) error {
	if i < 0 || i >= m.r {
		return matrixErrorf(opSetRow, ErrOutOfRange)
	}
	if len(v) != m.c {
		return matrixErrorf(opSetRow, ErrDimensionMismatch)
	}
	copy(m.data[i*m.c:(i+1)*m.c], v)

	return nil
}

// Col returns a copy of column j.
// Complexity: O(r).
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, matrixErrorf(opCol, ErrOutOfRange)
	}
	out := make([]float64, m.r)

	var i int
	for i = 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// SelectRows gathers the rows listed in idx into a new matrix, in idx order.
// Repeated indices are allowed (sampling with replacement).
// Stage 1 (Validate): idx non-empty and every index within [0, Rows()).
// Stage 2 (Execute): copy each selected row into a fresh buffer.
//
// Errors:
//   - ErrBadShape if idx is empty.
//   - ErrOutOfRange if any index is invalid.
//
// Complexity: O(len(idx)*c).
func (m *Dense) SelectRows(idx []int) (*Dense, error) {
	if len(idx) == 0 {
		return nil, matrixErrorf(opSelectRows, ErrBadShape)
	}
	out := &Dense{r: len(idx), c: m.c, data: make([]float64, len(idx)*m.c)}

	var k, i int
	for k, i = range idx {
		if i < 0 || i >= m.r {
			return nil, matrixErrorf(opSelectRows, ErrOutOfRange)
		}
		copy(out.data[k*m.c:(k+1)*m.c], m.data[i*m.c:(i+1)*m.c])
	}

	return out, nil
}

// WithoutRow returns a copy of the matrix with row i removed
// (the leave-one-out subset used by jackknife estimators).
//
// Errors:
//   - ErrOutOfRange if i is invalid.
//   - ErrBadShape if the matrix has a single row.
//
// Complexity: O((r-1)*c).
func (m *Dense) WithoutRow(i int) (*Dense, error) {
	if i < 0 || i >= m.r {
		return nil, matrixErrorf(opWithoutRow, ErrOutOfRange)
	}
	if m.r == 1 {
		return nil, matrixErrorf(opWithoutRow, ErrBadShape)
	}
	out := &Dense{r: m.r - 1, c: m.c, data: make([]float64, 0, (m.r-1)*m.c)}
	out.data = append(out.data, m.data[:i*m.c]...)
	out.data = append(out.data, m.data[(i+1)*m.c:]...)

	return out, nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.Copy()
}

// Copy is Clone with a concrete return type.
func (m *Dense) Copy() *Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf}
}

// Mat exposes the matrix as a gonum *mat.Dense sharing the same backing
// storage (no copy). Treat the view as read-only.
func (m *Dense) Mat() *mat.Dense {
	return mat.NewDense(m.r, m.c, m.data)
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
