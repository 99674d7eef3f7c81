// SPDX-License-Identifier: MIT

// Package bootstrap: domain types. Observation sets, statistic functions,
// interval kinds and intervals.

package bootstrap

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/bootci/matrix"
)

// Sample is an ordered, fixed-size set of observations.
//
// Contract:
//   - Len is the number of observations n (rows, for tables).
//   - Select returns a NEW Sample holding observations idx[0], idx[1], ...
//     in that order; repeats are allowed. Every index must lie in [0, Len());
//     implementations may panic otherwise (programmer error). The receiver is
//     never modified.
//   - Clone returns a deep copy.
//
// The engine calls Select concurrently from several goroutines.
type Sample interface {
	Len() int
	Select(idx []int) Sample
	Clone() Sample
}

// leaveOneOuter is implemented by samples with a cheaper leave-one-out
// path than Select over n-1 indices.
type leaveOneOuter interface {
	Without(i int) Sample
}

// Vector is a Sample of scalar observations.
type Vector []float64

// Len returns the number of observations.
func (v Vector) Len() int { return len(v) }

// Select gathers v[idx[0]], v[idx[1]], ... into a new Vector.
func (v Vector) Select(idx []int) Sample {
	out := make(Vector, len(idx))
	for k, i := range idx {
		out[k] = v[i]
	}
	return out
}

// Without returns a copy of v with observation i removed.
func (v Vector) Without(i int) Sample {
	out := make(Vector, 0, len(v)-1)
	out = append(out, v[:i]...)
	return append(out, v[i+1:]...)
}

// Clone returns a deep copy of v.
func (v Vector) Clone() Sample {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// Table is a Sample of multi-dimensional observations: one row per
// observation. Resampling selects whole rows, never individual cells.
type Table struct {
	m *matrix.Dense
}

// NewTable builds a Table from rows (one observation per row).
// Empty, ragged or non-finite input yields ErrInvalidInput (wrapping the
// underlying matrix error).
func NewTable(rows [][]float64) (Table, error) {
	m, err := matrix.NewDenseRows(rows)
	if err != nil {
		return Table{}, fmt.Errorf("bootstrap.%s: %w: %w", opNewTable, ErrInvalidInput, err)
	}
	return Table{m: m}, nil
}

// TableOf wraps an existing matrix. The matrix must not be modified while
// a bootstrap run or interval computation is using the Table.
func TableOf(m *matrix.Dense) Table {
	return Table{m: m}
}

// Len returns the number of rows (observations).
func (t Table) Len() int {
	if t.m == nil {
		return 0
	}
	return t.m.Rows()
}

// Cols returns the number of variables per observation.
func (t Table) Cols() int {
	if t.m == nil {
		return 0
	}
	return t.m.Cols()
}

// Dense exposes the underlying matrix for statistic functions. Treat it as
// read-only.
func (t Table) Dense() *matrix.Dense { return t.m }

// Col returns a copy of variable j across all observations.
func (t Table) Col(j int) ([]float64, error) {
	if t.m == nil {
		return nil, matrix.ErrNilMatrix
	}
	return t.m.Col(j)
}

// Select gathers whole rows idx[0], idx[1], ... into a new Table.
// Panics on an out-of-range index.
func (t Table) Select(idx []int) Sample {
	m, err := t.m.SelectRows(idx)
	if err != nil {
		panic(fmt.Sprintf("bootstrap: Table.Select: %v", err))
	}
	return Table{m: m}
}

// Without returns a copy of t with row i removed.
// Panics on an out-of-range index or a single-row table.
func (t Table) Without(i int) Sample {
	m, err := t.m.WithoutRow(i)
	if err != nil {
		panic(fmt.Sprintf("bootstrap: Table.Without: %v", err))
	}
	return Table{m: m}
}

// Clone returns a deep copy of t.
func (t Table) Clone() Sample {
	if t.m == nil {
		return Table{}
	}
	return Table{m: t.m.Copy()}
}

// Statistic maps a Sample to a single scalar. It must be deterministic and
// free of side effects: it is invoked concurrently, on resamples and on
// leave-one-out subsets. A returned error aborts the run and reaches the
// caller unmodified.
type Statistic func(Sample) (float64, error)

// MultiStatistic maps a Sample to k scalars (k fixed for every input).
// Same purity and error rules as Statistic.
type MultiStatistic func(Sample) ([]float64, error)

// Type enumerates the confidence interval methods.
type Type int

const (
	// Basic is the reflection interval [2t − Q(1−α/2), 2t − Q(α/2)]. Default.
	Basic Type = iota
	// Percentile is [Q(α/2), Q(1−α/2)] over the replicates.
	Percentile
	// Normal is t − bias ± z(1−α/2)·stdev.
	Normal
	// Studentized uses per-replicate variances supplied with WithVariance.
	Studentized
	// BCA is the bias-corrected and accelerated percentile interval.
	BCA

	numTypes
)

var typeNames = [numTypes]string{
	Basic:       "basic",
	Percentile:  "percentile",
	Normal:      "normal",
	Studentized: "studentized",
	BCA:         "bca",
}

// Types lists every interval method in declaration order.
func Types() []Type {
	return []Type{Basic, Percentile, Normal, Studentized, BCA}
}

// String returns the canonical lower-case name of t.
func (t Type) String() string {
	if !t.valid() {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

func (t Type) valid() bool {
	return t >= 0 && t < numTypes
}

// ParseType maps basic|percentile|normal|studentized|bca (case-insensitive)
// to a Type. Any other string yields ErrValidation; there is no fallback.
func ParseType(s string) (Type, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range typeNames {
		if n == name {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("bootstrap: unknown interval type %q: %w", s, ErrValidation)
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	if !t.valid() {
		return nil, fmt.Errorf("bootstrap: unknown interval type %d: %w", int(t), ErrValidation)
	}
	return []byte(typeNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(b []byte) error {
	v, err := ParseType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Interval is a two-sided confidence interval [Low, High].
type Interval struct {
	Low  float64 `json:"low" yaml:"low"`
	High float64 `json:"high" yaml:"high"`
}

// Width returns High − Low.
func (iv Interval) Width() float64 { return iv.High - iv.Low }

// Contains reports whether Low ≤ x ≤ High.
func (iv Interval) Contains(x float64) bool { return iv.Low <= x && x <= iv.High }

// String formats the interval as "[low, high]".
func (iv Interval) String() string { return fmt.Sprintf("[%g, %g]", iv.Low, iv.High) }
