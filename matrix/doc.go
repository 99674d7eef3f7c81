// Package matrix provides the row-major table used to hold multi-dimensional
// observations for resampling.
//
// The matrix package provides:
//
//   - Dense, a flat row-major float64 table where each row is one observation.
//   - Row gathering: SelectRows (with repetition, for bootstrap resamples) and
//     WithoutRow (leave-one-out subsets for jackknife estimators).
//   - ColumnMeanStdDev, the per-column summary used to reduce replicate tables.
//   - Mat, a zero-copy bridge to gonum's *mat.Dense for statistics that want
//     gonum's linear algebra.
//
// All routines validate their inputs and return sentinel errors (see errors.go);
// none of them panic on user input.
package matrix
