// SPDX-License-Identifier: MIT
// Package bootstrap: sentinel error set.
// Every error produced by this package wraps exactly one of the sentinels
// below and is matched with errors.Is. Errors returned by caller-supplied
// statistic functions are the exception: they are passed through unmodified.

package bootstrap

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput reports malformed or missing required arguments:
	// r < 1, a nil statistic, a nil or empty Sample, a nil Result, or a
	// multi-output statistic whose output length changes between calls.
	ErrInvalidInput = errors.New("bootstrap: invalid input")

	// ErrValidation reports a recognized option with an out-of-range or
	// wrong-shape value: alpha/level outside (0,1) or both supplied, an
	// unknown interval type, a missing or malformed variance slice.
	ErrValidation = errors.New("bootstrap: invalid option")

	// ErrComputation reports a numerically undefined result.
	ErrComputation = errors.New("bootstrap: computation undefined")

	// ErrDegenerateStatistic: the statistic is constant under leave-one-out,
	// so the BCA acceleration has a zero denominator. Wraps ErrComputation.
	ErrDegenerateStatistic = fmt.Errorf("%w: statistic is constant under leave-one-out", ErrComputation)

	// ErrDegenerateBias: every replicate lies on one side of the original
	// estimate, so the BCA bias correction is infinite. Wraps ErrComputation.
	ErrDegenerateBias = fmt.Errorf("%w: all replicates on one side of the estimate", ErrComputation)
)

// Operation tags used in wrapped errors.
const (
	opRun       = "Run"
	opRunMulti  = "RunMulti"
	opCI        = "CI"
	opCIAll     = "CIAll"
	opIntervals = "Intervals"
	opNewTable  = "NewTable"
)

// bootErrorf wraps sentinel with an operation tag and a formatted detail.
func bootErrorf(op string, sentinel error, format string, args ...any) error {
	return fmt.Errorf("bootstrap.%s: %s: %w", op, fmt.Sprintf(format, args...), sentinel)
}
