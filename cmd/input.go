// SPDX-License-Identifier: MIT

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/tonistiigi/go-csvvalue"

	"github.com/katalvlaran/bootci/bootstrap"
)

var errBadInput = errors.New("invalid input data")

// openInput returns the named file, or stdin for "" and "-".
func openInput(name string, stdin io.Reader) (io.ReadCloser, error) {
	if name == "" || name == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	return f, nil
}

// readSample parses one observation per line. Lines hold a single number,
// comma-separated values (CSV quoting allowed) or whitespace-separated
// values. Blank lines and lines starting with '#' are skipped; the first
// data line may be a header, recognized when none of its fields parses as
// a number.
//
// column >= 0 keeps only that column and yields a Vector. Otherwise a
// single-column input yields a Vector and a wider one a Table.
func readSample(r io.Reader, column int) (bootstrap.Sample, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var rows [][]float64
	var fields []string
	var err error
	lineNo, headerSkipped := 0, false
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.Contains(line, ",") {
			if fields, err = csvvalue.Fields(line, fields[:0]); err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", errBadInput, lineNo, err)
			}
		} else {
			fields = strings.Fields(line)
		}

		row, err := parseRow(fields)
		if err != nil {
			if len(rows) == 0 && !headerSkipped && isHeader(fields) {
				headerSkipped = true
				continue
			}
			return nil, fmt.Errorf("%w: line %d: %v", errBadInput, lineNo, err)
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w: line %d: %d fields, want %d", errBadInput, lineNo, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no observations", errBadInput)
	}

	cols := len(rows[0])
	switch {
	case column >= cols:
		return nil, fmt.Errorf("%w: column %d requested, input has %d", errBadInput, column, cols)
	case column >= 0:
		return pickColumn(rows, column), nil
	case cols == 1:
		return pickColumn(rows, 0), nil
	default:
		return bootstrap.NewTable(rows)
	}
}

func parseRow(fields []string) ([]float64, error) {
	row := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("field %d: %q is not a number", i+1, f)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("field %d: %q is not finite", i+1, f)
		}
		row[i] = v
	}
	return row, nil
}

// isHeader reports whether no field parses as a float, so "NaN" or a row
// with one mistyped value is still reported as bad data.
func isHeader(fields []string) bool {
	for _, f := range fields {
		if _, err := strconv.ParseFloat(strings.TrimSpace(f), 64); err == nil {
			return false
		}
	}
	return true
}

func pickColumn(rows [][]float64, j int) bootstrap.Vector {
	out := make(bootstrap.Vector, len(rows))
	for i, row := range rows {
		out[i] = row[j]
	}
	return out
}
