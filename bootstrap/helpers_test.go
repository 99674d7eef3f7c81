// SPDX-License-Identifier: MIT
// Package bootstrap_test contains shared fixtures.
//
// Purpose:
//   • Provide small, deterministic data sets and statistics for the tests.
//   • Keep all data finite so numeric checks are not disturbed.

package bootstrap_test

import (
	"errors"
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/bootci/bootstrap"
)

const (
	seedDet  = 20240611 // fixed seed for reproducible runs
	epsTight = 1e-12
	epsLoose = 1e-9
)

var errBoom = errors.New("statistic exploded")

// normalData returns n standard-normal draws from a seeded source.
func normalData(seed int64, n int) bootstrap.Vector {
	rng := rand.New(rand.NewSource(seed))
	x := make(bootstrap.Vector, n)
	for i := range x {
		x[i] = rng.NormFloat64()
	}
	return x
}

// seq returns 1, 2, ..., n.
func seq(n int) bootstrap.Vector {
	x := make(bootstrap.Vector, n)
	for i := range x {
		x[i] = float64(i + 1)
	}
	return x
}

// vectorMean is a Statistic over Vector samples.
func vectorMean(s bootstrap.Sample) (float64, error) {
	return stat.Mean(s.(bootstrap.Vector), nil), nil
}

// vectorMin is a Statistic whose replicates never fall below the estimate.
func vectorMin(s bootstrap.Sample) (float64, error) {
	x := s.(bootstrap.Vector)
	m := x[0]
	for _, v := range x[1:] {
		if v < m {
			m = v
		}
	}
	return m, nil
}
