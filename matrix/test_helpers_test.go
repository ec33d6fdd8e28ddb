// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for the kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (fallback) paths.
type hide struct{ matrix.Matrix }

// mustDense allocates an r×c *Dense or aborts the test.
func mustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// mustFromRows builds a *Dense from a rectangular literal or aborts the test.
func mustFromRows(tb testing.TB, grid [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewFromRows(grid)
	if err != nil {
		tb.Fatalf("NewFromRows: %v", err)
	}

	return m
}

// mustAt reads (i,j) or aborts the test.
func mustAt(tb testing.TB, m matrix.Matrix, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	if err != nil {
		tb.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// fillDenseRand fills m with deterministic U(-1,1) values by seed.
func fillDenseRand(tb testing.TB, m *matrix.Dense, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if err := m.Set(i, j, rng.Float64()*2-1); err != nil {
				tb.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
}

// fillDenseInts fills m with deterministic integers in [-4, 4] by seed.
// Integer data keeps cofactor expansions exact.
func fillDenseInts(tb testing.TB, m *matrix.Dense, seed int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if err := m.Set(i, j, float64(rng.Intn(9)-4)); err != nil {
				tb.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}
}

// minorExpansion is a reference determinant built only from the public
// Minor/At surface, allocating a fresh matrix per minor.
func minorExpansion(tb testing.TB, m *matrix.Dense) float64 {
	tb.Helper()
	switch m.Rows() {
	case 1:
		return mustAt(tb, m, 0, 0)
	case 2:
		return float64(mustAt(tb, m, 0, 0)*mustAt(tb, m, 1, 1)) - float64(mustAt(tb, m, 0, 1)*mustAt(tb, m, 1, 0))
	}
	det := 0.0
	sign := 1.0
	for i := 0; i < m.Cols(); i++ {
		minor, err := m.Minor(0, i)
		if err != nil {
			tb.Fatalf("Minor(0,%d): %v", i, err)
		}
		det += float64(sign * mustAt(tb, m, 0, i) * minorExpansion(tb, minor))
		sign = -sign
	}

	return det
}
