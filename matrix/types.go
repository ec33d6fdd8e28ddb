// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by Dense and the free functions.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// *Dense is the only implementation shipped here; the interface lets the
// validators, AllClose and the gonum bridge accept foreign implementations.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}

// Coord addresses a single cell as an explicit (Row, Col) pair, zero-based.
// Using named fields removes any doubt about which index comes first.
type Coord struct {
	Row int // zero-based row index
	Col int // zero-based column index
}
