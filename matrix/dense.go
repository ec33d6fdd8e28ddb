// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a single owned row-major buffer with the explicit index formula i*cols + j.
//     Rows are never separate slices, so no two rows can alias each other.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); SetRows: O(len(grid) cells).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"          // method tag used in error wrappers
	ctxSet      = "Set"         // method tag used in error wrappers
	ctxSetRows  = "SetRows"     // bulk writer tag
	ctxFromRows = "NewFromRows" // constructor tag
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps the sentinel reachable through %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); both may be zero (e.g. the minor of a 1×1).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set (policy default from options.go).
type Dense struct {
	r, c           int       // row and column counts (>= 0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// Implementation:
//   - Stage 1: reject negative rows/cols with ErrInvalidDimensions.
//   - Stage 2: resolve options and allocate a zero-filled buffer.
//
// Behavior highlights:
//   - Zero rows or columns are legal and yield an empty matrix. Access into an
//     empty matrix always fails with ErrOutOfRange.
//
// Inputs:
//   - rows, cols: non-negative dimensions.
//   - opts: numeric policy (WithNoValidateNaNInf, ...).
//
// Returns:
//   - *Dense with every element equal to 0.
//
// Errors:
//   - ErrInvalidDimensions when rows < 0, cols < 0, or rows*cols overflows int.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	// len(data) == rows*cols must hold exactly for indexOf to be a safe bound.
	if rows != 0 && cols > math.MaxInt/rows {
		return nil, fmt.Errorf("NewDense(%d,%d): element count overflows int: %w", rows, cols, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // make() zero-fills deterministically
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// newDenseLike allocates a zero r×c matrix that inherits src's numeric policy.
// Internal: callers guarantee non-negative dimensions.
func newDenseLike(src *Dense, rows, cols int) *Dense {
	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: src.validateNaNInf,
	}
}

// NewFromRows builds a matrix shaped after grid and copies every value into it.
// Implementation:
//   - Stage 1: ValidateGrid (rectangular, finite when the policy is on).
//   - Stage 2: allocate len(grid) × len(grid[0]) and copy row by row.
//
// Errors:
//   - ErrBadShape for ragged input; ErrNaNInf for non-finite values under policy.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(grid [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if err := ValidateGrid(grid); err != nil {
		return nil, matrixErrorf(ctxFromRows, err)
	}
	rows, cols := len(grid), 0
	if rows > 0 {
		cols = len(grid[0])
	}
	m := &Dense{r: rows, c: cols, data: make([]float64, rows*cols), validateNaNInf: o.validateNaNInf}
	for i, row := range grid {
		for j, v := range row {
			if m.validateNaNInf && isNonFinite(v) {
				return nil, matrixErrorf(ctxFromRows, denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// NewIdentity returns I_n (n×n, ones on the diagonal).
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	m, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports whether Rows() == Cols().
func (m *Dense) IsSquare() bool { return m.r == m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with their own method tag and coordinates.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1), no allocations.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// AtCoord is At addressed by a Coord.
func (m *Dense) AtCoord(p Coord) (float64, error) { return m.At(p.Row, p.Col) }

// Set stores v at (row, col).
// Implementation:
//   - Stage 1: bounds check via indexOf.
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write the single cell.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite values under policy.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// SetCoord is Set addressed by a Coord.
func (m *Dense) SetCoord(p Coord, v float64) error { return m.Set(p.Row, p.Col, v) }

// SetRows copies every grid[r][c] into the matrix in row-major order.
// Implementation:
//   - Stage 1: walk r = 0..len(grid)-1, c = 0..len(grid[r])-1.
//   - Stage 2: delegate each write to Set; stop at the first failure.
//
// Behavior highlights:
//   - Cells not covered by grid keep their previous values.
//   - Not atomic: writes performed before a failing cell stay applied.
//   - Ragged grids are accepted as long as every addressed cell is in range.
//
// Errors:
//   - ErrOutOfRange for the first cell outside the matrix (wrapped with coordinates).
//   - ErrNaNInf for a non-finite value under policy.
//
// Complexity:
//   - Time O(number of grid cells), Space O(1).
func (m *Dense) SetRows(grid [][]float64) error {
	for r, row := range grid {
		for c, v := range row {
			if err := m.Set(r, c, v); err != nil {
				return matrixErrorf(ctxSetRows, err)
			}
		}
	}

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
func (m *Dense) Clone() Matrix { return m.Copy() }

// Copy is Clone with the concrete return type, convenient before in-place Scale.
func (m *Dense) Copy() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, validateNaNInf: m.validateNaNInf}
}

// RawRows returns a freshly allocated [][]float64 snapshot of the contents.
// Mutating the result never affects the matrix.
func (m *Dense) RawRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c) // one allocation per row, never shared
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// String implements fmt.Stringer, one bracketed row per line: "[1, 2]\n[3, 4]\n".
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%g", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
