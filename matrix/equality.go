// SPDX-License-Identifier: MIT

// Package matrix - equality predicates.
//
// EqualsRows and Equal are total: they never fail and never panic, and they
// compare with exact float64 equality. AllClose is the tolerant variant and
// reports errors for nil or mismatched operands instead of a silent false.

package matrix

import (
	"fmt"
	"math"
)

const opAllClose = "AllClose"

// EqualsRows reports whether m has exactly the shape and contents of grid.
// Implementation:
//   - Stage 1: row count must equal Rows().
//   - Stage 2: grid must be rectangular (longest row == shortest row).
//   - Stage 3: the common row length must equal Cols().
//   - Stage 4: exact element-wise comparison, first mismatch returns false.
//
// Behavior highlights:
//   - An empty grid matches any matrix with zero rows (0×0 or 0×N), since
//     there is no row whose length could be compared against Cols(). A
//     max/min row-length check would instead reject every empty grid.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) EqualsRows(grid [][]float64) bool {
	if m == nil || len(grid) != m.r {
		return false
	}
	if len(grid) == 0 {
		return true
	}
	longest, shortest := len(grid[0]), len(grid[0])
	for _, row := range grid[1:] {
		if len(row) > longest {
			longest = len(row)
		}
		if len(row) < shortest {
			shortest = len(row)
		}
	}
	if longest != shortest || longest != m.c {
		return false
	}
	for i, row := range grid {
		base := i * m.c
		for j, v := range row {
			if m.data[base+j] != v {
				return false
			}
		}
	}

	return true
}

// Equal reports whether other has the same shape and exactly the same elements.
// False for a nil other. Reflexive and symmetric for finite contents.
func (m *Dense) Equal(other Matrix) bool {
	if m == nil || ValidateNotNil(other) != nil {
		return false
	}
	if m.r != other.Rows() || m.c != other.Cols() {
		return false
	}
	// Fast path: flat comparison of both buffers.
	if d, ok := other.(*Dense); ok {
		for k, v := range m.data {
			if d.data[k] != v {
				return false
			}
		}

		return true
	}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			v, err := other.At(i, j)
			if err != nil || v != m.data[i*m.c+j] {
				return false
			}
		}
	}

	return true
}

// AllClose checks element-wise |a-b| ≤ eps for identical shapes.
// eps comes from WithEpsilon (DefaultEpsilon otherwise).
// +Inf equals +Inf, -Inf equals -Inf, NaN equals nothing.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with "AllClose").
// Complexity: O(r*c).
func AllClose(a, b Matrix, opts ...Option) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	eps := gatherOptions(opts...).eps

	var av, bv float64
	var err error
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if !closeEnough(av, bv, eps) {
				return false, nil
			}
		}
	}

	return true, nil
}

func closeEnough(a, b, eps float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}

	return math.Abs(a-b) <= eps
}
