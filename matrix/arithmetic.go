// SPDX-License-Identifier: MIT
// Package matrix provides element-wise addition and subtraction, matrix
// multiplication, transpose and scalar scaling. All binary kernels perform
// strict fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare the canonical arithmetic kernels used by the *Dense methods.
//   - Define operation tags and shared constants for error reporting.
//
// Notes:
//   - Every kernel except Scale allocates a fresh result; operands are never
//     mutated. Scale is the one in-place operation and returns its receiver.

package matrix

import "fmt"

// ZeroSum is the initial accumulator value for dot products and expansions.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opScaled      = "Scaled"
	opMinor       = "Minor"
	opDeterminant = "Determinant"
	opCofactor    = "Cofactor"
	opAdjugate    = "Adjugate"
	opInverse     = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// newResultFor allocates a rows×cols zero result that inherits the numeric
// policy of a when a is a *Dense, and the package default otherwise.
func newResultFor(a Matrix, rows, cols int) *Dense {
	if d, ok := a.(*Dense); ok {
		return newDenseLike(d, rows, cols)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols), validateNaNInf: DefaultValidateNaNInf}
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate result.
//   - Stage 2: Fast-path if both are *Dense - single flat loop 0..n-1.
//     Otherwise, fallback At with fixed i→j order.
//
// Behavior highlights:
//   - Inputs remain immutable; Sub does not negate its argument.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, wrapped with opTag.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res := newResultFor(a, rows, cols)

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B into a fresh Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A - B into a fresh Dense.
// Neither operand is modified.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: ValidateMulCompatible (A.Cols == B.Rows).
//   - Stage 2: for *Dense operands walk the flat buffers directly;
//     otherwise use At with the same i→j→k order.
//
// Behavior highlights:
//   - Each C[i,j] accumulates A[i,k]*B[k,j] for k ascending, starting from ZeroSum.
//   - Products are rounded before accumulation (no FMA), so both paths agree bitwise.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, inner, bCols := a.Rows(), a.Cols(), b.Cols()
	res := newResultFor(a, aRows, bCols)

	var i, j, k int
	var acc, av, bv float64
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for i = 0; i < aRows; i++ {
				for j = 0; j < bCols; j++ {
					acc = ZeroSum
					for k = 0; k < inner; k++ {
						acc += float64(da.data[i*inner+k] * db.data[k*bCols+j])
					}
					res.data[i*bCols+j] = acc
				}
			}

			return res, nil
		}
	}

	var err error
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			acc = ZeroSum
			for k = 0; k < inner; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				acc += float64(av * bv)
			}
			res.data[i*bCols+j] = acc
		}
	}

	return res, nil
}

// Scaled returns alpha*m as a new Dense, leaving m untouched.
// Errors: ErrNilMatrix.
func Scaled(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScaled, err)
	}
	var cp *Dense
	if d, ok := m.(*Dense); ok {
		cp = d.Copy()
	} else {
		cp = newResultFor(m, m.Rows(), m.Cols())
		for i := 0; i < m.Rows(); i++ {
			for j := 0; j < m.Cols(); j++ {
				v, err := m.At(i, j)
				if err != nil {
					return nil, matrixErrorf(opScaled, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
				cp.data[i*cp.c+j] = v
			}
		}
	}

	return cp.Scale(alpha), nil
}

// Scale multiplies every element by alpha IN PLACE and returns the receiver,
// so calls can be chained. Callers that need the original must Copy first.
// Any alpha is accepted, including 0 and negatives. Complexity: O(r*c).
func (m *Dense) Scale(alpha float64) *Dense {
	for k := range m.data {
		m.data[k] *= alpha
	}

	return m
}

// Add returns m + other as a fresh matrix. See package-level Add.
func (m *Dense) Add(other Matrix) (*Dense, error) { return Add(m, other) }

// Sub returns m - other as a fresh matrix; other is not modified.
func (m *Dense) Sub(other Matrix) (*Dense, error) { return Sub(m, other) }

// Mul returns m × other. Requires m.Cols() == other.Rows().
func (m *Dense) Mul(other Matrix) (*Dense, error) { return Mul(m, other) }

// Transpose returns mᵀ as a new matrix.
func (m *Dense) Transpose() *Dense {
	t := newDenseLike(m, m.c, m.r)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			t.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return t
}
