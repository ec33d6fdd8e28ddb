// SPDX-License-Identifier: MIT

package matrix

// Determinant returns det(m) by recursive cofactor (Laplace) expansion along
// the first row.
// Implementation:
//   - Stage 1: validate non-nil, square, at least 1×1.
//   - Stage 2: 1×1 → the element; 2×2 → a*d - b*c.
//   - Stage 3: n ≥ 3 → Σ_i (-1)^i · m[0][i] · det(minor(0, i)).
//
// Behavior highlights:
//   - Minors are index masks over m's buffer; no submatrix is materialized.
//     The result is identical to expanding freshly allocated Minor values.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrInvalidDimensions (0×0), wrapped with "Determinant".
//
// Complexity:
//   - Time O(n!), Space O(n²). Intended for small matrices.
func (m *Dense) Determinant() (float64, error) {
	if err := m.validateSquareNonEmpty(); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	mask := identityMask(m.r)

	return newLaplace(m, m.r).det(mask, mask, 0), nil
}

// Cofactor returns det(minor(row, col)) · (-1)^(row+col).
// For a 1×1 matrix the cofactor of its only cell is 1.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrInvalidDimensions, ErrOutOfRange.
func (m *Dense) Cofactor(row, col int) (float64, error) {
	if err := m.validateSquareNonEmpty(); err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	if _, err := m.indexOf(row, col); err != nil {
		return 0, matrixErrorf(opCofactor, denseErrorf(opCofactor, row, col, err))
	}

	return newLaplace(m, m.r).cofactor(row, col), nil
}
