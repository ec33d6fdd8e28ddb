// SPDX-License-Identifier: MIT

// Package matrix - adjugate and inverse.
//
// The inverse is computed by the adjugate method, A⁻¹ = adj(A) / det(A),
// where adj(A)[c][r] = cofactor(r, c). No pivoting or decomposition is
// attempted.

package matrix

// Adjugate returns the transpose of the cofactor matrix of m.
// The adjugate of a 1×1 matrix is [1].
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrInvalidDimensions (0×0).
// Complexity: O(n² · (n-1)!).
func (m *Dense) Adjugate() (*Dense, error) {
	if err := m.validateSquareNonEmpty(); err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return m.adjugate(), nil
}

// adjugate assumes m is square and non-empty.
// The cofactor of (r, c) is written at the transposed position (c, r).
func (m *Dense) adjugate() *Dense {
	n := m.r
	lp := newLaplace(m, n)
	res := newDenseLike(m, n, n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			res.data[c*n+r] = lp.cofactor(r, c)
		}
	}

	return res
}

// Inverse returns m⁻¹ as a new matrix; m is not modified.
// Implementation:
//   - Stage 1: Determinant (fails for nil, non-square, 0×0).
//   - Stage 2: exact zero determinant → ErrSingular.
//   - Stage 3: build the adjugate, then Scale it in place by 1/det.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrInvalidDimensions, ErrSingular, wrapped with "Inverse".
//
// Complexity:
//   - Time O(n² · (n-1)!), Space O(n²).
//
// Notes:
//   - Only an exact 0 is treated as singular; nearly singular input yields
//     large, possibly inaccurate entries.
//   - A 1×1 matrix [a] inverts to [1/a]: the cofactor of its only cell is the
//     empty product 1. Expanding the empty minor as a zero-length sum would
//     give 0 and make every 1×1 inverse [0]; that reading is not followed.
func (m *Dense) Inverse() (*Dense, error) {
	det, err := m.Determinant()
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if det == 0 {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	return m.adjugate().Scale(1 / det), nil
}
