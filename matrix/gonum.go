// SPDX-License-Identifier: MIT

// Package matrix - bridge to gonum.org/v1/gonum/mat.
//
// Both directions copy: a Dense never shares its buffer with a gonum value.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum copies m into a new *mat.Dense.
// gonum has no non-empty representation of a matrix with a zero dimension,
// so empty matrices fail with ErrInvalidDimensions.
func (m *Dense) ToGonum() (*mat.Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opToGonum, ErrNilMatrix)
	}
	if m.r == 0 || m.c == 0 {
		return nil, matrixErrorf(opToGonum, fmt.Errorf("%d×%d: %w", m.r, m.c, ErrInvalidDimensions))
	}
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return mat.NewDense(m.r, m.c, buf), nil
}

// FromGonum copies any gonum matrix into a new Dense.
// The numeric policy from opts is enforced on every copied value.
//
// Errors: ErrNilMatrix, ErrNaNInf.
// Complexity: O(r*c).
func FromGonum(src mat.Matrix, opts ...Option) (*Dense, error) {
	if src == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := src.Dims()
	m, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err = m.Set(i, j, src.At(i, j)); err != nil {
				return nil, matrixErrorf(opFromGonum, err)
			}
		}
	}

	return m, nil
}
