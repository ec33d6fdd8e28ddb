// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Minor returns a new (Rows()-1)×(Cols()-1) matrix holding every element of m
// except those in row `row` and column `col`, relative order preserved.
// The minor of a 1×1 matrix is a legal 0×0 matrix.
//
// Errors: ErrNilMatrix; ErrOutOfRange when row or col is outside the matrix.
// Complexity: O(r*c).
func (m *Dense) Minor(row, col int) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opMinor, ErrNilMatrix)
	}
	if _, err := m.indexOf(row, col); err != nil {
		return nil, matrixErrorf(opMinor, denseErrorf(opMinor, row, col, err))
	}

	res := newDenseLike(m, m.r-1, m.c-1)
	dst := 0
	for i := 0; i < m.r; i++ {
		if i == row {
			continue
		}
		base := i * m.c
		for j := 0; j < m.c; j++ {
			if j == col {
				continue
			}
			res.data[dst] = m.data[base+j]
			dst++
		}
	}

	return res, nil
}

// MinorCoord is Minor addressed by a Coord.
func (m *Dense) MinorCoord(p Coord) (*Dense, error) { return m.Minor(p.Row, p.Col) }

// laplace evaluates determinants of square submatrices of base without
// copying them. A submatrix is described by the live row and column indices
// into base (an index mask); removing a row and a column only shrinks the masks.
//
// scratch[d] holds the column mask for recursion depth d+1, so one laplace
// value allocates O(n²) ints in total however deep the expansion goes.
type laplace struct {
	base    *Dense
	scratch [][]int
}

func newLaplace(base *Dense, n int) *laplace {
	scratch := make([][]int, n)
	for d := range scratch {
		scratch[d] = make([]int, 0, n)
	}

	return &laplace{base: base, scratch: scratch}
}

func (l *laplace) at(r, c int) float64 { return l.base.data[r*l.base.c+c] }

// det computes the determinant of the submatrix base[rows, cols].
// len(rows) == len(cols) >= 1 is guaranteed by callers.
//
// Mirrors the allocating definition exactly: 1×1 is the element, 2×2 is
// a*d - b*c, larger sizes expand along the first live row with signs
// alternating from +1, accumulated left to right. The float64 conversions
// forbid fused multiply-add, so every product is rounded on its own.
func (l *laplace) det(rows, cols []int, depth int) float64 {
	switch len(cols) {
	case 1:
		return l.at(rows[0], cols[0])
	case 2:
		return float64(l.at(rows[0], cols[0])*l.at(rows[1], cols[1])) - float64(l.at(rows[0], cols[1])*l.at(rows[1], cols[0]))
	}

	sum := ZeroSum
	sign := 1.0
	for i := range cols {
		sub := l.scratch[depth][:0]
		sub = append(sub, cols[:i]...)
		sub = append(sub, cols[i+1:]...)
		l.scratch[depth] = sub
		sum += float64(sign * l.at(rows[0], cols[i]) * l.det(rows[1:], sub, depth+1))
		sign = -sign
	}

	return sum
}

// cofactor computes det(minor(row, col)) * (-1)^(row+col) on a square base.
// The minor of a 1×1 matrix is empty and contributes the empty product 1.
func (l *laplace) cofactor(row, col int) float64 {
	n := l.base.r
	if n == 1 {
		return 1
	}
	rows := make([]int, 0, n-1)
	cols := make([]int, 0, n-1)
	for k := 0; k < n; k++ {
		if k != row {
			rows = append(rows, k)
		}
		if k != col {
			cols = append(cols, k)
		}
	}
	v := l.det(rows, cols, 0)
	if (row+col)%2 == 1 {
		v = -v
	}

	return v
}

// identityMask returns [0, 1, ..., n-1].
func identityMask(n int) []int {
	mask := make([]int, n)
	for i := range mask {
		mask[i] = i
	}

	return mask
}

// validateSquareNonEmpty is the shared precondition of Determinant, Cofactor and Adjugate.
func (m *Dense) validateSquareNonEmpty() error {
	if m == nil {
		return ErrNilMatrix
	}
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if m.r == 0 {
		return fmt.Errorf("0×0: %w", ErrInvalidDimensions)
	}

	return nil
}
