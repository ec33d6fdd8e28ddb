// Package matrix_test contains unit tests for Scale, Add, Sub, Mul and Transpose.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
)

func TestScale_InPlace(t *testing.T) {
	m1 := mustFromRows(t, [][]float64{{1, 2}, {-1, 0}})
	out := m1.Scale(2)
	require.Same(t, m1, out, "Scale returns its receiver")
	require.True(t, m1.EqualsRows([][]float64{{2, 4}, {-2, 0}}))

	m2 := mustFromRows(t, [][]float64{{6, 0, -4}})
	require.True(t, m2.Scale(0.5).EqualsRows([][]float64{{3, 0, -2}}))
}

func TestScale_Properties(t *testing.T) {
	base := mustDense(t, 3, 3)
	fillDenseInts(t, base, 7)

	// Scaling by 1 is the identity.
	require.True(t, base.Copy().Scale(1).Equal(base))

	// Scaling twice by k1, k2 equals scaling once by k1*k2 (exact for small integers).
	twice := base.Copy().Scale(2).Scale(-3)
	once := base.Copy().Scale(-6)
	require.True(t, twice.Equal(once))

	// Scaling by zero zeroes everything.
	require.True(t, base.Copy().Scale(0).Equal(mustDense(t, 3, 3)))
}

func TestScaled_LeavesSource(t *testing.T) {
	src := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	got, err := matrix.Scaled(src, 10)
	require.NoError(t, err)
	require.True(t, got.EqualsRows([][]float64{{10, 20}, {30, 40}}))
	require.True(t, src.EqualsRows([][]float64{{1, 2}, {3, 4}}))

	got, err = matrix.Scaled(hide{src}, -1)
	require.NoError(t, err)
	require.True(t, got.EqualsRows([][]float64{{-1, -2}, {-3, -4}}))

	_, err = matrix.Scaled(nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestAddSub_SameSize reproduces the worked addition/subtraction examples.
func TestAddSub_SameSize(t *testing.T) {
	m1 := mustFromRows(t, [][]float64{{2, -1}, {0, 3}})
	m2 := mustFromRows(t, [][]float64{{-1, 4}, {5, 3}})

	sum, err := m1.Add(m2)
	require.NoError(t, err)
	require.True(t, sum.EqualsRows([][]float64{{1, 3}, {5, 6}}))

	rev, err := m2.Add(m1)
	require.NoError(t, err)
	require.True(t, sum.Equal(rev), "Add is commutative")

	m3 := mustFromRows(t, [][]float64{{1, -3, 4}, {2, 1, 1}})
	m4 := mustFromRows(t, [][]float64{{0, 2, 1}, {5, 2, 3}})

	diff, err := m3.Sub(m4)
	require.NoError(t, err)
	require.True(t, diff.EqualsRows([][]float64{{1, -5, 3}, {-3, -1, -2}}))

	back, err := m4.Sub(m3)
	require.NoError(t, err)
	require.False(t, diff.Equal(back))
}

// TestSub_DoesNotMutateOperands pins the non-mutating subtraction contract.
func TestSub_DoesNotMutateOperands(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, -3, 4}, {2, 1, 1}})
	b := mustFromRows(t, [][]float64{{0, 2, 1}, {5, 2, 3}})

	_, err := a.Sub(b)
	require.NoError(t, err)
	_, err = a.Sub(b)
	require.NoError(t, err)

	require.True(t, a.EqualsRows([][]float64{{1, -3, 4}, {2, 1, 1}}))
	require.True(t, b.EqualsRows([][]float64{{0, 2, 1}, {5, 2, 3}}))

	zero, err := a.Sub(a)
	require.NoError(t, err)
	require.True(t, zero.Equal(mustDense(t, 2, 3)))
}

func TestAddSub_DimensionMismatch(t *testing.T) {
	sq := mustFromRows(t, [][]float64{{2, -1}, {0, 3}})
	wide := mustFromRows(t, [][]float64{{1, -3, 4}, {2, 1, 1}})

	// Equal shapes never fail.
	for _, pair := range [][2]*matrix.Dense{{sq, sq}, {wide, wide}} {
		_, err := pair[0].Add(pair[1])
		require.NoError(t, err)
		_, err = pair[0].Sub(pair[1])
		require.NoError(t, err)
	}

	_, err := sq.Add(wide)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = wide.Add(sq)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = sq.Sub(wide)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Add(sq, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAddSub_FallbackMatchesFastPath(t *testing.T) {
	a := mustDense(t, 3, 4)
	b := mustDense(t, 3, 4)
	fillDenseRand(t, a, 11)
	fillDenseRand(t, b, 22)

	fast, err := matrix.Add(a, b)
	require.NoError(t, err)
	slow, err := matrix.Add(hide{a}, hide{b})
	require.NoError(t, err)
	require.True(t, fast.Equal(slow))

	fast, err = matrix.Sub(a, b)
	require.NoError(t, err)
	slow, err = matrix.Sub(hide{a}, b)
	require.NoError(t, err)
	require.True(t, fast.Equal(slow))
}

func TestMul(t *testing.T) {
	m1 := mustFromRows(t, [][]float64{{5, -1, 2}, {8, 3, -4}})
	m2 := mustFromRows(t, [][]float64{{2, 2}, {9, -3}, {7, 4}})

	prod, err := m1.Mul(m2)
	require.NoError(t, err)
	require.Equal(t, 2, prod.Rows())
	require.Equal(t, 2, prod.Cols())
	require.True(t, prod.EqualsRows([][]float64{{15, 21}, {15, -9}}))

	slow, err := matrix.Mul(hide{m1}, hide{m2})
	require.NoError(t, err)
	require.True(t, prod.Equal(slow))
}

func TestMul_Compatibility(t *testing.T) {
	sq := mustFromRows(t, [][]float64{{1, -2}, {3, 4}})
	col := mustFromRows(t, [][]float64{{-3}, {2}})

	out, err := sq.Mul(col)
	require.NoError(t, err)
	require.True(t, out.EqualsRows([][]float64{{-7}, {-1}}))

	_, err = col.Mul(sq)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(nil, sq)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul_Identity(t *testing.T) {
	a := mustDense(t, 4, 4)
	fillDenseRand(t, a, 3)
	id, err := matrix.NewIdentity(4)
	require.NoError(t, err)

	left, err := id.Mul(a)
	require.NoError(t, err)
	right, err := a.Mul(id)
	require.NoError(t, err)
	require.True(t, left.Equal(a))
	require.True(t, right.Equal(a))
}

func TestTranspose(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	tr := m.Transpose()
	require.True(t, tr.EqualsRows([][]float64{{1, 4}, {2, 5}, {3, 6}}))
	require.True(t, tr.Transpose().Equal(m))
}
