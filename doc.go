// Package lvmatrix is a small, dependency-light dense matrix toolkit:
// construction, bounds-checked access, equality, scaling, addition,
// subtraction, multiplication, minors, determinants and inverses.
//
// Everything lives in the matrix subpackage:
//
//	matrix/    Dense type, arithmetic, Minor/Determinant/Cofactor/Adjugate/Inverse,
//	           options (numeric policy), gonum bridge
//	examples/  runnable programs
//
// Quick example:
//
//	m, _ := matrix.NewFromRows([][]float64{{3, 1}, {2, 2}})
//	det, _ := m.Determinant() // 4
//	inv, _ := m.Inverse()     // [[0.5, -0.25], [-0.5, 0.75]]
//
//	go get github.com/katalvlaran/lvmatrix/matrix
package lvmatrix
