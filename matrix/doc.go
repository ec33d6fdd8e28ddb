// Package matrix offers a dense, float64, row-major matrix with exact
// cofactor-based determinant and adjugate-based inverse.
//
// The matrix package provides:
//
//   - Dense: an owned flat buffer with bounds-checked At/Set, bulk SetRows,
//     literal and matrix equality (EqualsRows, Equal) and tolerant AllClose.
//   - Arithmetic: in-place Scale (returns its receiver for chaining), and
//     allocating Add, Sub, Mul and Transpose. Sub never modifies its operands.
//   - Minor extraction, Determinant by Laplace expansion along the first row,
//     Cofactor, Adjugate and Inverse.
//   - A copy-based bridge to gonum.org/v1/gonum/mat (ToGonum, FromGonum).
//
// Failures are sentinel errors (ErrOutOfRange, ErrDimensionMismatch,
// ErrNonSquare, ErrSingular, ...) wrapped with call-site context; match them
// with errors.Is.
//
// Determinant and Inverse cost O(n!) and are meant for small matrices. A
// Dense carries no lock: serialize mutation (Set, SetRows, Scale) yourself.
package matrix
