// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box)
//
// Purpose:
//   - Expose unexported constants to matrix_test ONLY, so tests compare
//     against the same panic text the package emits instead of copying it.

// PanicEpsilonInvalid_TestOnly is the message WithEpsilon panics with.
const PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid
