// SPDX-License-Identifier: MIT

// Package sparsec implements compressed-column (CSC) storage and algebraic
// kernels for sparse matrices with complex128 entries.
//
// The sparsec package provides:
//
//   - The CSC store itself: three parallel arrays (values, row indices,
//     column pointers) with strict structural invariants and an optional
//     auto-trim capacity policy.
//   - Algebraic kernels built on a shared scatter-accumulate primitive:
//     Add (C = αA + βB) and Mul (C = A·B) with amortized result growth.
//   - Transpose in two flavors: Transpose (structural, values untouched)
//     and ConjTranspose (Hermitian, values conjugated).
//   - Structural maintenance: Cleanup (duplicate summation), Keep
//     (predicate filtering) and DropZeros (magnitude thresholding).
//   - Dense-vector kernels (y = A·x, y = αA·x + βy and the structural
//     transpose counterparts) plus L1/infinity/Frobenius norms, a Hermitian
//     symmetry check and tolerance-based structural equality.
//
// CSC is best when columns are the unit of work: a column's entries are
// contiguous, column scans cost O(entries in column), and every kernel here
// runs in time linear in the stored entry count.
//
// All operations are single-threaded and synchronous; a matrix must not be
// mutated concurrently. Shared read-only use is safe once construction and
// mutation are done.
//
// See the examples in this package for usage patterns.
package sparsec
