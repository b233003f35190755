// SPDX-License-Identifier: MIT

// Package sparsec: pairwise addition and sparse-sparse multiplication.
// Both kernels drive the shared scatter-accumulate primitive column by
// column, then sort each result column by row index as a post-pass.
// All functions perform strict fail-fast validation and return clear
// errors on dimension mismatches.

package sparsec

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd           = "Add"
	opMul           = "Mul"
	opMulVec        = "MulVec"
	opMulVecTo      = "MulVecTo"
	opTransMulVec   = "TransMulVec"
	opTransMulVecTo = "TransMulVecTo"
)

// sparseErrorf wraps err with an operation tag, preserving the original
// error via %w so callers still match sentinels with errors.Is.
// Use only when err != nil. Complexity: O(1).
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add computes C = alpha*A + beta*B and returns a fresh matrix.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b). Allocate C with capacity
//     nnz(A)+nnz(B) — a safe upper bound, duplicates collapse in scatter.
//   - Stage 2: for each output column j in order, record C.colPtr[j], then
//     scatter column j of A scaled by alpha and column j of B scaled by
//     beta into the same workspace pass (mark = j+1), and copy the
//     accumulated workspace values for the newly-recorded rows into C.
//   - Stage 3: finalize colPtr[cols], apply the auto-trim policy, then sort
//     each result column by row index (scatter output is unsorted).
//
// Behavior highlights:
//   - Deterministic column order; operands are never mutated.
//   - C inherits a's auto-trim/epsilon option state.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with opAdd).
//
// Complexity:
//   - Time O(cols + nnz(A) + nnz(B) + sort), Space O(rows) workspace plus
//     the result.
func Add(a, b *CSC, alpha, beta complex128) (*CSC, error) {
	// Validate shapes match.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, sparseErrorf(opAdd, err)
	}

	// Allocate the result with the duplicate-free upper bound.
	c, err := NewCSC(a.rows, a.cols, WithCapacity(a.NNZ()+b.NNZ()), WithAutoTrim(a.autoTrim), WithEpsilon(a.eps))
	if err != nil {
		return nil, sparseErrorf(opAdd, err)
	}

	// Dense workspace and per-row marker, both scoped to this call.
	w := make([]int, a.rows)
	x := make([]complex128, a.rows)

	var j, p, nz int
	for j = 0; j < a.cols; j++ {
		c.colPtr[j] = nz // column j of C starts here
		// One workspace pass per output column: mark = j+1 is unique, so
		// the zero-initialized marker array never needs re-zeroing.
		nz = scatter(a, j, alpha, w, x, j+1, c, nz)
		nz = scatter(b, j, beta, w, x, j+1, c, nz)
		// Gather accumulated values for the rows recorded this pass.
		for p = c.colPtr[j]; p < nz; p++ {
			c.values[p] = x[c.rowIdx[p]]
		}
	}
	c.colPtr[a.cols] = nz // final logical count

	c.maybeTrim()
	c.SortIndices() // scatter does not produce row-sorted columns

	return c, nil
}

// Mul computes C = A·B for compatible sparse operands.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b) — inner dimensions must agree
//     and a zero result extent with a nonzero complement is rejected
//     distinctly (ErrZeroDimension). Allocate C (A.rows × B.cols) with
//     capacity nnz(A)+nnz(B) as the initial guess.
//   - Stage 2: for each output column j, scan B's column j; every nonzero
//     (k, bval) scatters A's column k scaled by bval into the workspace
//     (mark = j+1), accumulating C's in-progress column; then gather the
//     workspace values for the recorded rows.
//   - Stage 3: finalize colPtr, auto-trim, sort each column by row index.
//
// Behavior highlights:
//   - Growth policy: before each output column, if the cursor could exceed
//     capacity (nz + A.rows entries worst case), the capacity doubles plus
//     A.rows slack — amortized linear growth. scatter reads c's slices
//     through the receiver, so the re-allocation is visible immediately;
//     no raw slice is cached across the growth boundary.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrZeroDimension (wrapped with opMul).
//
// Complexity:
//   - Time O(cols(B) + flops + sort) where flops = Σ nnz(A column k) over
//     B's stored entries; Space O(rows(A)) workspace plus the result.
func Mul(a, b *CSC) (*CSC, error) {
	// Validate compatibility (inner dims, degenerate extents).
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, sparseErrorf(opMul, err)
	}

	m, n := a.rows, b.cols
	c, err := NewCSC(m, n, WithCapacity(a.NNZ()+b.NNZ()), WithAutoTrim(a.autoTrim), WithEpsilon(a.eps))
	if err != nil {
		return nil, sparseErrorf(opMul, err)
	}

	// Dense workspace and per-row marker, scoped to this call.
	w := make([]int, m)
	x := make([]complex128, m)

	var j, p, nz int
	for j = 0; j < n; j++ {
		// Worst case, column j touches every row once; grow before, never
		// mid-column, so scatter's cursor stays inside capacity.
		if nz+m > c.Cap() {
			c.resize(2*c.Cap() + m)
		}
		c.colPtr[j] = nz // column j of C starts here
		for p = b.colPtr[j]; p < b.colPtr[j+1]; p++ {
			nz = scatter(a, b.rowIdx[p], b.values[p], w, x, j+1, c, nz)
		}
		// Gather accumulated values for the rows recorded this pass.
		for p = c.colPtr[j]; p < nz; p++ {
			c.values[p] = x[c.rowIdx[p]]
		}
	}
	c.colPtr[n] = nz // final logical count

	c.maybeTrim()
	c.SortIndices() // scatter does not produce row-sorted columns

	return c, nil
}
