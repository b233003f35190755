// SPDX-License-Identifier: MIT

// Package sparsec: transpose kernels. Two public semantics share one
// count/cumsum/place pass, parameterized by a value transform so the hot
// loop structure exists exactly once (identity vs. complex conjugation).

package sparsec

import "math/cmplx"

// identity is the value transform for the structural transpose.
func identity(v complex128) complex128 { return v }

// transposeWith rebuilds the matrix with rows and columns swapped, applying
// transform to every value during placement.
//
// Algorithm (no sort, linear in nonzeros):
//   - Pass 1: count entries per source row — these become the per-column
//     counts of the result.
//   - cumulativeSum converts counts to result column start offsets and
//     leaves the "next free slot" cursor per destination column in counts.
//   - Pass 2: walk source columns in order; each entry lands at the next
//     free slot of its destination column, cursor advancing in place.
//
// The result's columns come out row-sorted for free: source columns are
// visited in increasing order, so each destination column receives its
// entries in increasing (former column) index order.
// Complexity: Time O(rows + cols + nnz), Space O(rows) for counts.
func (m *CSC) transposeWith(transform func(complex128) complex128) *CSC {
	t := &CSC{
		rows:     m.cols,
		cols:     m.rows,
		colPtr:   make([]int, m.rows+1),
		rowIdx:   make([]int, m.NNZ()),
		values:   make([]complex128, m.NNZ()),
		autoTrim: m.autoTrim,
		eps:      m.eps,
	}

	// Pass 1: per-row entry counts of the source.
	counts := make([]int, m.rows)
	nz := m.NNZ()
	var p int
	for p = 0; p < nz; p++ {
		counts[m.rowIdx[p]]++
	}

	// Exclusive prefix sums; counts now tracks the next free slot per
	// destination column.
	cumulativeSum(t.colPtr, counts)

	// Pass 2: placement with the transformed value.
	var j, q int
	for j = 0; j < m.cols; j++ {
		for p = m.colPtr[j]; p < m.colPtr[j+1]; p++ {
			q = counts[m.rowIdx[p]] // next free slot of the destination column
			counts[m.rowIdx[p]]++
			t.rowIdx[q] = j
			t.values[q] = transform(m.values[p])
		}
	}

	return t
}

// Transpose returns the structural transpose Aᵀ: rows and columns swap,
// values are copied untouched. For complex matrices this is the pure
// storage transpose (a CSR reinterpretation), NOT the Hermitian transpose;
// use ConjTranspose for the mathematical adjoint.
// Complexity: Time O(rows + cols + nnz), Space O(result).
func (m *CSC) Transpose() *CSC {
	return m.transposeWith(identity)
}

// ConjTranspose returns the conjugate (Hermitian) transpose Aᴴ: rows and
// columns swap and every value is complex-conjugated.
// Complexity: Time O(rows + cols + nnz), Space O(result).
func (m *CSC) ConjTranspose() *CSC {
	return m.transposeWith(cmplx.Conj)
}
