// SPDX-License-Identifier: MIT

// Package sparsec: norms and structural queries. All passes are linear in
// the stored entry count; none mutate the matrix.

package sparsec

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats/scalar"
)

// Norm1 returns the L1 operator norm: the maximum over columns of the sum
// of entry magnitudes in that column. An empty matrix has norm 0.
// Complexity: Time O(cols + nnz), Space O(1).
func (m *CSC) Norm1() float64 {
	var j, p int
	var colSum, maxSum float64
	for j = 0; j < m.cols; j++ {
		colSum = 0
		for p = m.colPtr[j]; p < m.colPtr[j+1]; p++ {
			colSum += cmplx.Abs(m.values[p])
		}
		if colSum > maxSum {
			maxSum = colSum
		}
	}

	return maxSum
}

// NormInf returns the infinity operator norm: the maximum over rows of the
// sum of entry magnitudes in that row, computed via a row-accumulator pass
// over all columns (CSC has no direct row access).
// Complexity: Time O(rows + nnz), Space O(rows).
func (m *CSC) NormInf() float64 {
	rowSum := make([]float64, m.rows)
	nz := m.NNZ()
	var p int
	for p = 0; p < nz; p++ {
		rowSum[m.rowIdx[p]] += cmplx.Abs(m.values[p])
	}

	var maxSum float64
	for _, s := range rowSum {
		if s > maxSum {
			maxSum = s
		}
	}

	return maxSum
}

// NormFrobenius returns the Frobenius norm: the square root of the sum of
// squared magnitudes over all stored entries. Duplicate entries (before
// Cleanup) contribute individually, so canonicalize first when exactness
// matters. Complexity: Time O(nnz), Space O(1).
func (m *CSC) NormFrobenius() float64 {
	nz := m.NNZ()
	var sum float64
	var p int
	for p = 0; p < nz; p++ {
		// |v|² as re²+im² avoids the sqrt inside cmplx.Abs per entry.
		sum += real(m.values[p])*real(m.values[p]) + imag(m.values[p])*imag(m.values[p])
	}

	return math.Sqrt(sum)
}

// IsHermitian reports whether A equals its conjugate transpose within the
// configured epsilon: for every stored entry (i, j, v) the mirror entry
// (j, i) must satisfy v == conj(mirror) per component. A non-square matrix
// is never Hermitian. Mirror lookups go through the point lookup At, so
// duplicate entries are summed on both sides.
// Complexity: Time O(nnz * longest column), Space O(1).
func (m *CSC) IsHermitian() bool {
	if m.rows != m.cols {
		return false
	}

	var j, p, i int
	var v, mirror complex128
	for j = 0; j < m.cols; j++ {
		for p = m.colPtr[j]; p < m.colPtr[j+1]; p++ {
			i = m.rowIdx[p]
			v, _ = m.At(i, j)      // sums duplicates at (i,j); indices are in range
			mirror, _ = m.At(j, i) // mirror coordinate, zero when absent
			// v must equal conj(mirror): compare per component within eps.
			if !scalar.EqualWithinAbs(real(v), real(mirror), m.eps) {
				return false
			}
			if !scalar.EqualWithinAbs(imag(v), -imag(mirror), m.eps) {
				return false
			}
		}
	}

	return true
}

// EqualWithin reports structural equality within tol: dimensions and
// nonzero counts match, column pointers match exactly, row-index sequences
// match position-by-position, and each value pair differs by at most tol in
// real and imaginary parts independently.
//
// This is STRUCTURAL, not mathematical, equality: both matrices must
// already store their columns in the same canonical order (Cleanup +
// SortIndices) for a meaningful comparison.
// Complexity: Time O(cols + nnz), Space O(1).
func (m *CSC) EqualWithin(b *CSC, tol float64) bool {
	if b == nil {
		return false
	}
	if m.rows != b.rows || m.cols != b.cols {
		return false
	}
	if m.NNZ() != b.NNZ() {
		return false
	}

	var j, p int
	for j = 0; j <= m.cols; j++ {
		if m.colPtr[j] != b.colPtr[j] {
			return false
		}
	}
	nz := m.NNZ()
	for p = 0; p < nz; p++ {
		if m.rowIdx[p] != b.rowIdx[p] {
			return false
		}
		if !scalar.EqualWithinAbs(real(m.values[p]), real(b.values[p]), tol) {
			return false
		}
		if !scalar.EqualWithinAbs(imag(m.values[p]), imag(b.values[p]), tol) {
			return false
		}
	}

	return true
}
