// SPDX-License-Identifier: MIT

// Package sparsec: dense-vector kernels. Four variants of y = A·x and
// y = Aᵀ·x with optional scale-and-accumulate (alpha/beta) semantics.
//
// NAMING CONTRACT: the TransMul* kernels apply the STRUCTURAL transpose —
// values are NOT conjugated. For the Hermitian product Aᴴ·x, form
// m.ConjTranspose() and use MulVec, or conjugate x around TransMulVec.

package sparsec

// MulVec computes y = A·x into a fresh vector.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m), ValidateVecLen(x, cols).
//   - Stage 2: allocate y (zeroed by the runtime), then one pass over the
//     stored entries: y[i] += x[j] * a(i,j) in column order.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with opMulVec).
// Complexity: Time O(rows + nnz), Space O(rows).
func (m *CSC) MulVec(x []complex128) ([]complex128, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(opMulVec, err)
	}
	if err := ValidateVecLen(x, m.cols); err != nil {
		return nil, sparseErrorf(opMulVec, err)
	}

	y := make([]complex128, m.rows)
	var j, p int
	for j = 0; j < m.cols; j++ {
		for p = m.colPtr[j]; p < m.colPtr[j+1]; p++ {
			y[m.rowIdx[p]] += x[j] * m.values[p]
		}
	}

	return y, nil
}

// MulVecTo computes y = alpha*A·x + beta*y in place.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m), ValidateVecLen(x, cols), ValidateVecLen(y, rows).
//   - Stage 2: scale y by beta — beta == 0 still zeroes y explicitly rather
//     than skipping the pass, so stale contents of a reused buffer can never
//     leak into the result.
//   - Stage 3: accumulate alpha*x[j]*a(i,j) per stored entry.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with opMulVecTo).
// Complexity: Time O(rows + nnz), Space O(1).
func (m *CSC) MulVecTo(y []complex128, alpha complex128, x []complex128, beta complex128) error {
	if err := ValidateNotNil(m); err != nil {
		return sparseErrorf(opMulVecTo, err)
	}
	if err := ValidateVecLen(x, m.cols); err != nil {
		return sparseErrorf(opMulVecTo, err)
	}
	if err := ValidateVecLen(y, m.rows); err != nil {
		return sparseErrorf(opMulVecTo, err)
	}

	var i, j, p int
	if beta == 0 {
		// Erase, do not skip: y may alias a reused buffer with stale data.
		for i = range y {
			y[i] = 0
		}
	} else {
		for i = range y {
			y[i] *= beta
		}
	}

	for j = 0; j < m.cols; j++ {
		for p = m.colPtr[j]; p < m.colPtr[j+1]; p++ {
			y[m.rowIdx[p]] += alpha * x[j] * m.values[p]
		}
	}

	return nil
}

// TransMulVec computes y = Aᵀ·x (structural transpose, NO conjugation) into
// a fresh vector: each column of A acts as a row of Aᵀ, so y[j] is the
// plain inner product of column j's entries with x.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with opTransMulVec).
// Complexity: Time O(cols + nnz), Space O(cols).
func (m *CSC) TransMulVec(x []complex128) ([]complex128, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(opTransMulVec, err)
	}
	if err := ValidateVecLen(x, m.rows); err != nil {
		return nil, sparseErrorf(opTransMulVec, err)
	}

	y := make([]complex128, m.cols)
	var j, p int
	var sum complex128
	for j = 0; j < m.cols; j++ {
		sum = 0
		for p = m.colPtr[j]; p < m.colPtr[j+1]; p++ {
			sum += m.values[p] * x[m.rowIdx[p]]
		}
		y[j] = sum
	}

	return y, nil
}

// TransMulVecTo computes y = alpha*Aᵀ·x + beta*y in place (structural
// transpose, NO conjugation). Per output index j:
// y[j] = beta*y[j] + alpha*Σ a(i,j)*x[i] over column j's entries.
// beta == 0 overwrites rather than accumulates (stale-buffer rule).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with opTransMulVecTo).
// Complexity: Time O(cols + nnz), Space O(1).
func (m *CSC) TransMulVecTo(y []complex128, alpha complex128, x []complex128, beta complex128) error {
	if err := ValidateNotNil(m); err != nil {
		return sparseErrorf(opTransMulVecTo, err)
	}
	if err := ValidateVecLen(x, m.rows); err != nil {
		return sparseErrorf(opTransMulVecTo, err)
	}
	if err := ValidateVecLen(y, m.cols); err != nil {
		return sparseErrorf(opTransMulVecTo, err)
	}

	var j, p int
	var sum complex128
	for j = 0; j < m.cols; j++ {
		sum = 0
		for p = m.colPtr[j]; p < m.colPtr[j+1]; p++ {
			sum += m.values[p] * x[m.rowIdx[p]]
		}
		if beta == 0 {
			y[j] = alpha * sum // overwrite: never read stale y
		} else {
			y[j] = beta*y[j] + alpha*sum
		}
	}

	return nil
}
