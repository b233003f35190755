// SPDX-License-Identifier: MIT
// Package: sparsec
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels minimal by delegating nil/shape/length checks here.
//   - Return plain sentinel errors (wrapped with a validator tag) so call
//     sites can wrap uniformly with an operation tag.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing beyond the
//     wrapping error on failure.
//
// Note:
//   - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package sparsec

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *CSC) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
//
// Returns nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b *CSC) error {
	if a.rows != b.rows {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.cols != b.cols {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape — composite: NotNil(a) → NotNil(b) → SameShape.
//
// Errors: combines ErrNilMatrix and ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b *CSC) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows and that the result shape
// is not degenerate (one zero extent paired with a nonzero complement),
// inputs non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrZeroDimension.
// Complexity: O(1).
func ValidateMulCompatible(a, b *CSC) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.cols != b.rows {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}
	// A zero extent with a nonzero complement would silently produce an
	// empty result; reject it distinctly from ordinary mismatch.
	if (a.rows == 0) != (b.cols == 0) {
		return validatorErrorf("ValidateMulCompatible", ErrZeroDimension)
	}

	return nil
}

// ValidateVecLen ensures the dense vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []complex128, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MulVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // reuse the "nil argument" sentinel
	}
	// Check the exact expected length.
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// validateRaw checks the CSC invariants on caller-supplied raw arrays:
// pointer length cols+1, colPtr[0]==0, monotone non-decreasing pointers,
// value/row alignment, capacity covering the logical count, and every row
// index inside [0, rows).
//
// Errors: ErrBadStructure (all violations map to the single sentinel; the
// wrapping tag pinpoints the failing check).
// Complexity: O(cols + nnz). Space O(1).
func validateRaw(rows, cols int, colPtr, rowIdx []int, values []complex128) error {
	if len(colPtr) != cols+1 {
		return validatorErrorf("validateRaw: pointer length", ErrBadStructure)
	}
	if colPtr[0] != 0 {
		return validatorErrorf("validateRaw: pointer origin", ErrBadStructure)
	}
	var j int
	for j = 0; j < cols; j++ {
		if colPtr[j+1] < colPtr[j] {
			return validatorErrorf("validateRaw: pointer monotonicity", ErrBadStructure)
		}
	}
	if len(rowIdx) != len(values) {
		return validatorErrorf("validateRaw: value/row alignment", ErrBadStructure)
	}
	if colPtr[cols] > len(rowIdx) {
		return validatorErrorf("validateRaw: capacity below logical count", ErrBadStructure)
	}
	var p int
	for p = 0; p < colPtr[cols]; p++ {
		if rowIdx[p] < 0 || rowIdx[p] >= rows {
			return validatorErrorf("validateRaw: row index bounds", ErrBadStructure)
		}
	}

	return nil
}
