// SPDX-License-Identifier: MIT
// Package sparsec: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// sparsec package. All kernels MUST return these sentinels and tests MUST
// check them via errors.Is. No kernel panics on user-triggered error
// conditions; panics are reserved for nonsensical option-constructor
// arguments (programmer errors).

package sparsec

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "sparsec: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil receiver/argument -> shape/index -> dimension mismatch -> degenerate
// dimension -> raw-structure violations.

var (
	// ErrNilMatrix indicates that a nil *CSC (receiver or argument) was used.
	ErrNilMatrix = errors.New("sparsec: nil matrix")

	// ErrBadShape is returned when a requested shape is invalid (r<0 or c<0).
	// Constructors must validate before any allocation.
	ErrBadShape = errors.New("sparsec: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At) MUST return this, not panic.
	ErrOutOfRange = errors.New("sparsec: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Add with different shapes, Mul where a.Cols != b.Rows,
	// or a dense vector whose length does not match the kernel contract.
	ErrDimensionMismatch = errors.New("sparsec: dimension mismatch")

	// ErrZeroDimension signals a degenerate multiply shape: one extent of
	// the result is zero while the complementary extent is nonzero. It is
	// reported distinctly from ErrDimensionMismatch (see Mul).
	ErrZeroDimension = errors.New("sparsec: zero dimension with nonzero complement")

	// ErrBadStructure signals that caller-supplied raw arrays violate the
	// CSC invariants (pointer length, monotonicity, row bounds, alignment).
	ErrBadStructure = errors.New("sparsec: malformed CSC structure")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where a finite
	// value is required (tolerances, epsilon policy).
	ErrNaNInf = errors.New("sparsec: NaN or Inf encountered")
)
