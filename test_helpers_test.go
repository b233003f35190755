// SPDX-License-Identifier: MIT
// Package sparsec_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic test fixtures and utilities for the CSC
//     store and kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy
//     interference; randomness is always seeded.

package sparsec_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/sparsec"
)

// Deterministic seed shared by the property tests.
const testSeed = 42

// Default tolerance for floating comparisons in property tests.
const testTol = 1e-12

// MustCSC allocates an r×c *CSC or fails the test (fatal on error).
func MustCSC(t *testing.T, r, c int, opts ...sparsec.Option) *sparsec.CSC {
	t.Helper()
	m, err := sparsec.NewCSC(r, c, opts...)
	if err != nil {
		t.Fatalf("NewCSC(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFromRaw adopts raw arrays into a *CSC or fails the test.
func MustFromRaw(t *testing.T, r, c int, colPtr, rowIdx []int, values []complex128, opts ...sparsec.Option) *sparsec.CSC {
	t.Helper()
	m, err := sparsec.NewCSCFromRaw(r, c, colPtr, rowIdx, values, opts...)
	if err != nil {
		t.Fatalf("NewCSCFromRaw(%d,%d): %v", r, c, err)
	}

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m *sparsec.CSC, i, j int) complex128 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// DenseOf materializes the matrix as a rows×cols dense grid via At.
// Duplicates (if any) are summed by At, so the grid is the mathematical
// content regardless of storage state.
func DenseOf(t *testing.T, m *sparsec.CSC) [][]complex128 {
	t.Helper()
	d := make([][]complex128, m.Rows())
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		d[i] = make([]complex128, m.Cols())
		for j = 0; j < m.Cols(); j++ {
			d[i][j] = MustAt(t, m, i, j)
		}
	}

	return d
}

// RandomCSC builds a rows×cols matrix with up to perCol random entries per
// column (distinct rows, sorted) and pseudo-random complex values drawn
// from the seeded rng. Deterministic for a fixed rng state.
func RandomCSC(t *testing.T, rng *rand.Rand, rows, cols, perCol int) *sparsec.CSC {
	t.Helper()
	colPtr := make([]int, cols+1)
	rowIdx := make([]int, 0, cols*perCol)
	values := make([]complex128, 0, cols*perCol)

	var j, k int
	for j = 0; j < cols; j++ {
		// Draw distinct rows for this column, then sort for canonical order.
		picked := rng.Perm(rows)
		n := perCol
		if n > rows {
			n = rows
		}
		col := append([]int(nil), picked[:n]...)
		sort.Ints(col)
		for k = 0; k < n; k++ {
			rowIdx = append(rowIdx, col[k])
			values = append(values, complex(rng.Float64()*2-1, rng.Float64()*2-1))
		}
		colPtr[j+1] = len(rowIdx)
	}

	return MustFromRaw(t, rows, cols, colPtr, rowIdx, values)
}

// RandomVec returns a length-n pseudo-random complex vector.
func RandomVec(rng *rand.Rand, n int) []complex128 {
	x := make([]complex128, n)
	for i := range x {
		x[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
	}

	return x
}

// VecsWithin fails the test unless got and want agree per component within tol.
func VecsWithin(t *testing.T, got, want []complex128, tol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("vector length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		dr := real(got[i]) - real(want[i])
		di := imag(got[i]) - imag(want[i])
		if dr < 0 {
			dr = -dr
		}
		if di < 0 {
			di = -di
		}
		if dr > tol || di > tol {
			t.Fatalf("vector mismatch at %d: got %v, want %v (tol %g)", i, got[i], want[i], tol)
		}
	}
}
