// SPDX-License-Identifier: MIT
// Package sparsec_test contains unit and property tests for the transpose
// kernels: structural vs. conjugate semantics, shape swapping, canonical
// output order, and the double-transpose round trip.

package sparsec_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTranspose_ShapeAndValues(t *testing.T) {
	t.Parallel()

	// A = [1+i 0; 0 2; 3 0] (3×2)
	a := MustFromRaw(t, 3, 2,
		[]int{0, 2, 3},
		[]int{0, 2, 1},
		[]complex128{1 + 1i, 3, 2},
	)

	at := a.Transpose()
	require.Equal(t, 2, at.Rows())
	require.Equal(t, 3, at.Cols())
	require.Equal(t, a.NNZ(), at.NNZ())

	// Structural transpose: values untouched, coordinates swapped.
	require.Equal(t, complex128(1+1i), MustAt(t, at, 0, 0))
	require.Equal(t, complex128(3), MustAt(t, at, 0, 2))
	require.Equal(t, complex128(2), MustAt(t, at, 1, 1))
}

func TestConjTranspose_ConjugatesValues(t *testing.T) {
	t.Parallel()

	a := MustFromRaw(t, 2, 2,
		[]int{0, 1, 2},
		[]int{1, 0},
		[]complex128{2 + 3i, -1i},
	)

	ah := a.ConjTranspose()
	require.Equal(t, complex128(2-3i), MustAt(t, ah, 0, 1))
	require.Equal(t, complex128(1i), MustAt(t, ah, 1, 0))
}

func TestTranspose_OutputColumnsRowSorted(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(testSeed + 10))
	a := RandomCSC(t, rng, 11, 8, 5)

	at := a.Transpose()
	sorted := at.Clone()
	sorted.SortIndices()
	// The counting/placement pass emits destination columns in increasing
	// source-column order, so the result is canonical without sorting.
	require.True(t, at.EqualWithin(sorted, 0))
}

// TestConjTranspose_RoundTrip checks that conjugate-transposing
// twice returns a matrix equal to the original within tolerance.
func TestConjTranspose_RoundTrip(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(testSeed + 11))
	a := RandomCSC(t, rng, 9, 12, 4)

	round := a.ConjTranspose().ConjTranspose()
	require.True(t, a.EqualWithin(round, testTol))
}

func TestTranspose_RoundTripExact(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(testSeed + 12))
	a := RandomCSC(t, rng, 7, 7, 3)

	// The structural transpose moves values verbatim: the round trip is
	// bit-exact, not merely within tolerance.
	require.True(t, a.EqualWithin(a.Transpose().Transpose(), 0))
}

func TestTranspose_EmptyMatrix(t *testing.T) {
	t.Parallel()

	a := MustCSC(t, 4, 3)
	at := a.Transpose()
	require.Equal(t, 3, at.Rows())
	require.Equal(t, 4, at.Cols())
	require.Equal(t, 0, at.NNZ())
}
