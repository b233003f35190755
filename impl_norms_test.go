// SPDX-License-Identifier: MIT
// Package sparsec_test contains unit tests for norms, the Hermitian check
// and tolerance-based structural equality.

package sparsec_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/sparsec"
)

func TestNorms_SmallKnown(t *testing.T) {
	t.Parallel()

	// A = [3 0; 4i 2] — column sums |.|: {3+4, 2}; row sums: {3, 4+2}.
	a := MustFromRaw(t, 2, 2,
		[]int{0, 2, 3},
		[]int{0, 1, 1},
		[]complex128{3, 4i, 2},
	)

	require.True(t, scalar.EqualWithinAbs(a.Norm1(), 7, testTol))
	require.True(t, scalar.EqualWithinAbs(a.NormInf(), 6, testTol))
}

// TestNormFrobenius_SingleEntry checks that the Frobenius norm
// of a single entry of magnitude 5 equals exactly 5.0.
func TestNormFrobenius_SingleEntry(t *testing.T) {
	t.Parallel()

	a := MustFromRaw(t, 3, 3,
		[]int{0, 0, 1, 1},
		[]int{2},
		[]complex128{3 + 4i}, // |3+4i| = 5
	)
	require.Equal(t, 5.0, a.NormFrobenius())
}

func TestNorms_EmptyMatrix(t *testing.T) {
	t.Parallel()

	a := MustCSC(t, 4, 4)
	require.Equal(t, 0.0, a.Norm1())
	require.Equal(t, 0.0, a.NormInf())
	require.Equal(t, 0.0, a.NormFrobenius())
}

// TestIsHermitian_Constructed checks that A + Aᴴ is Hermitian;
// one asymmetric off-diagonal perturbation breaks it.
func TestIsHermitian_Constructed(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(testSeed + 40))
	a := RandomCSC(t, rng, 6, 6, 3)

	h, err := sparsec.Add(a, a.ConjTranspose(), 1, 1)
	require.NoError(t, err)
	require.True(t, h.IsHermitian())

	// Perturb one off-diagonal entry: the mirror no longer matches.
	broken, err := sparsec.Add(h, MustFromRaw(t, 6, 6,
		[]int{0, 0, 1, 1, 1, 1, 1},
		[]int{4},
		[]complex128{0.125},
	), 1, 1)
	require.NoError(t, err)
	require.False(t, broken.IsHermitian())
}

func TestIsHermitian_NonSquare(t *testing.T) {
	t.Parallel()

	require.False(t, MustCSC(t, 2, 3).IsHermitian())
}

func TestIsHermitian_RealDiagonalRequired(t *testing.T) {
	t.Parallel()

	// A diagonal entry with nonzero imaginary part violates v == conj(v).
	a := MustFromRaw(t, 2, 2,
		[]int{0, 1, 1},
		[]int{0},
		[]complex128{1 + 1i},
	)
	require.False(t, a.IsHermitian())

	b := MustFromRaw(t, 2, 2,
		[]int{0, 1, 1},
		[]int{0},
		[]complex128{1},
	)
	require.True(t, b.IsHermitian())
}

func TestEqualWithin_Structural(t *testing.T) {
	t.Parallel()

	a := MustFromRaw(t, 2, 2,
		[]int{0, 1, 2},
		[]int{0, 1},
		[]complex128{1, 2i},
	)
	b := a.Clone()
	require.True(t, a.EqualWithin(b, 0))
	require.False(t, a.EqualWithin(nil, 0))

	// Value drift within tolerance passes; beyond it fails.
	c := MustFromRaw(t, 2, 2,
		[]int{0, 1, 2},
		[]int{0, 1},
		[]complex128{1 + 1e-13, 2i},
	)
	require.True(t, a.EqualWithin(c, 1e-12))
	require.False(t, a.EqualWithin(c, 1e-14))

	// Same content, different pattern positions: structural inequality.
	d := MustFromRaw(t, 2, 2,
		[]int{0, 2, 2},
		[]int{0, 1},
		[]complex128{1, 2i},
	)
	require.False(t, a.EqualWithin(d, 1))

	// Shape mismatch.
	e := MustFromRaw(t, 2, 1,
		[]int{0, 1},
		[]int{0},
		[]complex128{1},
	)
	require.False(t, a.EqualWithin(e, 1))
}

func TestEqualWithin_ComponentwiseTolerance(t *testing.T) {
	t.Parallel()

	// Real and imaginary parts are compared independently: a drift of
	// 1.5e-9 in each component must fail a 1e-9 tolerance even though the
	// complex magnitude of the difference could pass a looser check.
	a := MustFromRaw(t, 1, 1, []int{0, 1}, []int{0}, []complex128{1 + 1i})
	b := MustFromRaw(t, 1, 1, []int{0, 1}, []int{0}, []complex128{complex(1+1.5e-9, 1-1.5e-9)})
	require.False(t, a.EqualWithin(b, 1e-9))
	require.True(t, a.EqualWithin(b, 2e-9))
}
