// SPDX-License-Identifier: MIT

// Package sparsec: structural maintenance. Cleanup consolidates duplicate
// (row, column) entries by summation; Keep filters entries by predicate;
// DropZeros is Keep specialized to zero/tolerance filtering. All three
// mutate the matrix in place and can only shrink the nonzero count.

package sparsec

import "math/cmplx"

// unseenOffset marks a row not yet emitted into the current output column.
const unseenOffset = -1

// KeepFunc decides whether the entry at (row, col) with value v survives a
// Keep pass.
type KeepFunc func(row, col int, v complex128) bool

// Cleanup consolidates duplicate (row, column) entries by summing them into
// the first occurrence, compacting the storage in place.
//
// Implementation:
//   - Single forward pass per column with a per-row "last seen at offset"
//     marker (sentinel unseenOffset). An entry whose row already has a
//     recorded offset at or after the current output column's start is a
//     duplicate: its value folds into that slot. Otherwise the entry is
//     emitted at the output cursor and its offset recorded.
//   - Column pointers are rewritten to the compacted positions as each
//     column finishes; the pass is idempotent.
//
// Behavior highlights:
//   - After Cleanup each (row, column) pair appears at most once; relative
//     order of surviving entries is preserved (first occurrence wins the
//     slot). The nonzero count shrinks or stays equal, never grows.
//
// Complexity: Time O(rows + nnz), Space O(rows) for the marker.
func (m *CSC) Cleanup() {
	// Per-row marker: offset of the row's slot in the current output
	// column, or unseenOffset/stale from an earlier column. Comparing the
	// recorded offset against the output column's start distinguishes the
	// two without resetting the array per column.
	w := make([]int, m.rows)
	for i := range w {
		w[i] = unseenOffset
	}

	var j, p, q, i, nz int
	for j = 0; j < m.cols; j++ {
		q = nz // output column j starts here
		for p = m.colPtr[j]; p < m.colPtr[j+1]; p++ {
			i = m.rowIdx[p]
			if w[i] >= q {
				// Row already emitted in this output column: fold in.
				m.values[w[i]] += m.values[p]
			} else {
				// First occurrence: emit at the cursor and record the slot.
				w[i] = nz
				m.rowIdx[nz] = i
				m.values[nz] = m.values[p]
				nz++
			}
		}
		m.colPtr[j] = q // rewrite to the compacted start
	}
	m.colPtr[m.cols] = nz

	m.maybeTrim()
}

// Keep rewrites the matrix in place, retaining only entries for which keep
// returns true, compacting each column and adjusting column pointers.
// Returns the new nonzero count.
//
// Determinism: fixed column-then-entry order; surviving entries keep their
// relative order. Complexity: Time O(cols + nnz), Space O(1).
func (m *CSC) Keep(keep KeepFunc) int {
	var j, p, end, nz int
	for j = 0; j < m.cols; j++ {
		p = m.colPtr[j]
		end = m.colPtr[j+1]
		m.colPtr[j] = nz // column j of the compacted matrix starts here
		for ; p < end; p++ {
			if keep(m.rowIdx[p], j, m.values[p]) {
				m.rowIdx[nz] = m.rowIdx[p]
				m.values[nz] = m.values[p]
				nz++
			}
		}
	}
	m.colPtr[m.cols] = nz

	m.maybeTrim()

	return nz
}

// DropZeros removes numerically-zero entries in place and returns the new
// nonzero count. With tol <= 0, an entry survives iff its value is not
// exactly zero; with tol > 0, iff its magnitude strictly exceeds tol.
// Complexity: Time O(cols + nnz), Space O(1).
func (m *CSC) DropZeros(tol float64) int {
	if tol > 0 {
		return m.Keep(func(_, _ int, v complex128) bool { return cmplx.Abs(v) > tol })
	}

	return m.Keep(func(_, _ int, v complex128) bool { return v != 0 })
}
