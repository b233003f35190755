// SPDX-License-Identifier: MIT

package sparsec

// scatter merges column j of src, scaled by beta, into the dense workspace
// x, recording newly-touched rows in c's row-index array. It is the single
// primitive both Add and Mul use to build a result column's sparsity
// pattern incrementally, without pre-sorting.
//
// Contract:
//   - w is a per-row marker array (len == src.rows) whose entries are all
//     below mark on the first use of mark; mark must be unique per output
//     column (callers pass j+1 so the zero-initialized w needs no reset).
//   - x is the dense accumulator (len == src.rows).
//   - nz is the running cursor into c.rowIdx; c must have room for every
//     row the current output column can touch.
//
// For each stored entry (i, v) of src column j:
//   - w[i] <  mark: first touch this pass — mark it, seed x[i] = beta*v,
//     append i at c.rowIdx[nz], advance nz.
//   - w[i] == mark: already touched — accumulate x[i] += beta*v.
//
// Returns the updated cursor. The marker trick keeps the cost O(entries in
// column) instead of re-zeroing an O(rows) workspace per column.
func scatter(src *CSC, j int, beta complex128, w []int, x []complex128, mark int, c *CSC, nz int) int {
	var p, i int
	for p = src.colPtr[j]; p < src.colPtr[j+1]; p++ {
		i = src.rowIdx[p] // row of the contributing entry
		if w[i] < mark {
			w[i] = mark          // first touch in this output column
			c.rowIdx[nz] = i     // record the new row position
			nz++                 // advance the result cursor
			x[i] = beta * src.values[p] // seed the accumulator
		} else {
			x[i] += beta * src.values[p] // accumulate a duplicate touch
		}
	}

	return nz
}
