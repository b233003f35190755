// SPDX-License-Identifier: MIT

// Package sparsec: the CSC store. This file holds the concrete type, both
// constructors, O(1) accessors, the point lookup, and the storage
// collaborators shared by the kernels: resize/trim, the exclusive
// cumulative-sum pass, and the per-column row-index sort.
package sparsec

import (
	"fmt"
	"sort"
	"strings"
)

// cscErrorf wraps an underlying error with CSC method context.
func cscErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("CSC.%s(%d,%d): %w", method, row, col, err)
}

// CSC is an rows×cols sparse matrix of complex128 values in compressed
// column storage.
//
// Invariants (maintained by every kernel in this package):
//  1. len(colPtr) == cols+1, colPtr[0] == 0, colPtr non-decreasing.
//  2. Entries of column j live in rowIdx/values[colPtr[j]:colPtr[j+1]].
//  3. Every stored row index lies in [0, rows).
//  4. colPtr[cols] is the logical nonzero count; len(rowIdx) == len(values)
//     is the capacity and may exceed it.
//
// Within a column, entries are not guaranteed row-sorted unless an
// operation's contract says so (Add and Mul sort their result columns).
type CSC struct {
	rows, cols int          // fixed for the lifetime of the matrix
	colPtr     []int        // column start offsets, length cols+1
	rowIdx     []int        // row index per stored entry
	values     []complex128 // value per stored entry, parallel to rowIdx

	autoTrim bool    // shrink capacity after structural mutation
	eps      float64 // tolerance for structural checks (IsHermitian)
}

// NewCSC creates an empty rows×cols matrix.
// Stage 1 (Validate): reject negative dimensions (zero is legal).
// Stage 2 (Prepare): resolve options, allocate pointer array and capacity.
// Stage 3 (Finalize): return the store or ErrBadShape.
// Complexity: O(cols + capacity) time and memory.
func NewCSC(rows, cols int, opts ...Option) (*CSC, error) {
	// Validate dimensions: zero-sized matrices are legal, negative are not.
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}
	// Resolve the effective configuration.
	o := gatherOptions(opts...)

	// Allocate the three backing arrays.
	return &CSC{
		rows:     rows,
		cols:     cols,
		colPtr:   make([]int, cols+1),
		rowIdx:   make([]int, o.capacity),
		values:   make([]complex128, o.capacity),
		autoTrim: o.autoTrim,
		eps:      o.eps,
	}, nil
}

// NewCSCFromRaw builds a matrix from caller-supplied raw arrays.
// Ownership of colPtr, rowIdx and values transfers to the matrix; the caller
// must not retain or mutate them afterwards.
//
// Implementation:
//   - Stage 1: reject negative dimensions (ErrBadShape), then check every
//     CSC invariant on the supplied arrays via validateRaw (ErrBadStructure).
//   - Stage 2: adopt the arrays without copying and attach the option state.
//
// Behavior highlights:
//   - Zero-copy adoption; O(cols + nnz) validation is the only pass.
//   - Row order inside columns is accepted as-is; call SortIndices to
//     canonicalize when a downstream contract needs sorted columns.
//
// Errors:
//   - ErrBadShape     (negative rows/cols).
//   - ErrBadStructure (any invariant violation; the wrap names the check).
//
// Complexity: Time O(cols + nnz), Space O(1) beyond the adopted arrays.
func NewCSCFromRaw(rows, cols int, colPtr, rowIdx []int, values []complex128, opts ...Option) (*CSC, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}
	if err := validateRaw(rows, cols, colPtr, rowIdx, values); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	return &CSC{
		rows:     rows,
		cols:     cols,
		colPtr:   colPtr,
		rowIdx:   rowIdx,
		values:   values,
		autoTrim: o.autoTrim,
		eps:      o.eps,
	}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *CSC) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *CSC) Cols() int { return m.cols }

// NNZ returns the logical nonzero count (explicitly stored entries, which
// may include numerically-zero values until DropZeros). Complexity: O(1).
func (m *CSC) NNZ() int { return m.colPtr[m.cols] }

// Cap returns the entry capacity of the backing arrays. Complexity: O(1).
func (m *CSC) Cap() int { return len(m.rowIdx) }

// At returns the value stored at (row, col), or zero when the coordinate has
// no stored entry. Duplicate entries (possible before Cleanup) are summed so
// the returned value is always the mathematical coefficient.
// Returns ErrOutOfRange on indices outside the matrix shape.
// Complexity: O(entries in column col).
func (m *CSC) At(row, col int) (complex128, error) {
	// Validate row index.
	if row < 0 || row >= m.rows {
		return 0, cscErrorf("At", row, col, ErrOutOfRange)
	}
	// Validate column index.
	if col < 0 || col >= m.cols {
		return 0, cscErrorf("At", row, col, ErrOutOfRange)
	}

	// Scan the column slice; duplicates accumulate.
	var v complex128
	for p := m.colPtr[col]; p < m.colPtr[col+1]; p++ {
		if m.rowIdx[p] == row {
			v += m.values[p]
		}
	}

	return v, nil
}

// Clone returns a deep copy of the matrix with identical logical content and
// option state. Slack capacity beyond the logical count is not copied.
// Complexity: O(cols + nnz) time and memory.
func (m *CSC) Clone() *CSC {
	nz := m.NNZ()
	c := &CSC{
		rows:     m.rows,
		cols:     m.cols,
		colPtr:   make([]int, m.cols+1),
		rowIdx:   make([]int, nz),
		values:   make([]complex128, nz),
		autoTrim: m.autoTrim,
		eps:      m.eps,
	}
	copy(c.colPtr, m.colPtr)
	copy(c.rowIdx, m.rowIdx[:nz])
	copy(c.values, m.values[:nz])

	return c
}

// Scale multiplies every stored entry by alpha, in place.
// alpha == 0 leaves the sparsity pattern intact (explicit zeros remain until
// DropZeros). Complexity: O(nnz).
func (m *CSC) Scale(alpha complex128) {
	nz := m.NNZ()
	for p := 0; p < nz; p++ {
		m.values[p] *= alpha
	}
}

// String implements fmt.Stringer for debugging: one line per column listing
// (row, value) pairs. Complexity: O(cols + nnz) string construction.
func (m *CSC) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "CSC %dx%d nnz=%d\n", m.rows, m.cols, m.NNZ())
	var j, p int
	for j = 0; j < m.cols; j++ {
		fmt.Fprintf(&b, "col %d:", j)
		for p = m.colPtr[j]; p < m.colPtr[j+1]; p++ {
			fmt.Fprintf(&b, " (%d, %v)", m.rowIdx[p], m.values[p])
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// ---------- Storage collaborators ----------

// resize grows or shrinks the backing arrays to exactly nzmax entries,
// preserving the logical prefix. Kernels that hold local slices into the
// backing arrays MUST re-fetch them after calling resize: the old slices
// alias freed storage.
// Complexity: O(min(nzmax, previous capacity)).
func (m *CSC) resize(nzmax int) {
	if nzmax < m.NNZ() {
		nzmax = m.NNZ() // never drop stored entries
	}
	rowIdx := make([]int, nzmax)
	values := make([]complex128, nzmax)
	copy(rowIdx, m.rowIdx)
	copy(values, m.values)
	m.rowIdx = rowIdx
	m.values = values
}

// Trim releases slack capacity, shrinking the backing arrays to the logical
// nonzero count. Complexity: O(nnz).
func (m *CSC) Trim() {
	if m.Cap() > m.NNZ() {
		m.resize(m.NNZ())
	}
}

// maybeTrim applies the configured auto-trim policy after a structural
// mutation. Complexity: O(nnz) when trimming, O(1) otherwise.
func (m *CSC) maybeTrim() {
	if m.autoTrim {
		m.Trim()
	}
}

// cumulativeSum writes exclusive prefix sums of counts into ptr
// (len(ptr) == len(counts)+1) and mirrors the start offsets back into
// counts, so callers can advance counts in place during a placement pass.
// Returns the total. Complexity: O(len(counts)).
func cumulativeSum(ptr, counts []int) int {
	nz := 0
	for i := range counts {
		ptr[i] = nz
		nz += counts[i]
		counts[i] = ptr[i] // counts now holds the next free slot per bucket
	}
	ptr[len(counts)] = nz

	return nz
}

// columnWindow co-sorts one column's (rowIdx, values) pairs by row index.
// It exists because the two parallel slices must swap in lockstep.
type columnWindow struct {
	rows []int
	vals []complex128
}

func (w *columnWindow) Len() int           { return len(w.rows) }
func (w *columnWindow) Less(i, j int) bool { return w.rows[i] < w.rows[j] }
func (w *columnWindow) Swap(i, j int) {
	w.rows[i], w.rows[j] = w.rows[j], w.rows[i]
	w.vals[i], w.vals[j] = w.vals[j], w.vals[i]
}

// SortIndices sorts each column's entries by row index, in place. Add and
// Mul call this as their post-pass (scatter does not produce row-sorted
// output); it is exported for callers that built a matrix from raw arrays
// and need the canonical order.
// Determinism: per-column sort.Sort on distinct row keys (duplicates, if
// any, keep no particular relative order — Cleanup removes them).
// Complexity: O(nnz log(max column length)).
func (m *CSC) SortIndices() {
	var j, lo, hi int
	for j = 0; j < m.cols; j++ {
		lo, hi = m.colPtr[j], m.colPtr[j+1]
		if hi-lo < 2 {
			continue // empty or single-entry columns are already sorted
		}
		sort.Sort(&columnWindow{rows: m.rowIdx[lo:hi], vals: m.values[lo:hi]})
	}
}
