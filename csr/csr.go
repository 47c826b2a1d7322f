package csr

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// New adopts raw CSR arrays as a Matrix after validating the canonical-form
// invariants: len(indptr) == rows+1, indptr[0] == 0, indptr monotone and
// ending at len(indices), every column index inside [0, cols), no duplicate
// index within a row. Unsorted row segments are sorted in place (data moves
// with its index). A nil data slice means an unweighted matrix; every entry
// gets weight 1.
//
// The Matrix takes ownership of the slices; callers must not mutate them
// afterwards.
//
// Complexity: O(nnz) validation plus O(deg log deg) per unsorted row.
func New(rows, cols int, indptr, indices []int, data []float64) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("New: %dx%d: %w", rows, cols, ErrDimensionMismatch)
	}
	if len(indptr) != rows+1 {
		return nil, fmt.Errorf("New: len(indptr)=%d, want %d: %w", len(indptr), rows+1, ErrBadIndptr)
	}
	if indptr[0] != 0 {
		return nil, fmt.Errorf("New: indptr[0]=%d: %w", indptr[0], ErrBadIndptr)
	}
	for i := 0; i < rows; i++ {
		if indptr[i] > indptr[i+1] {
			return nil, fmt.Errorf("New: indptr decreases at row %d: %w", i, ErrBadIndptr)
		}
	}
	if indptr[rows] != len(indices) {
		return nil, fmt.Errorf("New: indptr[%d]=%d, len(indices)=%d: %w", rows, indptr[rows], len(indices), ErrBadIndptr)
	}
	if data != nil && len(data) != len(indices) {
		return nil, fmt.Errorf("New: len(data)=%d, len(indices)=%d: %w", len(data), len(indices), ErrDimensionMismatch)
	}
	if data == nil {
		data = make([]float64, len(indices))
		for i := range data {
			data[i] = 1
		}
	}

	for i := 0; i < rows; i++ {
		lo, hi := indptr[i], indptr[i+1]
		seg := indices[lo:hi]
		for _, j := range seg {
			if j < 0 || j >= cols {
				return nil, fmt.Errorf("New: row %d holds column %d: %w", i, j, ErrIndexOutOfRange)
			}
		}
		if !sort.IntsAreSorted(seg) {
			sort.Sort(rowSorter{idx: seg, val: data[lo:hi]})
		}
		for k := 1; k < len(seg); k++ {
			if seg[k] == seg[k-1] {
				return nil, fmt.Errorf("New: row %d repeats column %d: %w", i, seg[k], ErrDuplicateIndex)
			}
		}
	}

	return &Matrix{rows: rows, cols: cols, indptr: indptr, indices: indices, data: data}, nil
}

// rowSorter co-sorts one row segment of indices and its aligned data.
type rowSorter struct {
	idx []int
	val []float64
}

func (s rowSorter) Len() int           { return len(s.idx) }
func (s rowSorter) Less(a, b int) bool { return s.idx[a] < s.idx[b] }
func (s rowSorter) Swap(a, b int) {
	s.idx[a], s.idx[b] = s.idx[b], s.idx[a]
	s.val[a], s.val[b] = s.val[b], s.val[a]
}

// Dims returns the number of rows and columns.
func (m *Matrix) Dims() (r, c int) { return m.rows, m.cols }

// At returns the value at (i, j), zero when the entry is absent.
// It panics with ErrIndexOutOfRange when i or j falls outside the matrix,
// matching the gonum mat.Matrix contract.
//
// Complexity: O(log deg(i)) binary search of row i.
func (m *Matrix) At(i, j int) float64 {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(ErrIndexOutOfRange)
	}
	lo, hi := m.indptr[i], m.indptr[i+1]
	seg := m.indices[lo:hi]
	k := sort.SearchInts(seg, j)
	if k < len(seg) && seg[k] == j {
		return m.data[lo+k]
	}

	return 0
}

// T returns the receiver wrapped in a gonum transpose view.
// Use Transpose for a materialized CSR transpose.
func (m *Matrix) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// NNZ returns the number of stored entries.
func (m *Matrix) NNZ() int { return len(m.indices) }

// Degree returns the structural degree of row i: the number of stored
// entries in the row. Panics with ErrIndexOutOfRange for invalid i.
func (m *Matrix) Degree(i int) int {
	if i < 0 || i >= m.rows {
		panic(ErrIndexOutOfRange)
	}

	return m.indptr[i+1] - m.indptr[i]
}

// Row returns the sorted column indices of row i as a borrowed slice;
// callers must not mutate it. Panics with ErrIndexOutOfRange for invalid i.
func (m *Matrix) Row(i int) []int {
	if i < 0 || i >= m.rows {
		panic(ErrIndexOutOfRange)
	}

	return m.indices[m.indptr[i]:m.indptr[i+1]]
}

// RowData returns the values of row i aligned with Row(i), borrowed.
// Panics with ErrIndexOutOfRange for invalid i.
func (m *Matrix) RowData(i int) []float64 {
	if i < 0 || i >= m.rows {
		panic(ErrIndexOutOfRange)
	}

	return m.data[m.indptr[i]:m.indptr[i+1]]
}

// CompressedRows returns the indptr and indices arrays as borrowed slices
// for tight scoring loops; callers must not mutate them.
func (m *Matrix) CompressedRows() (indptr, indices []int) {
	return m.indptr, m.indices
}

// Transpose returns a new materialized transpose in canonical CSR form.
//
// Complexity: O(nnz + rows + cols) counting sort; row segments of the result
// come out sorted because source rows are visited in ascending order.
func (m *Matrix) Transpose() *Matrix {
	tptr := make([]int, m.cols+1)
	for _, j := range m.indices {
		tptr[j+1]++
	}
	for c := 0; c < m.cols; c++ {
		tptr[c+1] += tptr[c]
	}

	tind := make([]int, len(m.indices))
	tdat := make([]float64, len(m.data))
	next := make([]int, m.cols)
	copy(next, tptr[:m.cols])
	var i, p, j, q int
	for i = 0; i < m.rows; i++ {
		for p = m.indptr[i]; p < m.indptr[i+1]; p++ {
			j = m.indices[p]
			q = next[j]
			tind[q] = i
			tdat[q] = m.data[p]
			next[j]++
		}
	}

	return &Matrix{rows: m.cols, cols: m.rows, indptr: tptr, indices: tind, data: tdat}
}
