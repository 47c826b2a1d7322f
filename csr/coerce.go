package csr

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/mat"
)

// FromDense coerces a dense row-major table into canonical CSR form.
// Every nonzero entry becomes a stored edge carrying its value; explicit
// zeros are dropped. All rows must share one length.
//
// Complexity: O(r·c) scan, O(nnz) storage.
func FromDense(rows [][]float64) (*Matrix, error) {
	if rows == nil {
		return nil, fmt.Errorf("FromDense: %w", ErrNilMatrix)
	}
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}

	nnz := 0
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("FromDense: row %d has %d columns, want %d: %w", i, len(row), c, ErrDimensionMismatch)
		}
		for _, v := range row {
			if v != 0 {
				nnz++
			}
		}
	}

	indptr := make([]int, r+1)
	indices := make([]int, 0, nnz)
	data := make([]float64, 0, nnz)
	for i, row := range rows {
		for j, v := range row {
			if v != 0 {
				indices = append(indices, j)
				data = append(data, v)
			}
		}
		indptr[i+1] = len(indices)
	}

	return New(r, c, indptr, indices, data)
}

// FromMatrix coerces any gonum mat.Matrix into canonical CSR form.
// A *Matrix input passes through untouched, so refitting an already-coerced
// view costs nothing.
//
// Complexity: O(r·c) via At for foreign matrices, O(1) for *Matrix.
func FromMatrix(m mat.Matrix) (*Matrix, error) {
	if m == nil {
		return nil, fmt.Errorf("FromMatrix: %w", ErrNilMatrix)
	}
	if cm, ok := m.(*Matrix); ok {
		if cm == nil {
			return nil, fmt.Errorf("FromMatrix: %w", ErrNilMatrix)
		}

		return cm, nil
	}

	r, c := m.Dims()
	nnz := 0
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if m.At(i, j) != 0 {
				nnz++
			}
		}
	}

	indptr := make([]int, r+1)
	indices := make([]int, 0, nnz)
	data := make([]float64, 0, nnz)
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v = m.At(i, j); v != 0 {
				indices = append(indices, j)
				data = append(data, v)
			}
		}
		indptr[i+1] = len(indices)
	}

	return New(r, c, indptr, indices, data)
}

// FromEdges builds the adjacency of an undirected simple graph on n nodes.
// Each edge {u, v} is mirrored into both rows; duplicate edges collapse to
// one entry; a self-loop {u, u} stores a single diagonal entry. All entries
// carry weight 1.
//
// Complexity: O(n + E log E) for sorting and deduplication.
func FromEdges(n int, edges [][2]int) (*Matrix, error) {
	if n < 0 {
		return nil, fmt.Errorf("FromEdges: n=%d: %w", n, ErrDimensionMismatch)
	}

	adj := make([][]int, n)
	for k, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("FromEdges: edge %d = {%d, %d} outside [0, %d): %w", k, u, v, n, ErrIndexOutOfRange)
		}
		adj[u] = append(adj[u], v)
		if u != v {
			adj[v] = append(adj[v], u)
		}
	}

	indptr := make([]int, n+1)
	indices := make([]int, 0, 2*len(edges))
	for i, row := range adj {
		sort.Ints(row)
		// Collapse duplicate neighbors in place.
		w := 0
		for k, v := range row {
			if k == 0 || v != row[k-1] {
				row[w] = v
				w++
			}
		}
		indices = append(indices, row[:w]...)
		indptr[i+1] = len(indices)
	}

	return New(n, n, indptr, indices, nil)
}

// FromGraph ingests a gonum graph.Graph whose node IDs densely cover
// 0..n-1. Edge weights are taken from graph.Weighted implementations and
// default to 1 otherwise. Directed graphs keep their orientation: row i
// lists the successors of node i.
//
// Complexity: O(n + E) plus canonical sorting of each row.
func FromGraph(g graph.Graph) (*Matrix, error) {
	if g == nil {
		return nil, fmt.Errorf("FromGraph: %w", ErrNilMatrix)
	}

	n := 0
	it := g.Nodes()
	if it != nil {
		for it.Next() {
			n++
		}
		it.Reset()
		for it.Next() {
			// n distinct IDs inside [0, n) are exactly 0..n-1.
			if id := it.Node().ID(); id < 0 || id >= int64(n) {
				return nil, fmt.Errorf("FromGraph: node ID %d outside dense range [0, %d): %w", id, n, ErrIndexOutOfRange)
			}
		}
	}

	wg, weighted := g.(graph.Weighted)
	indptr := make([]int, n+1)
	indices := make([]int, 0, n)
	data := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		to := g.From(int64(i))
		for to != nil && to.Next() {
			j := to.Node().ID()
			w := 1.0
			if weighted {
				if ww, ok := wg.Weight(int64(i), j); ok {
					w = ww
				}
			}
			indices = append(indices, int(j))
			data = append(data, w)
		}
		indptr[i+1] = len(indices)
	}

	return New(n, n, indptr, indices, data)
}
