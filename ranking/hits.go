package ranking

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/linkpred/csr"
)

// HITSResult carries the two mutually reinforcing HITS score vectors.
type HITSResult struct {
	// Hubs scores the row nodes: one entry per row of the input.
	Hubs []float64

	// Authorities scores the column nodes: one entry per column of the
	// input. For a square adjacency both vectors index the same nodes.
	Authorities []float64
}

// HITS computes hub and authority scores by alternating power
// iteration: authorities absorb the hub scores of their in-neighbors
// (a ← Aᵀh), hubs absorb the authority scores of their out-neighbors
// (h ← Aa), each half-step normalized to unit L2 length.
//
// Rectangular input is treated as a biadjacency: Hubs scores the rows,
// Authorities the columns. Seeds and damping are ignored; Tol and
// MaxIter bound the iteration. An input with no stored edges yields
// all-zero scores.
//
// Errors: csr.ErrNilMatrix, csr.ErrEmptyGraph, and the option
// sentinels ErrTolRange and ErrMaxIterRange.
//
// Complexity: O(MaxIter·(r+c+nnz)) time, O(r+c) extra space.
func HITS(g *csr.Matrix, opts ...Option) (*HITSResult, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, fmt.Errorf("HITS: %w", err)
	}
	r, c, err := rectAdjacency(g)
	if err != nil {
		return nil, fmt.Errorf("HITS: %w", err)
	}

	h := make([]float64, r)
	for i := range h {
		h[i] = 1 / math.Sqrt(float64(r))
	}
	a := make([]float64, c)
	prev := make([]float64, r)

	for iter := 0; iter < o.MaxIter; iter++ {
		copy(prev, h)

		// a ← Aᵀh, one pass over the rows.
		for j := range a {
			a[j] = 0
		}
		for i := 0; i < r; i++ {
			cols := g.Row(i)
			vals := g.RowData(i)
			for k, j := range cols {
				a[j] += vals[k] * h[i]
			}
		}
		if norm := floats.Norm(a, 2); norm != 0 {
			floats.Scale(1/norm, a)
		}

		// h ← Aa.
		for i := 0; i < r; i++ {
			cols := g.Row(i)
			vals := g.RowData(i)
			var sum float64
			for k, j := range cols {
				sum += vals[k] * a[j]
			}
			h[i] = sum
		}
		norm := floats.Norm(h, 2)
		if norm == 0 {
			// No edges feed the hubs: both vectors are zero and stay so.
			break
		}
		floats.Scale(1/norm, h)

		if floats.Distance(h, prev, 2) < o.Tol {
			break
		}
	}

	return &HITSResult{Hubs: h, Authorities: a}, nil
}
