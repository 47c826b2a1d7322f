package ranking

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/linkpred/csr"
)

// squareAdjacency admits the graphs PageRank and Diffusion can walk:
// non-nil, square, at least one node.
func squareAdjacency(g *csr.Matrix) (int, error) {
	if g == nil {
		return 0, csr.ErrNilMatrix
	}
	r, c := g.Dims()
	if r != c {
		return 0, fmt.Errorf("adjacency is %dx%d: %w", r, c, csr.ErrNotSquare)
	}
	if r == 0 {
		return 0, csr.ErrEmptyGraph
	}
	return r, nil
}

// rectAdjacency admits any non-degenerate (bi)adjacency for HITS.
func rectAdjacency(g *csr.Matrix) (rows, cols int, err error) {
	if g == nil {
		return 0, 0, csr.ErrNilMatrix
	}
	rows, cols = g.Dims()
	if rows == 0 || cols == 0 {
		return 0, 0, csr.ErrEmptyGraph
	}
	return rows, cols, nil
}

// validateSeeds rejects seed maps a scorer cannot use: IDs outside
// [0, n), negative or NaN weights, or an all-zero total.
func validateSeeds(n int, seeds map[int]float64) error {
	var total float64
	for id, w := range seeds {
		if id < 0 || id >= n {
			return fmt.Errorf("seed node %d outside [0, %d): %w", id, n, ErrSeedRange)
		}
		if w < 0 || math.IsNaN(w) {
			return fmt.Errorf("seed node %d has weight %g: %w", id, w, ErrSeedRange)
		}
		total += w
	}
	if len(seeds) > 0 && total == 0 {
		return fmt.Errorf("seed weights sum to zero: %w", ErrSeedRange)
	}
	return nil
}

// seedVector turns a seed map into a length-n distribution summing
// to 1. An empty map yields the uniform distribution.
func seedVector(n int, seeds map[int]float64) ([]float64, error) {
	if err := validateSeeds(n, seeds); err != nil {
		return nil, err
	}
	r := make([]float64, n)
	if len(seeds) == 0 {
		for i := range r {
			r[i] = 1 / float64(n)
		}
		return r, nil
	}
	for id, w := range seeds {
		r[id] = w
	}
	floats.Scale(1/floats.Sum(r), r)
	return r, nil
}

// outWeights sums each row's stored values: the normalizer that turns
// edge weights into transition probabilities. A zero entry marks a
// dangling row.
func outWeights(g *csr.Matrix, n int) []float64 {
	w := make([]float64, n)
	for i := 0; i < n; i++ {
		w[i] = floats.Sum(g.RowData(i))
	}
	return w
}
