package ranking

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/linkpred/csr"
)

// PageRank returns the stationary distribution of a damped random walk
// over g: with probability Damping the walker follows an out-edge
// chosen proportionally to its weight, otherwise it restarts. The
// restart distribution is uniform unless WithSeeds supplies
// personalization weights. Mass landing on a dangling row (zero
// out-weight) is redistributed through the restart distribution.
//
// The returned vector has one non-negative entry per node and sums
// to 1. Iteration stops once the L1 change between sweeps drops below
// Tol, or after MaxIter sweeps.
//
// Errors:
//   - csr.ErrNilMatrix, csr.ErrNotSquare, csr.ErrEmptyGraph on a graph
//     PageRank cannot walk;
//   - ErrDampingRange, ErrTolRange, ErrMaxIterRange on malformed
//     options;
//   - ErrSeedRange on seeds naming unknown nodes, carrying negative
//     weights, or summing to zero.
//
// Complexity: O(MaxIter·(n+nnz)) time, O(n) extra space.
func PageRank(g *csr.Matrix, opts ...Option) ([]float64, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, fmt.Errorf("PageRank: %w", err)
	}
	n, err := squareAdjacency(g)
	if err != nil {
		return nil, fmt.Errorf("PageRank: %w", err)
	}
	restart, err := seedVector(n, o.Seeds)
	if err != nil {
		return nil, fmt.Errorf("PageRank: %w", err)
	}
	w := outWeights(g, n)

	x := make([]float64, n)
	copy(x, restart)
	next := make([]float64, n)
	for iter := 0; iter < o.MaxIter; iter++ {
		for i := range next {
			next[i] = 0
		}

		// Push each node's mass along its out-edges; collect the mass
		// stuck on dangling rows.
		var dangling float64
		for i := 0; i < n; i++ {
			if w[i] == 0 {
				dangling += x[i]
				continue
			}
			scale := o.Damping * x[i] / w[i]
			cols := g.Row(i)
			vals := g.RowData(i)
			for k, j := range cols {
				next[j] += scale * vals[k]
			}
		}

		// Restart mass plus the recycled dangling mass, spread over the
		// restart distribution.
		floats.AddScaled(next, 1-o.Damping+o.Damping*dangling, restart)

		done := floats.Distance(next, x, 1) < o.Tol
		x, next = next, x
		if done {
			break
		}
	}

	// The walk conserves mass; rescale only to shed rounding drift.
	floats.Scale(1/floats.Sum(x), x)
	return x, nil
}
