package ranking

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/linkpred/csr"
)

// Diffusion propagates heat from seed nodes across g. Seeds hold their
// temperatures throughout (Dirichlet boundary conditions); every other
// node starts cold at 0 and each sweep takes the weighted average of
// its neighbors' temperatures. Dangling rows keep their current value.
//
// At least one seed is required (ErrNoSeeds); seed weights follow the
// same rules as PageRank personalization (ErrSeedRange) but are used
// as-is, without normalization. The result converges toward the
// harmonic extension of the seed temperatures, so on a connected graph
// every score lies between the coldest value in play and the hottest
// seed. Iteration stops once the L1 change between sweeps drops below
// Tol, or after MaxIter sweeps; damping is ignored.
//
// Complexity: O(MaxIter·(n+nnz)) time, O(n) extra space.
func Diffusion(g *csr.Matrix, opts ...Option) ([]float64, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, fmt.Errorf("Diffusion: %w", err)
	}
	n, err := squareAdjacency(g)
	if err != nil {
		return nil, fmt.Errorf("Diffusion: %w", err)
	}
	if len(o.Seeds) == 0 {
		return nil, fmt.Errorf("Diffusion: %w", ErrNoSeeds)
	}
	if err := validateSeeds(n, o.Seeds); err != nil {
		return nil, fmt.Errorf("Diffusion: %w", err)
	}
	w := outWeights(g, n)

	x := make([]float64, n)
	for id, temp := range o.Seeds {
		x[id] = temp
	}
	next := make([]float64, n)
	for iter := 0; iter < o.MaxIter; iter++ {
		for i := 0; i < n; i++ {
			if w[i] == 0 {
				next[i] = x[i]
				continue
			}
			cols := g.Row(i)
			vals := g.RowData(i)
			var sum float64
			for k, j := range cols {
				sum += vals[k] * x[j]
			}
			next[i] = sum / w[i]
		}
		for id, temp := range o.Seeds {
			next[id] = temp
		}

		done := floats.Distance(next, x, 1) < o.Tol
		x, next = next, x
		if done {
			break
		}
	}
	return x, nil
}
