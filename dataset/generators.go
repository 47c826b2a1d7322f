package dataset

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linkpred/csr"
)

// ErrTooFewNodes indicates a size below the generator's minimum.
var ErrTooFewNodes = errors.New("dataset: too few nodes")

// Path returns the path graph 0-1-...-(n-1). Needs n ≥ 2.
func Path(n int) (*csr.Matrix, error) {
	if n < 2 {
		return nil, fmt.Errorf("Path: need n ≥ 2, got %d: %w", n, ErrTooFewNodes)
	}
	edges := make([][2]int, 0, n-1)
	for i := 0; i+1 < n; i++ {
		edges = append(edges, [2]int{i, i + 1})
	}
	return csr.FromEdges(n, edges)
}

// Cycle returns the cycle graph 0-1-...-(n-1)-0. Needs n ≥ 3.
func Cycle(n int) (*csr.Matrix, error) {
	if n < 3 {
		return nil, fmt.Errorf("Cycle: need n ≥ 3, got %d: %w", n, ErrTooFewNodes)
	}
	edges := make([][2]int, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, [2]int{i, (i + 1) % n})
	}
	return csr.FromEdges(n, edges)
}

// Star returns the star graph: center 0 joined to leaves 1..n-1.
// Needs n ≥ 2.
func Star(n int) (*csr.Matrix, error) {
	if n < 2 {
		return nil, fmt.Errorf("Star: need n ≥ 2, got %d: %w", n, ErrTooFewNodes)
	}
	edges := make([][2]int, 0, n-1)
	for leaf := 1; leaf < n; leaf++ {
		edges = append(edges, [2]int{0, leaf})
	}
	return csr.FromEdges(n, edges)
}

// Wheel returns the wheel graph: hub 0 joined to every node of the rim
// cycle 1-2-...-(n-1)-1. Needs n ≥ 4.
func Wheel(n int) (*csr.Matrix, error) {
	if n < 4 {
		return nil, fmt.Errorf("Wheel: need n ≥ 4, got %d: %w", n, ErrTooFewNodes)
	}
	edges := make([][2]int, 0, 2*(n-1))
	for i := 1; i < n; i++ {
		edges = append(edges, [2]int{0, i})
	}
	for i := 1; i+1 < n; i++ {
		edges = append(edges, [2]int{i, i + 1})
	}
	edges = append(edges, [2]int{n - 1, 1})
	return csr.FromEdges(n, edges)
}

// Complete returns the complete graph on n nodes. Needs n ≥ 1; n = 1 is
// the single node with no edges.
func Complete(n int) (*csr.Matrix, error) {
	if n < 1 {
		return nil, fmt.Errorf("Complete: need n ≥ 1, got %d: %w", n, ErrTooFewNodes)
	}
	edges := make([][2]int, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}
	return csr.FromEdges(n, edges)
}

// CompleteBipartite returns the all-ones n1×n2 biadjacency joining every
// row node to every column node, shaped for HITS and other bipartite
// scorers. Needs n1, n2 ≥ 1.
func CompleteBipartite(n1, n2 int) (*csr.Matrix, error) {
	if n1 < 1 || n2 < 1 {
		return nil, fmt.Errorf("CompleteBipartite: need both sides non-empty, got %d×%d: %w",
			n1, n2, ErrTooFewNodes)
	}
	indptr := make([]int, n1+1)
	indices := make([]int, 0, n1*n2)
	for i := 1; i <= n1; i++ {
		indptr[i] = i * n2
		for j := 0; j < n2; j++ {
			indices = append(indices, j)
		}
	}
	return csr.New(n1, n2, indptr, indices, nil)
}
