package ranking_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/linkpred/csr"
	"github.com/katalvlaran/linkpred/ranking"
)

// TestHITS_SymmetricCollapses: on an undirected graph hubs and authorities
// are the same principal eigenvector, L2-normalized.
func TestHITS_SymmetricCollapses(t *testing.T) {
	g, err := csr.FromEdges(5, [][2]int{{0, 1}, {0, 4}, {1, 2}, {1, 4}, {2, 3}, {3, 4}})
	require.NoError(t, err, "house fixture must build")

	res, err := ranking.HITS(g)
	require.NoError(t, err, "HITS on the house must succeed")
	require.Len(t, res.Hubs, 5, "one hub score per node")
	require.Len(t, res.Authorities, 5, "one authority score per node")

	assert.InDeltaSlice(t, res.Hubs, res.Authorities, 1e-4,
		"a symmetric adjacency must give matching hub and authority scores")
	assert.InDelta(t, 1.0, floats.Norm(res.Hubs, 2), 1e-9, "hub vector must have unit length")
	for i, s := range res.Hubs {
		assert.GreaterOrEqual(t, s, 0.0, "hub score of node %d must be non-negative", i)
	}
}

// TestHITS_CompleteBipartiteExact: the all-ones 2x3 biadjacency converges in
// one sweep to uniform unit vectors on each side.
func TestHITS_CompleteBipartiteExact(t *testing.T) {
	g, err := csr.New(2, 3, []int{0, 3, 6}, []int{0, 1, 2, 0, 1, 2}, nil)
	require.NoError(t, err, "biadjacency fixture must build")

	res, err := ranking.HITS(g)
	require.NoError(t, err, "HITS on a biadjacency must succeed")
	require.Len(t, res.Hubs, 2, "hubs follow the row count")
	require.Len(t, res.Authorities, 3, "authorities follow the column count")

	h := 1 / math.Sqrt(2)
	a := 1 / math.Sqrt(3)
	assert.InDeltaSlice(t, []float64{h, h}, res.Hubs, 1e-12, "row side must be uniform")
	assert.InDeltaSlice(t, []float64{a, a, a}, res.Authorities, 1e-12, "column side must be uniform")
}

// TestHITS_DirectedChain: on 0→1→2 the sink is no hub and the source is no
// authority; the fixed point is reached exactly.
func TestHITS_DirectedChain(t *testing.T) {
	g, err := csr.New(3, 3, []int{0, 1, 2, 2}, []int{1, 2}, nil)
	require.NoError(t, err, "chain fixture must build")

	res, err := ranking.HITS(g)
	require.NoError(t, err, "HITS on a chain must succeed")

	v := 1 / math.Sqrt(2)
	assert.InDeltaSlice(t, []float64{v, v, 0}, res.Hubs, 1e-12,
		"the sink has no out-edges and earns no hub score")
	assert.InDeltaSlice(t, []float64{0, v, v}, res.Authorities, 1e-12,
		"the source has no in-edges and earns no authority score")
}

// TestHITS_EdgelessAllZero: with nothing to reinforce, both vectors are zero.
func TestHITS_EdgelessAllZero(t *testing.T) {
	g, err := csr.New(3, 3, []int{0, 0, 0, 0}, nil, nil)
	require.NoError(t, err, "edgeless fixture must build")

	res, err := ranking.HITS(g)
	require.NoError(t, err, "HITS on an edgeless graph must succeed")
	assert.Equal(t, []float64{0, 0, 0}, res.Hubs, "no edges, no hubs")
	assert.Equal(t, []float64{0, 0, 0}, res.Authorities, "no edges, no authorities")
}

// TestHITS_Errors: graph and option rejection.
func TestHITS_Errors(t *testing.T) {
	_, err := ranking.HITS(nil)
	assert.ErrorIs(t, err, csr.ErrNilMatrix, "nil graph must be rejected")

	empty, err := csr.New(0, 0, []int{0}, nil, nil)
	require.NoError(t, err, "empty fixture must build")
	_, err = ranking.HITS(empty)
	assert.ErrorIs(t, err, csr.ErrEmptyGraph, "empty input must be rejected")

	g, err := csr.New(2, 3, []int{0, 1, 2}, []int{0, 2}, nil)
	require.NoError(t, err, "rectangular fixture must build")
	_, err = ranking.HITS(g, ranking.WithTol(-1))
	assert.ErrorIs(t, err, ranking.ErrTolRange, "bad tolerance must surface its sentinel")
	_, err = ranking.HITS(g, ranking.WithMaxIter(0))
	assert.ErrorIs(t, err, ranking.ErrMaxIterRange, "bad sweep cap must surface its sentinel")

	_, err = ranking.HITS(g)
	assert.NoError(t, err, "rectangular input is a valid biadjacency")
}
