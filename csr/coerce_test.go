package csr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linkpred/csr"
)

// TestFromDense_Basic verifies that nonzeros become stored entries and
// explicit zeros are dropped.
func TestFromDense_Basic(t *testing.T) {
	m, err := csr.FromDense([][]float64{
		{0, 2, 0},
		{1, 0, 3},
	})
	require.NoError(t, err)

	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 3, m.NNZ(), "three nonzeros stored")
	assert.Equal(t, 2.0, m.At(0, 1))
	assert.Equal(t, 0.0, m.At(0, 0), "explicit zero is not an edge")
	assert.Equal(t, []int{0, 2}, m.Row(1))
}

// TestFromDense_Ragged verifies the coercion failure for uneven rows.
func TestFromDense_Ragged(t *testing.T) {
	_, err := csr.FromDense([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, csr.ErrDimensionMismatch, "ragged input is not coercible")
}

// TestFromDense_Nil verifies the nil-input sentinel.
func TestFromDense_Nil(t *testing.T) {
	_, err := csr.FromDense(nil)
	assert.ErrorIs(t, err, csr.ErrNilMatrix)
}

// TestFromMatrix_Passthrough verifies the identity fast path: a *Matrix
// input is returned as the very same view, not copied.
func TestFromMatrix_Passthrough(t *testing.T) {
	m, err := csr.FromEdges(3, [][2]int{{0, 1}, {1, 2}})
	require.NoError(t, err)

	got, err := csr.FromMatrix(m)
	require.NoError(t, err)
	assert.Same(t, m, got, "already-coerced views pass through")
}

// TestFromMatrix_Dense verifies coercion of a gonum dense matrix.
func TestFromMatrix_Dense(t *testing.T) {
	d := mat.NewDense(2, 2, []float64{0, 1.5, 2.5, 0})

	m, err := csr.FromMatrix(d)
	require.NoError(t, err)
	assert.Equal(t, 2, m.NNZ())
	assert.Equal(t, 1.5, m.At(0, 1))
	assert.Equal(t, 2.5, m.At(1, 0))
}

// TestFromMatrix_Nil verifies both nil forms are rejected.
func TestFromMatrix_Nil(t *testing.T) {
	_, err := csr.FromMatrix(nil)
	assert.ErrorIs(t, err, csr.ErrNilMatrix, "untyped nil")

	_, err = csr.FromMatrix((*csr.Matrix)(nil))
	assert.ErrorIs(t, err, csr.ErrNilMatrix, "typed nil view")
}

// TestFromEdges_MirrorsAndDedupes verifies undirected mirroring, duplicate
// collapsing, and the single-entry self-loop policy.
func TestFromEdges_MirrorsAndDedupes(t *testing.T) {
	m, err := csr.FromEdges(4, [][2]int{
		{0, 1}, {1, 0}, {0, 1}, // one edge, listed three ways
		{1, 2},
		{3, 3}, // self-loop
	})
	require.NoError(t, err)

	assert.Equal(t, []int{1}, m.Row(0), "duplicates collapse")
	assert.Equal(t, []int{0, 2}, m.Row(1), "mirror entry present")
	assert.Equal(t, []int{3}, m.Row(3), "self-loop stores one diagonal entry")
	assert.Equal(t, 1.0, m.At(3, 3))
	assert.Equal(t, 1, m.Degree(3), "self-loop counts once")
}

// TestFromEdges_OutOfRange verifies endpoint validation.
func TestFromEdges_OutOfRange(t *testing.T) {
	_, err := csr.FromEdges(2, [][2]int{{0, 2}})
	assert.ErrorIs(t, err, csr.ErrIndexOutOfRange)

	_, err = csr.FromEdges(2, [][2]int{{-1, 0}})
	assert.ErrorIs(t, err, csr.ErrIndexOutOfRange)
}

// TestFromEdges_EmptyGraph verifies that zero nodes and zero edges build the
// canonical empty adjacency.
func TestFromEdges_EmptyGraph(t *testing.T) {
	m, err := csr.FromEdges(0, nil)
	require.NoError(t, err)
	r, c := m.Dims()
	assert.Zero(t, r)
	assert.Zero(t, c)
}

// TestFromGraph_Undirected verifies ingestion of a gonum simple graph:
// both orientations of every edge appear.
func TestFromGraph_Undirected(t *testing.T) {
	g := simple.NewUndirectedGraph()
	g.SetEdge(simple.Edge{F: simple.Node(0), T: simple.Node(1)})
	g.SetEdge(simple.Edge{F: simple.Node(1), T: simple.Node(2)})

	m, err := csr.FromGraph(g)
	require.NoError(t, err)

	r, c := m.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, []int{0, 2}, m.Row(1), "undirected edges mirror")
	assert.Equal(t, 1.0, m.At(0, 1), "unweighted graphs carry weight 1")
	assert.Equal(t, m.At(0, 1), m.At(1, 0), "symmetry")
}

// TestFromGraph_Directed verifies orientation is preserved.
func TestFromGraph_Directed(t *testing.T) {
	g := simple.NewDirectedGraph()
	g.SetEdge(simple.Edge{F: simple.Node(0), T: simple.Node(1)})

	m, err := csr.FromGraph(g)
	require.NoError(t, err)
	assert.Equal(t, 1.0, m.At(0, 1), "forward arc stored")
	assert.Equal(t, 0.0, m.At(1, 0), "no reverse arc")
}

// TestFromGraph_Weighted verifies weights flow through graph.Weighted.
func TestFromGraph_Weighted(t *testing.T) {
	g := simple.NewWeightedUndirectedGraph(0, 0)
	g.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(0), T: simple.Node(1), W: 2.5})

	m, err := csr.FromGraph(g)
	require.NoError(t, err)
	assert.Equal(t, 2.5, m.At(0, 1))
	assert.Equal(t, 2.5, m.At(1, 0))
}

// TestFromGraph_SparseIDs verifies the dense 0..n-1 ID requirement.
func TestFromGraph_SparseIDs(t *testing.T) {
	g := simple.NewUndirectedGraph()
	g.AddNode(simple.Node(5))

	_, err := csr.FromGraph(g)
	assert.ErrorIs(t, err, csr.ErrIndexOutOfRange, "node ID 5 in a 1-node graph is not dense")
}

// TestFromGraph_Nil verifies the nil-graph sentinel.
func TestFromGraph_Nil(t *testing.T) {
	_, err := csr.FromGraph(nil)
	assert.ErrorIs(t, err, csr.ErrNilMatrix)
}
