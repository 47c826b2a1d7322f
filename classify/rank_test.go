package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/linkpred/classify"
	"github.com/katalvlaran/linkpred/csr"
	"github.com/katalvlaran/linkpred/dataset"
	"github.com/katalvlaran/linkpred/ranking"
)

// TestRankClassifier_KarateFactions: two seeds, one per leader, recover
// the documented split almost entirely.
func TestRankClassifier_KarateFactions(t *testing.T) {
	clf := classify.NewPageRankClassifier()
	require.NoError(t, clf.Fit(dataset.KarateClub(), map[int]int{0: 0, 33: 1}),
		"fitting the karate club must succeed")

	labels, err := clf.Labels()
	require.NoError(t, err, "labels must be available after fit")
	require.Len(t, labels, 34, "one label per member")
	assert.Equal(t, []int{0, 1}, clf.Classes(), "two factions, ascending")

	assert.Equal(t, 0, labels[0], "the instructor stays in their own faction")
	assert.Equal(t, 1, labels[33], "the president stays in their own faction")

	truth := dataset.KarateClubFactions()
	agree := 0
	for i := range labels {
		if labels[i] == truth[i] {
			agree++
		}
	}
	assert.GreaterOrEqual(t, agree, 28, "two seeds must recover most of the split, got %d/34", agree)
}

// TestRankClassifier_DiffusionOnHouse: a short diffusion keeps the
// transient, so nodes adjacent to a seed take that seed's label. Node 0
// sits exactly between the seeds and is left out of the check.
func TestRankClassifier_DiffusionOnHouse(t *testing.T) {
	clf := classify.NewDiffusionClassifier(ranking.WithMaxIter(3))
	require.NoError(t, clf.Fit(dataset.House(), map[int]int{1: 0, 4: 1}),
		"fitting the house must succeed")

	labels, err := clf.Labels()
	require.NoError(t, err, "labels must be available after fit")

	assert.Equal(t, 0, labels[1], "a seed keeps its own label")
	assert.Equal(t, 0, labels[2], "node 2 touches seed 1 only")
	assert.Equal(t, 1, labels[3], "node 3 touches seed 4 only")
	assert.Equal(t, 1, labels[4], "a seed keeps its own label")
}

// TestRankClassifier_CustomScorer: an indicator scorer exercises the
// plug-in path, non-contiguous label values, zero-row membership and the
// lowest-label tie rule in one sweep.
func TestRankClassifier_CustomScorer(t *testing.T) {
	indicator := func(g *csr.Matrix, seeds map[int]float64) ([]float64, error) {
		n, _ := g.Dims()
		out := make([]float64, n)
		for id, w := range seeds {
			out[id] = w
		}
		return out, nil
	}

	clf := classify.NewRankClassifier(indicator)
	require.NoError(t, clf.Fit(dataset.House(), map[int]int{1: 0, 4: 7}),
		"fitting with a custom scorer must succeed")
	assert.Equal(t, []int{0, 7}, clf.Classes(), "label values pass through unchanged")

	labels, err := clf.Labels()
	require.NoError(t, err, "labels must be available after fit")
	assert.Equal(t, []int{0, 0, 0, 0, 7}, labels,
		"seeds keep their labels; untouched nodes tie down to the lowest label")

	m, err := clf.Membership()
	require.NoError(t, err, "membership must be available after fit")
	r, c := m.Dims()
	require.Equal(t, 5, r, "one membership row per node")
	require.Equal(t, 2, c, "one membership column per label")
	assert.Equal(t, []float64{1, 0}, m.RawRowView(1), "seed 1 belongs fully to label 0")
	assert.Equal(t, []float64{0, 1}, m.RawRowView(4), "seed 4 belongs fully to label 7")
	for _, i := range []int{0, 2, 3} {
		assert.Equal(t, []float64{0, 0}, m.RawRowView(i),
			"row %d was never reached and must stay zero", i)
	}
}

// TestRankClassifier_MembershipRows: with a PageRank scorer every pass
// reaches every node, so each membership row is a distribution.
func TestRankClassifier_MembershipRows(t *testing.T) {
	clf := classify.NewPageRankClassifier()
	require.NoError(t, clf.Fit(dataset.BowTie(), map[int]int{1: 0, 3: 1}),
		"fitting the bow tie must succeed")

	m, err := clf.Membership()
	require.NoError(t, err, "membership must be available after fit")
	r, c := m.Dims()
	require.Equal(t, 5, r, "one row per node")
	require.Equal(t, 2, c, "one column per label")

	for i := 0; i < r; i++ {
		row := m.RawRowView(i)
		assert.InDelta(t, 1.0, floats.Sum(row), 1e-12, "membership row %d must sum to 1", i)
		for j, v := range row {
			assert.GreaterOrEqual(t, v, 0.0, "membership (%d,%d) must be non-negative", i, j)
		}
	}
}

// TestRankClassifier_Errors walks the failure surface: missing scorer,
// missing graph, missing or out-of-range labels, queries before fit.
func TestRankClassifier_Errors(t *testing.T) {
	house := dataset.House()
	someLabels := map[int]int{0: 0, 3: 1}

	var zero classify.RankClassifier
	assert.ErrorIs(t, zero.Fit(house, someLabels), classify.ErrNilScorer,
		"the zero value has no scorer")
	assert.ErrorIs(t, classify.NewRankClassifier(nil).Fit(house, someLabels),
		classify.ErrNilScorer, "an explicit nil scorer is rejected")

	clf := classify.NewPageRankClassifier()
	assert.ErrorIs(t, clf.Fit(nil, someLabels), csr.ErrNilMatrix, "nil graph is rejected")
	assert.ErrorIs(t, clf.Fit(house, nil), classify.ErrNoLabels, "empty label map is rejected")
	assert.ErrorIs(t, clf.Fit(house, map[int]int{9: 0}), classify.ErrLabelRange,
		"labels must name nodes of the graph")

	_, err := clf.Labels()
	assert.ErrorIs(t, err, classify.ErrNotFitted, "no labels before a successful fit")
	_, err = clf.Membership()
	assert.ErrorIs(t, err, classify.ErrNotFitted, "no membership before a successful fit")
	assert.Nil(t, clf.Classes(), "no classes before a successful fit")
	assert.False(t, clf.Fitted(), "nothing fitted yet")
}

// TestRankClassifier_FailedFitKeepsPrevious: a scorer failure on refit
// leaves the earlier model answering.
func TestRankClassifier_FailedFitKeepsPrevious(t *testing.T) {
	clf := classify.NewPageRankClassifier()
	require.NoError(t, clf.Fit(dataset.House(), map[int]int{1: 0, 4: 1}),
		"first fit must succeed")

	rect, err := csr.New(2, 3, []int{0, 0, 0}, nil, nil)
	require.NoError(t, err, "rectangular fixture must build")
	assert.ErrorIs(t, clf.Fit(rect, map[int]int{0: 0, 1: 1}), csr.ErrNotSquare,
		"the scorer's rejection must surface from Fit")

	labels, err := clf.Labels()
	require.NoError(t, err, "the previous fit must survive the failed one")
	assert.Len(t, labels, 5, "labels still describe the house")
	assert.True(t, clf.Fitted(), "classifier stays fitted")
}
