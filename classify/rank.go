package classify

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linkpred/csr"
	"github.com/katalvlaran/linkpred/ranking"
)

// RankClassifier assigns labels by seeded scoring: one pass per distinct
// label, argmax across passes. Build it with a constructor; the zero
// value has no scorer and refuses to fit.
type RankClassifier struct {
	score   Scorer
	classes []int
	scores  *mat.Dense
	n       int
}

// NewRankClassifier wraps an arbitrary Scorer.
func NewRankClassifier(score Scorer) *RankClassifier {
	return &RankClassifier{score: score}
}

// NewPageRankClassifier scores each label's pass with personalized
// PageRank. The classifier supplies the seeds; a WithSeeds among opts is
// overridden pass by pass.
func NewPageRankClassifier(opts ...ranking.Option) *RankClassifier {
	return NewRankClassifier(func(g *csr.Matrix, seeds map[int]float64) ([]float64, error) {
		return ranking.PageRank(g, withSeedsLast(opts, seeds)...)
	})
}

// NewDiffusionClassifier scores each label's pass with heat diffusion
// from that label's nodes.
func NewDiffusionClassifier(opts ...ranking.Option) *RankClassifier {
	return NewRankClassifier(func(g *csr.Matrix, seeds map[int]float64) ([]float64, error) {
		return ranking.Diffusion(g, withSeedsLast(opts, seeds)...)
	})
}

// withSeedsLast appends the pass seeds after the caller's options without
// touching the caller's slice.
func withSeedsLast(opts []ranking.Option, seeds map[int]float64) []ranking.Option {
	all := make([]ranking.Option, len(opts)+1)
	copy(all, opts)
	all[len(opts)] = ranking.WithSeeds(seeds)
	return all
}

// Fit runs one scoring pass per distinct label in labels (node → label)
// and stores the n×L score table. A failed fit leaves any previous fit
// intact.
//
// Errors: ErrNilScorer, csr.ErrNilMatrix, ErrNoLabels, ErrLabelRange,
// plus whatever the scorer reports for its pass.
func (c *RankClassifier) Fit(g *csr.Matrix, labels map[int]int) error {
	if c.score == nil {
		return fmt.Errorf("Fit: %w", ErrNilScorer)
	}
	if g == nil {
		return fmt.Errorf("Fit: %w", csr.ErrNilMatrix)
	}
	if len(labels) == 0 {
		return fmt.Errorf("Fit: %w", ErrNoLabels)
	}
	n, _ := g.Dims()

	// Group the seed nodes of each label.
	groups := make(map[int]map[int]float64)
	for node, label := range labels {
		if node < 0 || node >= n {
			return fmt.Errorf("Fit: node %d outside [0, %d): %w", node, n, ErrLabelRange)
		}
		if groups[label] == nil {
			groups[label] = make(map[int]float64)
		}
		groups[label][node] = 1
	}
	classes := make([]int, 0, len(groups))
	for label := range groups {
		classes = append(classes, label)
	}
	sort.Ints(classes)

	scores := mat.NewDense(n, len(classes), nil)
	for col, label := range classes {
		vec, err := c.score(g, groups[label])
		if err != nil {
			return fmt.Errorf("Fit: label %d: %w", label, err)
		}
		if len(vec) != n {
			return fmt.Errorf("Fit: label %d: scorer returned %d scores for %d nodes", label, len(vec), n)
		}
		scores.SetCol(col, vec)
	}

	c.classes = classes
	c.scores = scores
	c.n = n
	return nil
}

// Fitted reports whether a Fit has succeeded.
func (c *RankClassifier) Fitted() bool { return c.scores != nil }

// Labels returns the predicted label per node: the label whose pass
// scored the node highest. Ties, including all-zero rows, take the
// lowest label.
func (c *RankClassifier) Labels() ([]int, error) {
	if c.scores == nil {
		return nil, fmt.Errorf("Labels: %w", ErrNotFitted)
	}
	out := make([]int, c.n)
	for i := 0; i < c.n; i++ {
		out[i] = c.classes[floats.MaxIdx(c.scores.RawRowView(i))]
	}
	return out, nil
}

// Membership returns the n×L table of per-label scores with each row
// normalized to sum to 1. Rows no pass reached stay zero. Columns follow
// Classes order. The caller owns the returned matrix.
func (c *RankClassifier) Membership() (*mat.Dense, error) {
	if c.scores == nil {
		return nil, fmt.Errorf("Membership: %w", ErrNotFitted)
	}
	r, l := c.scores.Dims()
	m := mat.NewDense(r, l, nil)
	for i := 0; i < r; i++ {
		row := m.RawRowView(i)
		copy(row, c.scores.RawRowView(i))
		if total := floats.Sum(row); total > 0 {
			floats.Scale(1/total, row)
		}
	}
	return m, nil
}

// Classes returns the distinct labels seen at Fit, ascending; nil before
// a successful Fit.
func (c *RankClassifier) Classes() []int {
	if c.classes == nil {
		return nil
	}
	out := make([]int, len(c.classes))
	copy(out, c.classes)
	return out
}
