package firstorder

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linkpred/csr"
)

// predictor is the dispatcher embedded by every metric: it owns the fitted
// CSR view, validates queries, and routes the four query shapes through the
// metric's kernel. The zero value is unfitted.
type predictor struct {
	g    *csr.Matrix
	kern kernel
	all  []int // 0..n-1, the target set of full-row queries, built at fit
}

// adjacencyCheck enforces the shared fit contract: at least one node.
// Rectangular input is a biadjacency; nodes are its rows, their
// neighborhoods live in column space.
func adjacencyCheck(g *csr.Matrix) error {
	if r, _ := g.Dims(); r == 0 {
		return csr.ErrEmptyGraph
	}

	return nil
}

// adopt installs a validated view; called only after adjacencyCheck passes.
func (p *predictor) adopt(g *csr.Matrix) {
	n, _ := g.Dims()
	p.g = g
	p.all = make([]int, n)
	for i := range p.all {
		p.all[i] = i
	}
}

// Fit coerces m into a CSR view and installs it. On any failure the
// previously fitted view, if one exists, stays in place.
func (p *predictor) Fit(m mat.Matrix) error {
	g, err := csr.FromMatrix(m)
	if err == nil {
		err = adjacencyCheck(g)
	}
	if err != nil {
		return fmt.Errorf("Fit: %w", err)
	}
	p.adopt(g)

	return nil
}

// FitGraph ingests a gonum graph and installs its adjacency, with the same
// replace-or-keep contract as Fit.
func (p *predictor) FitGraph(g graph.Graph) error {
	cm, err := csr.FromGraph(g)
	if err == nil {
		err = adjacencyCheck(cm)
	}
	if err != nil {
		return fmt.Errorf("FitGraph: %w", err)
	}
	p.adopt(cm)

	return nil
}

// Fitted reports whether the predictor holds a view.
func (p *predictor) Fitted() bool { return p.g != nil }

// NumNodes returns the node count of the fitted view, 0 before Fit.
func (p *predictor) NumNodes() int { return len(p.all) }

// Adjacency returns the fitted CSR view, nil before Fit. The view is shared,
// not copied; it is safe to hand to the ranking package or to a second
// metric's Fit.
func (p *predictor) Adjacency() *csr.Matrix { return p.g }

// checkNodes validates every query ID before any scoring happens, so a batch
// holding one bad ID yields no partial output.
func (p *predictor) checkNodes(ids ...int) error {
	n := len(p.all)
	for _, id := range ids {
		if id < 0 || id >= n {
			return fmt.Errorf("node %d outside [0, %d): %w", id, n, ErrNodeOutOfRange)
		}
	}

	return nil
}

// fittedView hands kernels the borrowed CSR arrays. A nil kernel marks a
// facade built without its constructor; it reads as unfitted rather than
// panicking on dispatch.
func (p *predictor) fittedView() (view, error) {
	if p.g == nil || p.kern == nil {
		return view{}, ErrNotFitted
	}
	indptr, indices := p.g.CompressedRows()

	return view{indptr: indptr, indices: indices}, nil
}

// PredictNode scores source against every node of the fitted graph.
func (p *predictor) PredictNode(source int) ([]float64, error) {
	v, err := p.fittedView()
	if err == nil {
		err = p.checkNodes(source)
	}
	if err != nil {
		return nil, fmt.Errorf("PredictNode: %w", err)
	}

	out := make([]float64, v.n())
	p.kern(v, source, p.all, out)

	return out, nil
}

// PredictNodes scores each query node against every node; row k of the
// result belongs to sources[k]. An empty query yields an empty matrix.
func (p *predictor) PredictNodes(sources []int) (*mat.Dense, error) {
	v, err := p.fittedView()
	if err == nil {
		err = p.checkNodes(sources...)
	}
	if err != nil {
		return nil, fmt.Errorf("PredictNodes: %w", err)
	}
	if len(sources) == 0 {
		return &mat.Dense{}, nil
	}

	out := mat.NewDense(len(sources), v.n(), nil)
	for k, source := range sources {
		p.kern(v, source, p.all, out.RawRowView(k))
	}

	return out, nil
}

// PredictPair scores one candidate link.
func (p *predictor) PredictPair(q Pair) (float64, error) {
	v, err := p.fittedView()
	if err == nil {
		err = p.checkNodes(q.Source, q.Target)
	}
	if err != nil {
		return 0, fmt.Errorf("PredictPair: %w", err)
	}

	var target [1]int
	var score [1]float64
	target[0] = q.Target
	p.kern(v, q.Source, target[:], score[:])

	return score[0], nil
}

// PredictPairs scores candidate links in query order.
func (p *predictor) PredictPairs(qs []Pair) ([]float64, error) {
	v, err := p.fittedView()
	if err != nil {
		return nil, fmt.Errorf("PredictPairs: %w", err)
	}
	for _, q := range qs {
		if err = p.checkNodes(q.Source, q.Target); err != nil {
			return nil, fmt.Errorf("PredictPairs: %w", err)
		}
	}

	out := make([]float64, len(qs))
	var target [1]int
	var score [1]float64
	for k, q := range qs {
		target[0] = q.Target
		p.kern(v, q.Source, target[:], score[:])
		out[k] = score[0]
	}

	return out, nil
}

// FitPredictNode is Fit followed by PredictNode.
func (p *predictor) FitPredictNode(m mat.Matrix, source int) ([]float64, error) {
	if err := p.Fit(m); err != nil {
		return nil, fmt.Errorf("FitPredictNode: %w", err)
	}

	return p.PredictNode(source)
}

// FitPredictNodes is Fit followed by PredictNodes.
func (p *predictor) FitPredictNodes(m mat.Matrix, sources []int) (*mat.Dense, error) {
	if err := p.Fit(m); err != nil {
		return nil, fmt.Errorf("FitPredictNodes: %w", err)
	}

	return p.PredictNodes(sources)
}

// FitPredictPair is Fit followed by PredictPair.
func (p *predictor) FitPredictPair(m mat.Matrix, q Pair) (float64, error) {
	if err := p.Fit(m); err != nil {
		return 0, fmt.Errorf("FitPredictPair: %w", err)
	}

	return p.PredictPair(q)
}

// FitPredictPairs is Fit followed by PredictPairs.
func (p *predictor) FitPredictPairs(m mat.Matrix, qs []Pair) ([]float64, error) {
	if err := p.Fit(m); err != nil {
		return nil, fmt.Errorf("FitPredictPairs: %w", err)
	}

	return p.PredictPairs(qs)
}
