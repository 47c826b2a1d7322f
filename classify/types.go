package classify

import (
	"errors"

	"github.com/katalvlaran/linkpred/csr"
)

var (
	// ErrNilScorer indicates a classifier built without a scoring
	// function.
	ErrNilScorer = errors.New("classify: nil scorer")

	// ErrNoLabels indicates a Fit call with an empty label map.
	ErrNoLabels = errors.New("classify: no labeled nodes")

	// ErrLabelRange indicates a labeled node outside the graph.
	ErrLabelRange = errors.New("classify: labeled node out of range")

	// ErrNotFitted indicates a query before a successful Fit.
	ErrNotFitted = errors.New("classify: classifier not fitted")
)

// Scorer turns a graph and a seed set into one score per node. The
// ranking package provides ready-made scorers; any function with this
// shape plugs in.
type Scorer func(g *csr.Matrix, seeds map[int]float64) ([]float64, error)
