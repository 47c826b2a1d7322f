// Package firstorder: sentinel errors, the query types, and the shared
// Predictor surface.
package firstorder

import (
	"errors"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for the prediction surface. Fit failures surface the csr
// package sentinels (csr.ErrNilMatrix, csr.ErrEmptyGraph, ...) instead.
var (
	// ErrNotFitted is returned by every predict method called before a
	// successful Fit.
	ErrNotFitted = errors.New("firstorder: predictor not fitted")

	// ErrNodeOutOfRange is returned when a query names a node outside
	// [0, n); the wrapping message carries the first offending ID.
	ErrNodeOutOfRange = errors.New("firstorder: node index out of range")
)

// Pair names one candidate link from Source to Target.
type Pair struct {
	Source int
	Target int
}

// Predictor is the surface shared by all nine first-order metrics.
// Fit must succeed before any predict call; the four predict shapes agree
// with each other entry for entry (PredictNode(i)[j] == PredictPair(i,j)).
type Predictor interface {
	// Fit builds the immutable CSR view from any gonum matrix.
	Fit(m mat.Matrix) error
	// FitGraph builds the view from a gonum graph with dense 0..n-1 IDs.
	FitGraph(g graph.Graph) error

	// PredictNode scores source against every node, returning n scores.
	PredictNode(source int) ([]float64, error)
	// PredictNodes scores each query node against every node, one row each.
	PredictNodes(sources []int) (*mat.Dense, error)
	// PredictPair scores a single candidate link.
	PredictPair(q Pair) (float64, error)
	// PredictPairs scores candidate links in query order.
	PredictPairs(qs []Pair) ([]float64, error)

	// FitPredictNode is Fit followed by PredictNode.
	FitPredictNode(m mat.Matrix, source int) ([]float64, error)
	// FitPredictNodes is Fit followed by PredictNodes.
	FitPredictNodes(m mat.Matrix, sources []int) (*mat.Dense, error)
	// FitPredictPair is Fit followed by PredictPair.
	FitPredictPair(m mat.Matrix, q Pair) (float64, error)
	// FitPredictPairs is Fit followed by PredictPairs.
	FitPredictPairs(m mat.Matrix, qs []Pair) ([]float64, error)

	// Fitted reports whether a view is held.
	Fitted() bool
	// NumNodes returns n for the fitted view, 0 before Fit.
	NumNodes() int
}
