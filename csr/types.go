// Package csr: sentinel errors and the Matrix type definition.
package csr

import "errors"

// Sentinel errors shared by the csr constructors and by higher-level packages
// that consume CSR views (firstorder, ranking, classify).
var (
	// ErrNilMatrix is returned when a constructor receives a nil input.
	ErrNilMatrix = errors.New("csr: nil matrix")

	// ErrDimensionMismatch is returned for negative dimensions, ragged dense
	// rows, or array lengths that disagree with the declared shape.
	ErrDimensionMismatch = errors.New("csr: dimension mismatch")

	// ErrBadIndptr is returned when the index pointer array is not monotone,
	// does not start at zero, or does not end at len(indices).
	ErrBadIndptr = errors.New("csr: malformed index pointer")

	// ErrIndexOutOfRange is returned when a column index or node ID falls
	// outside the valid range. Index accessors panic with this value instead,
	// matching the gonum access contract.
	ErrIndexOutOfRange = errors.New("csr: index out of range")

	// ErrDuplicateIndex is returned when one row carries the same column
	// index twice; canonical CSR stores at most one entry per coordinate.
	ErrDuplicateIndex = errors.New("csr: duplicate column index")

	// ErrNotSquare is returned by consumers that require a square adjacency
	// (PageRank, Diffusion) when handed a rectangular matrix.
	ErrNotSquare = errors.New("csr: matrix is not square")

	// ErrEmptyGraph is returned by consumers that require at least one node.
	ErrEmptyGraph = errors.New("csr: graph has no nodes")
)

// Matrix is an immutable compressed sparse row matrix.
//
// Row i occupies indices[indptr[i]:indptr[i+1]] (sorted ascending) with
// values data[indptr[i]:indptr[i+1]]. The zero value is an empty 0×0 matrix;
// use a constructor to build anything else.
type Matrix struct {
	rows, cols int
	indptr     []int
	indices    []int
	data       []float64
}
