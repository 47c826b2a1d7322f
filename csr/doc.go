// Package csr implements a compressed sparse row (CSR) matrix, the canonical
// graph representation shared by every algorithm in this library.
//
// # Layout
//
// A Matrix with r rows and c columns stores its nonzero entries in three
// parallel arrays:
//
//	– indptr  : r+1 offsets; row i occupies positions [indptr[i], indptr[i+1])
//	– indices : concatenated column indices, sorted ascending within each row
//	– data    : the entry values, aligned with indices (1.0 for unweighted input)
//
// For a graph adjacency, row i lists the out-neighbors of node i and the
// structural degree of i is indptr[i+1]-indptr[i]. The representation is
// built once by a constructor and never mutated afterwards; accessors hand
// out borrowed slices that callers must treat as read-only.
//
// # Constructors
//
//	– New              adopt raw CSR arrays after full validation
//	– FromDense        coerce a dense [][]float64 table (nonzeros become edges)
//	– FromMatrix       coerce any gonum mat.Matrix (*Matrix passes through)
//	– FromEdges        build an undirected simple graph from an edge list
//	– FromGraph        ingest a gonum graph.Graph with dense 0..n-1 node IDs
//
// Every constructor leaves the matrix in canonical form: indptr monotone with
// indptr[0]=0, row segments sorted, all column indices inside [0, cols), no
// duplicate entries within a row.
//
// # gonum interoperability
//
// Matrix satisfies gonum's mat.Matrix (Dims, At, T), so a fitted view can be
// passed anywhere gonum expects a matrix. Index accessors (At, Row, RowData,
// Degree) follow the gonum access contract and panic on out-of-range indices;
// constructors and everything above this package return errors instead.
//
// # Complexity
//
//	– construction: O(r·c) dense scan or O(nnz log deg) canonical sort
//	– At(i, j):     O(log deg(i)) binary search of row i
//	– Row, Degree:  O(1)
//	– Transpose:    O(nnz + r + c) counting sort
package csr
