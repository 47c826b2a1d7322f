// Package dataset ships small graphs for examples, tests and quick
// experiments, all as canonical csr matrices.
//
// # Fixed graphs
//
//	– House:      5 nodes, 6 edges; the walkthrough graph used across
//	  this module's examples
//	– BowTie:     two triangles sharing node 0
//	– KarateClub: Zachary's karate club (34 nodes, 78 edges) with
//	  KarateClubFactions as the ground-truth split
//
// # Generators
//
// Path, Cycle, Star, Wheel, Complete and CompleteBipartite build the
// usual parametric families. Sizes below each family's minimum are
// rejected with ErrTooFewNodes. CompleteBipartite returns a rectangular
// biadjacency; every other generator returns a symmetric adjacency.
//
// All outputs are deterministic: the same call always yields the same
// CSR arrays.
package dataset
