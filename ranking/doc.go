// Package ranking scores the nodes of a sparse graph by structural
// importance.
//
// Three scorers are provided, all driven by power iteration over a
// csr.Matrix adjacency:
//
//	– PageRank:  stationary distribution of a damped random walk with
//	  restarts, personalized through seed weights
//	– HITS:      mutually reinforcing hub and authority scores; accepts
//	  rectangular (biadjacency) input
//	– Diffusion: heat propagation from seed nodes held at fixed
//	  temperatures (Dirichlet boundary conditions)
//
// # Options
//
// All scorers share one functional-option set resolved against
// DefaultOptions:
//
//	– WithDamping: probability of following an edge in PageRank (default 0.85)
//	– WithTol:     convergence threshold on the iteration delta (default 1e-6)
//	– WithMaxIter: iteration cap (default 100)
//	– WithSeeds:   seed weights; personalization for PageRank, boundary
//	  temperatures for Diffusion
//
// HITS ignores seeds, and only PageRank reads the damping factor.
// Malformed options are recorded when applied and surfaced as wrapped
// sentinel errors by the scorer call, so Option values themselves never
// need error handling.
//
// # Conventions
//
// Edge weights are taken as non-negative transition affinities; rows are
// normalized by their out-weight on the fly. PageRank redistributes the
// mass of dangling rows through the restart distribution and returns a
// vector that sums to 1. Diffusion leaves dangling rows at their current
// temperature. An edgeless graph yields all-zero HITS scores.
//
// # Complexity
//
// Each sweep touches every stored edge once: O(nnz + n) time per
// iteration and O(n) extra space, for at most MaxIter sweeps.
package ranking
