// Package firstorder implements first-order link prediction: scoring the
// likelihood of an edge (i, j) from the immediate neighborhoods Γi and Γj
// of the two endpoints.
//
// # Metrics
//
// Nine classical similarity indices are provided, all driven by the degrees
// deg i = |Γi| and the intersection ⋂ = |Γi ∩ Γj|:
//
//	– CommonNeighbors          s(i,j) = ⋂
//	– Jaccard                  s(i,j) = ⋂ / (deg i + deg j − ⋂)
//	– Salton (cosine)          s(i,j) = ⋂ / √(deg i · deg j)
//	– Sorensen                 s(i,j) = 2⋂ / (deg i + deg j)
//	– HubPromoted              s(i,j) = ⋂ / min(deg i, deg j)
//	– HubDepressed             s(i,j) = ⋂ / max(deg i, deg j)
//	– AdamicAdar               s(i,j) = Σ_{z∈Γi∩Γj} 1/ln(deg z)
//	– ResourceAllocation       s(i,j) = Σ_{z∈Γi∩Γj} 1/deg z
//	– PreferentialAttachment   s(i,j) = deg i · deg j
//
// Numeric singularities never raise errors: a zero denominator, and any
// intersection member z with deg z ≤ 1 under AdamicAdar (deg z = 0 under
// ResourceAllocation), contribute score 0. Self-similarity s(i,i) falls out
// of the same formulas with no special case.
//
// # Usage
//
// Every metric shares one surface: fit an adjacency once, then query it in
// four shapes.
//
//	cn := firstorder.NewCommonNeighbors()
//	if err := cn.Fit(adjacency); err != nil { ... }
//	row, err := cn.PredictNode(0)                   // scores 0 → every node
//	grid, err := cn.PredictNodes([]int{0, 1})       // one row per query node
//	one, err := cn.PredictPair(firstorder.Pair{Source: 0, Target: 1})
//	some, err := cn.PredictPairs([]firstorder.Pair{{0, 1}, {1, 2}})
//
// Fit coerces its input through csr.FromMatrix and requires at least one
// node (csr.ErrEmptyGraph). Directed input keeps its orientation: Γi is
// the out-neighborhood of i. A rectangular biadjacency also fits: nodes
// are its rows and neighborhoods live in column space, so scores compare
// row nodes by the columns they share. AdamicAdar and ResourceAllocation
// read deg z from the row structure; a column with no row of its own
// counts as degree 0 there. The fitted view is
// immutable; a successful refit replaces it wholesale and a failed refit
// leaves it untouched. Query node IDs are validated against [0, n) before
// any scoring, so a batch with one bad ID produces no partial output.
// Queries never mutate the view, so concurrent reads after a fit are safe;
// fitting concurrently with queries on the same instance is not.
//
// # Complexity
//
//	– Fit:         cost of CSR coercion (O(1) for an existing *csr.Matrix)
//	– per pair:    O(deg i + deg j) sorted-merge intersection
//	– PredictNode: O(Σ_j (deg i + deg j)) = O(E + n·deg i)
//	– memory:      O(n) per predictor beyond the shared CSR view
package firstorder
