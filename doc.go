// Package linkpred predicts missing links and scores nodes on sparse
// graphs.
//
// Everything speaks one canonical representation, the compressed sparse
// row matrix, and the subpackages compose around it:
//
//	csr/        — CSR matrices: constructors from dense data, edge lists,
//	              gonum matrices and gonum graphs; implements mat.Matrix
//	firstorder/ — link prediction from direct neighborhoods: nine
//	              similarity metrics behind one fit/predict contract
//	ranking/    — PageRank, HITS and heat Diffusion with shared
//	              functional options
//	classify/   — semi-supervised node labeling on top of ranking
//	dataset/    — toy graphs (house, bow tie, karate club) and
//	              parametric generators
//
// Quick ASCII example:
//
//	    0
//	   / \
//	  1───4
//	  │   │
//	  2───3
//
//	the house graph; scoring the roof against every node takes three lines:
//
//	g := dataset.House()
//	jac := firstorder.NewJaccard()
//	scores, err := jac.FitPredictNode(g, 0)
//
// csr.FromGraph and csr.FromMatrix bridge from gonum types, so graphs
// built elsewhere drop straight in.
//
//	go get github.com/katalvlaran/linkpred
package linkpred
