// Package classify infers node labels from a handful of labeled seeds.
//
// RankClassifier is semi-supervised: it runs one seeded scoring pass per
// distinct label, with that label's nodes as seeds, then assigns every
// node the label whose pass scored it highest. Any Scorer works;
// NewPageRankClassifier and NewDiffusionClassifier bind the two scorers
// from the ranking package.
//
//	clf := classify.NewPageRankClassifier()
//	if err := clf.Fit(g, map[int]int{0: 0, 33: 1}); err != nil {
//	    return err
//	}
//	labels, _ := clf.Labels()
//
// Ties, including nodes no pass reaches, resolve to the lowest label.
// Membership exposes the per-label scores row-normalized to sum to 1;
// rows nothing reached stay zero.
//
// Complexity: one scorer run per distinct label over the same graph,
// plus O(n·L) for the score table.
package classify
