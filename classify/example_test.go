package classify_test

import (
	"fmt"

	"github.com/katalvlaran/linkpred/classify"
	"github.com/katalvlaran/linkpred/dataset"
)

// ExampleNewPageRankClassifier labels the karate club from its two
// leaders and reads off members deep inside each camp.
func ExampleNewPageRankClassifier() {
	clf := classify.NewPageRankClassifier()
	if err := clf.Fit(dataset.KarateClub(), map[int]int{0: 0, 33: 1}); err != nil {
		fmt.Println("fit:", err)
		return
	}
	labels, err := clf.Labels()
	if err != nil {
		fmt.Println("labels:", err)
		return
	}
	fmt.Println("member 1:", labels[1])
	fmt.Println("member 32:", labels[32])
	// Output:
	// member 1: 0
	// member 32: 1
}
