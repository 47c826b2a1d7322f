package dataset

import (
	"github.com/katalvlaran/linkpred/csr"
)

// mustFromEdges builds the fixed graphs; their constant edge lists never
// fail validation.
func mustFromEdges(n int, edges [][2]int) *csr.Matrix {
	g, err := csr.FromEdges(n, edges)
	if err != nil {
		panic(err)
	}
	return g
}

// House returns the 5-node house graph: the square 1-2-3-4 under the
// roof node 0.
//
//	  0
//	 / \
//	1---4       edges {0-1, 0-4, 1-2, 1-4, 2-3, 3-4}
//	|   |       degrees [2, 3, 2, 2, 3]
//	2---3
func House() *csr.Matrix {
	return mustFromEdges(5, [][2]int{{0, 1}, {0, 4}, {1, 2}, {1, 4}, {2, 3}, {3, 4}})
}

// BowTie returns the 5-node bow tie: triangles 0-1-2 and 0-3-4 joined at
// node 0.
func BowTie() *csr.Matrix {
	return mustFromEdges(5, [][2]int{{0, 1}, {0, 2}, {1, 2}, {0, 3}, {0, 4}, {3, 4}})
}

// karateEdges is Zachary's observed friendship list, 0-indexed.
var karateEdges = [][2]int{
	{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5}, {0, 6}, {0, 7}, {0, 8},
	{0, 10}, {0, 11}, {0, 12}, {0, 13}, {0, 17}, {0, 19}, {0, 21}, {0, 31},
	{1, 2}, {1, 3}, {1, 7}, {1, 13}, {1, 17}, {1, 19}, {1, 21}, {1, 30},
	{2, 3}, {2, 7}, {2, 8}, {2, 9}, {2, 13}, {2, 27}, {2, 28}, {2, 32},
	{3, 7}, {3, 12}, {3, 13},
	{4, 6}, {4, 10},
	{5, 6}, {5, 10}, {5, 16},
	{6, 16},
	{8, 30}, {8, 32}, {8, 33},
	{9, 33},
	{13, 33},
	{14, 32}, {14, 33},
	{15, 32}, {15, 33},
	{18, 32}, {18, 33},
	{19, 33},
	{20, 32}, {20, 33},
	{22, 32}, {22, 33},
	{23, 25}, {23, 27}, {23, 29}, {23, 32}, {23, 33},
	{24, 25}, {24, 27}, {24, 31},
	{25, 31},
	{26, 29}, {26, 33},
	{27, 33},
	{28, 31}, {28, 33},
	{29, 32}, {29, 33},
	{30, 32}, {30, 33},
	{31, 32}, {31, 33},
	{32, 33},
}

// KarateClub returns Zachary's karate club: 34 members, 78 friendships,
// recorded shortly before the club split into two factions.
func KarateClub() *csr.Matrix {
	return mustFromEdges(34, karateEdges)
}

// KarateClubFactions returns the side each member took in the split:
// 0 for the instructor's faction (around node 0), 1 for the president's
// (around node 33).
func KarateClubFactions() []int {
	return []int{
		0, 0, 0, 0, 0, 0, 0, 0, 0, 1,
		0, 0, 0, 0, 1, 1, 0, 0, 1, 0,
		1, 0, 1, 1, 1, 1, 1, 1, 1, 1,
		1, 1, 1, 1,
	}
}
