package firstorder

// countIntersect returns |a ∩ b| for two ascending integer slices using a
// single two-pointer merge.
//
// Complexity: O(len(a) + len(b)) time, zero allocation.
func countIntersect(a, b []int) int {
	var n, i, j int
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			n++
			i++
			j++
		}
	}

	return n
}

// sumIntersect accumulates weight(z) over every z in a ∩ b, walking the same
// merge as countIntersect; weight is evaluated only on matches.
//
// Complexity: O(len(a) + len(b)) time, zero allocation.
func sumIntersect(a, b []int, weight func(z int) float64) float64 {
	var s float64
	var i, j int
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			s += weight(a[i])
			i++
			j++
		}
	}

	return s
}
