package firstorder

import "math"

// view is the read-only fitted state handed to kernels: borrowed CSR arrays
// of the fitted adjacency. Row i is the sorted out-neighborhood Γi.
type view struct {
	indptr  []int
	indices []int
}

func (v view) n() int          { return len(v.indptr) - 1 }
func (v view) row(i int) []int { return v.indices[v.indptr[i]:v.indptr[i+1]] }
func (v view) deg(i int) int   { return v.indptr[i+1] - v.indptr[i] }

// colDeg is deg for intersection members, which live in column space.
// On a rectangular fit a column past the row range has no row of its own;
// its degree reads as 0.
func (v view) colDeg(z int) int {
	if z >= len(v.indptr)-1 {
		return 0
	}

	return v.deg(z)
}

// kernel fills out[k] with the similarity of source to targets[k].
// Kernels trust their inputs: the dispatcher validates every ID beforehand,
// and len(out) == len(targets). They never allocate and never fail.
type kernel func(v view, source int, targets []int, out []float64)

func kernelCommonNeighbors(v view, source int, targets []int, out []float64) {
	src := v.row(source)
	for k, j := range targets {
		out[k] = float64(countIntersect(src, v.row(j)))
	}
}

func kernelJaccard(v view, source int, targets []int, out []float64) {
	src := v.row(source)
	di := len(src)
	for k, j := range targets {
		c := countIntersect(src, v.row(j))
		den := di + v.deg(j) - c
		if den == 0 {
			out[k] = 0
			continue
		}
		out[k] = float64(c) / float64(den)
	}
}

func kernelSalton(v view, source int, targets []int, out []float64) {
	src := v.row(source)
	di := len(src)
	for k, j := range targets {
		dj := v.deg(j)
		if di == 0 || dj == 0 {
			out[k] = 0
			continue
		}
		out[k] = float64(countIntersect(src, v.row(j))) / math.Sqrt(float64(di)*float64(dj))
	}
}

func kernelSorensen(v view, source int, targets []int, out []float64) {
	src := v.row(source)
	di := len(src)
	for k, j := range targets {
		den := di + v.deg(j)
		if den == 0 {
			out[k] = 0
			continue
		}
		out[k] = 2 * float64(countIntersect(src, v.row(j))) / float64(den)
	}
}

func kernelHubPromoted(v view, source int, targets []int, out []float64) {
	src := v.row(source)
	di := len(src)
	for k, j := range targets {
		den := min(di, v.deg(j))
		if den == 0 {
			out[k] = 0
			continue
		}
		out[k] = float64(countIntersect(src, v.row(j))) / float64(den)
	}
}

func kernelHubDepressed(v view, source int, targets []int, out []float64) {
	src := v.row(source)
	di := len(src)
	for k, j := range targets {
		den := max(di, v.deg(j))
		if den == 0 {
			out[k] = 0
			continue
		}
		out[k] = float64(countIntersect(src, v.row(j))) / float64(den)
	}
}

func kernelAdamicAdar(v view, source int, targets []int, out []float64) {
	src := v.row(source)
	// 1/ln(deg z); deg z ≤ 1 would hit ln(1)=0 or ln(0), so it contributes 0.
	w := func(z int) float64 {
		d := v.colDeg(z)
		if d <= 1 {
			return 0
		}

		return 1 / math.Log(float64(d))
	}
	for k, j := range targets {
		out[k] = sumIntersect(src, v.row(j), w)
	}
}

func kernelResourceAllocation(v view, source int, targets []int, out []float64) {
	src := v.row(source)
	// deg z = 0 happens on directed or rectangular input; it contributes 0.
	w := func(z int) float64 {
		d := v.colDeg(z)
		if d == 0 {
			return 0
		}

		return 1 / float64(d)
	}
	for k, j := range targets {
		out[k] = sumIntersect(src, v.row(j), w)
	}
}

func kernelPreferentialAttachment(v view, source int, targets []int, out []float64) {
	// Pure degree product; the only metric that never touches neighborhoods.
	di := float64(v.deg(source))
	for k, j := range targets {
		out[k] = di * float64(v.deg(j))
	}
}
