package ink

// Simplification constants.
const (
	// strideScanThreshold is the range length above which the maximum-
	// deviation scan samples at a stride instead of every point.
	strideScanThreshold = 100

	// dedupeTolerance collapses consecutive output points whose four
	// coordinates all agree within this tolerance.
	dedupeTolerance = 0.001
)

// indexRange is a pending (start,end) span on the simplification stack.
type indexRange struct {
	start, end int
}

// Simplify reduces a committed point sequence while preserving its
// shape within epsilon. The first and last points are always kept.
//
// The reduction is the classic recursive split on the point of maximum
// perpendicular deviation from the range chord, run on an explicit
// stack. Ranges longer than 100 points are scanned at a stride of
// length/100 and the coarse maximum refined within one stride either
// side, which keeps the worst case linear. Because of the stride, the
// epsilon bound on dropped points is an approximation, not exact.
//
// Empty input returns an empty slice; two or fewer points are returned
// unchanged.
func Simplify(points []Segment, epsilon float64) []Segment {
	n := len(points)
	if n == 0 {
		return []Segment{}
	}
	if n <= 2 {
		out := make([]Segment, n)
		copy(out, points)
		return out
	}

	result := make([]Segment, 0, n)
	stack := make([]indexRange, 0, 16)
	stack = append(stack, indexRange{0, n - 1})

	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if r.start >= r.end {
			result = append(result, points[r.start])
			continue
		}

		// Deviation is measured from each sample's start point to the
		// chord running from the range start's From to the range end's To.
		chordA := points[r.start].From
		chordB := points[r.end].To

		stride := 1
		if r.end-r.start > strideScanThreshold {
			stride = (r.end - r.start) / strideScanThreshold
		}

		maxDist := 0.0
		maxIndex := r.start
		for i := r.start + 1; i < r.end; i += stride {
			d := PerpendicularDistance(points[i].From, chordA, chordB)
			if d > maxDist {
				maxDist = d
				maxIndex = i
			}
		}

		if stride > 1 {
			// Refine around the coarse maximum.
			fineStart := maxIndex - stride
			if fineStart < r.start+1 {
				fineStart = r.start + 1
			}
			fineEnd := maxIndex + stride
			if fineEnd > r.end-1 {
				fineEnd = r.end - 1
			}
			for i := fineStart; i <= fineEnd; i++ {
				d := PerpendicularDistance(points[i].From, chordA, chordB)
				if d > maxDist {
					maxDist = d
					maxIndex = i
				}
			}
		}

		if maxDist > epsilon {
			// Left range pushed last so it pops first, preserving
			// left-to-right emission order.
			stack = append(stack, indexRange{maxIndex, r.end})
			stack = append(stack, indexRange{r.start, maxIndex})
		} else {
			result = append(result, points[r.start], points[r.end])
		}
	}

	// Adjacent ranges emit shared endpoints twice; collapse them.
	unique := result[:0]
	for _, p := range result {
		if len(unique) > 0 && p.coordsWithin(unique[len(unique)-1], dedupeTolerance) {
			continue
		}
		unique = append(unique, p)
	}
	return unique
}
