package ink

import "math"

// Algorithm names a smoothing strategy. The values match the host wire
// format; anything unrecognized falls back to corner rounding.
type Algorithm string

const (
	// AlgorithmMovingAverage replaces each point with the mean of a
	// symmetric window of its neighbors.
	AlgorithmMovingAverage Algorithm = "moving_average"

	// AlgorithmCornerRounding pulls interior corners toward their
	// neighbors. This is the default.
	AlgorithmCornerRounding Algorithm = "corner_rounding"
)

// Smooth reduces jitter in a committed point sequence. Smoothness is
// expected in [0,1]; larger values smooth harder. Fewer than two points
// are returned unchanged. The result is always a fresh slice.
func Smooth(points []Segment, smoothness float64, algorithm Algorithm) []Segment {
	if len(points) < 2 {
		out := make([]Segment, len(points))
		copy(out, points)
		return out
	}
	if algorithm == AlgorithmMovingAverage {
		return smoothMovingAverage(points, smoothness)
	}
	return smoothCornerRounding(points, smoothness)
}

// smoothMovingAverage averages all four coordinates over a symmetric
// window of round(3 + smoothness*7) points. Prefix sums make the whole
// pass O(n); windows shrink at the sequence boundaries rather than
// wrapping.
func smoothMovingAverage(points []Segment, smoothness float64) []Segment {
	n := len(points)
	window := int(math.Round(3 + smoothness*7))
	half := window / 2

	prefix := make([][4]float64, n+1)
	for i, p := range points {
		prefix[i+1] = [4]float64{
			prefix[i][0] + p.From.X,
			prefix[i][1] + p.From.Y,
			prefix[i][2] + p.To.X,
			prefix[i][3] + p.To.Y,
		}
	}

	out := make([]Segment, 0, n)
	for i := 0; i < n; i++ {
		start := i - half
		if start < 0 {
			start = 0
		}
		end := i + half
		if end > n-1 {
			end = n - 1
		}
		count := float64(end - start + 1)
		out = append(out, Segment{
			From: Pt(
				(prefix[end+1][0]-prefix[start][0])/count,
				(prefix[end+1][1]-prefix[start][1])/count,
			),
			To: Pt(
				(prefix[end+1][2]-prefix[start][2])/count,
				(prefix[end+1][3]-prefix[start][3])/count,
			),
		})
	}
	return out
}

// smoothCornerRounding passes the first and last points through and
// pulls each interior point's start corner toward the previous point's
// end corner, and its end corner toward the next point's start corner,
// by smoothness*0.5.
func smoothCornerRounding(points []Segment, smoothness float64) []Segment {
	n := len(points)
	factor := smoothness * 0.5

	out := make([]Segment, 0, n)
	out = append(out, points[0])
	for i := 1; i < n-1; i++ {
		prev, curr, next := points[i-1], points[i], points[i+1]
		out = append(out, Segment{
			From: curr.From.Lerp(prev.To, factor),
			To:   curr.To.Lerp(next.From, factor),
		})
	}
	out = append(out, points[n-1])
	return out
}
