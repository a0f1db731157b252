package ink

import "math"

// Quantize snaps a coordinate to the nearest multiple of step.
// A step of zero (or less) leaves the coordinate unchanged.
func Quantize(coord, step float64) float64 {
	if step <= 0 {
		return coord
	}
	return math.Round(coord/step) * step
}

// PerpendicularDistance returns the distance from p to the segment ab.
// Points beyond either endpoint measure against that endpoint, so the
// result is the true closest-point distance, not the infinite-line one.
func PerpendicularDistance(p, a, b Point) float64 {
	ab := b.Sub(a)
	lenSq := ab.LengthSquared()
	if lenSq == 0 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / lenSq
	switch {
	case t < 0:
		return p.Distance(a)
	case t > 1:
		return p.Distance(b)
	default:
		return p.Distance(a.Add(ab.Mul(t)))
	}
}

// segmentIntersectsRect reports whether the segment from a to b touches
// the axis-aligned rectangle spanning (left,top)-(right,bottom).
//
// Two stages: a 4-way axis rejection for segments wholly beyond one
// edge, then a same-side test placing all four rectangle corners
// against the segment's infinite line. If every corner lies strictly on
// one side the segment cannot cross the rectangle.
func segmentIntersectsRect(a, b Point, left, top, right, bottom float64) bool {
	if a.X < left && b.X < left {
		return false
	}
	if a.X > right && b.X > right {
		return false
	}
	if a.Y < top && b.Y < top {
		return false
	}
	if a.Y > bottom && b.Y > bottom {
		return false
	}

	d := b.Sub(a)
	d1 := Pt(left, top).Sub(a).Cross(d)
	d2 := Pt(right, top).Sub(a).Cross(d)
	d3 := Pt(left, bottom).Sub(a).Cross(d)
	d4 := Pt(right, bottom).Sub(a).Cross(d)
	if d1*d2 > 0 && d3*d4 > 0 {
		return false
	}
	return true
}

// segmentsIntersect reports whether segments ab and cd cross, using the
// standard orientation test. Collinear overlap counts as a hit; fully
// collinear segments additionally need their 1D extents to overlap.
func segmentsIntersect(a, b, c, d Point) bool {
	o1 := orientation(a, b, c)
	o2 := orientation(a, b, d)
	o3 := orientation(c, d, a)
	o4 := orientation(c, d, b)
	if o1 == 0 && o2 == 0 && o3 == 0 && o4 == 0 {
		return collinearOverlap(a, b, c, d)
	}
	return o1*o2 <= 0 && o3*o4 <= 0
}

// collinearOverlap reports whether two segments known to lie on one
// line share any point, compared along the dominant axis.
func collinearOverlap(a, b, c, d Point) bool {
	if abs(b.X-a.X) >= abs(b.Y-a.Y) {
		return math.Min(a.X, b.X) <= math.Max(c.X, d.X) &&
			math.Min(c.X, d.X) <= math.Max(a.X, b.X)
	}
	return math.Min(a.Y, b.Y) <= math.Max(c.Y, d.Y) &&
		math.Min(c.Y, d.Y) <= math.Max(a.Y, b.Y)
}

// orientation returns the sign of the cross product (b-a) x (c-a):
// positive for counter-clockwise, negative for clockwise, zero for
// collinear points.
func orientation(a, b, c Point) float64 {
	v := b.Sub(a).Cross(c.Sub(a))
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
