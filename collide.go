package ink

// Shape is a closed sum type over the collision primitives. Payloads
// arriving as tagged JSON are decoded into one of these variants once
// at the boundary (see the wire package).
type Shape interface {
	shape()
}

// Rect is an axis-aligned rectangle shape.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Circle is a circle shape.
type Circle struct {
	X, Y   float64
	Radius float64
}

// Line is a line segment shape.
type Line struct {
	From, To Point
}

func (Rect) shape()   {}
func (Circle) shape() {}
func (Line) shape()   {}

// Collides reports whether two shapes overlap. Supported pairs:
// rect/rect, rect/circle (either order), circle/circle, and line/line.
// Any other combination, including nil shapes, resolves to false
// rather than erroring.
//
// Boundary contact counts as a collision: two circles whose center
// distance equals the sum of their radii collide.
func Collides(a, b Shape) bool {
	switch a := a.(type) {
	case Rect:
		switch b := b.(type) {
		case Rect:
			return rectRect(a, b)
		case Circle:
			return rectCircle(a, b)
		}
	case Circle:
		switch b := b.(type) {
		case Rect:
			return rectCircle(b, a)
		case Circle:
			return circleCircle(a, b)
		}
	case Line:
		if b, ok := b.(Line); ok {
			return segmentsIntersect(a.From, a.To, b.From, b.To)
		}
	}
	return false
}

// rectRect is the axis-aligned overlap test. Touching edges collide.
func rectRect(a, b Rect) bool {
	return a.X <= b.X+b.Width && a.X+a.Width >= b.X &&
		a.Y <= b.Y+b.Height && a.Y+a.Height >= b.Y
}

// rectCircle clamps the circle center onto the rectangle and compares
// the residual distance against the radius.
func rectCircle(r Rect, c Circle) bool {
	closest := Pt(
		clamp(c.X, r.X, r.X+r.Width),
		clamp(c.Y, r.Y, r.Y+r.Height),
	)
	return closest.Distance(Pt(c.X, c.Y)) <= c.Radius
}

func circleCircle(a, b Circle) bool {
	return Pt(a.X, a.Y).Distance(Pt(b.X, b.Y)) <= a.Radius+b.Radius
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
