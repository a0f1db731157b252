package ink

// StrokeKind distinguishes pen strokes from eraser strokes. The values
// match the host wire format.
type StrokeKind string

const (
	// KindDraw is a pen stroke carrying a color and line width.
	KindDraw StrokeKind = "draw"

	// KindErase is an eraser stroke carrying an eraser size.
	KindErase StrokeKind = "erase"
)

// Stroke is one continuous pen or eraser gesture. The engine never
// mutates strokes; the host owns their lifetime.
//
// Color is a CSS-style hex string ("#rrggbb" or "#rrggbbaa") and is
// only meaningful for draw strokes, as EraserSize is only meaningful
// for eraser strokes.
type Stroke struct {
	Kind       StrokeKind `json:"type"`
	Points     []Segment  `json:"points"`
	Color      string     `json:"color,omitempty"`
	LineWidth  float64    `json:"line_width,omitempty"`
	EraserSize float64    `json:"eraser_size,omitempty"`
}

// Bounds is an axis-aligned bounding box. The zero value is the bounds
// of an empty stroke.
type Bounds struct {
	MinX float64 `json:"minX"`
	MinY float64 `json:"minY"`
	MaxX float64 `json:"maxX"`
	MaxY float64 `json:"maxY"`
}

// ComputeBounds returns the min/max box over all segment endpoints of
// the stroke. An empty stroke yields the zero box.
func ComputeBounds(s Stroke) Bounds {
	if len(s.Points) == 0 {
		return Bounds{}
	}
	first := s.Points[0]
	b := Bounds{
		MinX: first.From.X, MinY: first.From.Y,
		MaxX: first.From.X, MaxY: first.From.Y,
	}
	for _, seg := range s.Points {
		b.include(seg.From)
		b.include(seg.To)
	}
	return b
}

func (b *Bounds) include(p Point) {
	if p.X < b.MinX {
		b.MinX = p.X
	}
	if p.X > b.MaxX {
		b.MaxX = p.X
	}
	if p.Y < b.MinY {
		b.MinY = p.Y
	}
	if p.Y > b.MaxY {
		b.MaxY = p.Y
	}
}
