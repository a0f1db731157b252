package ink

import "encoding/json"

// Segment is one committed pointer movement. A stroke is an ordered
// sequence of segments; consecutive segments are not required to chain
// exactly, since throttling may drop samples in between.
type Segment struct {
	From Point
	To   Point
}

// Seg is a convenience function to create a Segment.
func Seg(fromX, fromY, toX, toY float64) Segment {
	return Segment{From: Pt(fromX, fromY), To: Pt(toX, toY)}
}

// Length returns the segment's euclidean length.
func (s Segment) Length() float64 {
	return s.From.Distance(s.To)
}

// quantize snaps both endpoints to the nearest multiple of step.
func (s Segment) quantize(step float64) Segment {
	return Segment{
		From: Pt(Quantize(s.From.X, step), Quantize(s.From.Y, step)),
		To:   Pt(Quantize(s.To.X, step), Quantize(s.To.Y, step)),
	}
}

// coordsWithin reports whether all four coordinates of s are within
// tol of the corresponding coordinates of o.
func (s Segment) coordsWithin(o Segment, tol float64) bool {
	return abs(s.From.X-o.From.X) < tol &&
		abs(s.From.Y-o.From.Y) < tol &&
		abs(s.To.X-o.To.X) < tol &&
		abs(s.To.Y-o.To.Y) < tol
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// segmentJSON is the host wire layout: four flat camelCase coordinates.
type segmentJSON struct {
	FromX float64 `json:"fromX"`
	FromY float64 `json:"fromY"`
	ToX   float64 `json:"toX"`
	ToY   float64 `json:"toY"`
}

// MarshalJSON encodes the segment in the host's flat coordinate layout.
func (s Segment) MarshalJSON() ([]byte, error) {
	return json.Marshal(segmentJSON{
		FromX: s.From.X,
		FromY: s.From.Y,
		ToX:   s.To.X,
		ToY:   s.To.Y,
	})
}

// UnmarshalJSON decodes the host's flat coordinate layout.
func (s *Segment) UnmarshalJSON(data []byte) error {
	var w segmentJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*s = Seg(w.FromX, w.FromY, w.ToX, w.ToY)
	return nil
}
