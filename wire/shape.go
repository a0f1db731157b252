package wire

import (
	"encoding/json"

	"github.com/viewstage/ink"
)

// Shape kind tags on the wire.
const (
	shapeKindRect   = "rect"
	shapeKindCircle = "circle"
	shapeKindLine   = "line"
)

// ShapeEnvelope decodes a tagged collision payload into the ink shape
// sum type exactly once, at the boundary. An unrecognized kind decodes
// to a nil Shape, which collides with nothing.
type ShapeEnvelope struct {
	Shape ink.Shape
}

// shapeJSON is the superset wire layout across all shape kinds.
type shapeJSON struct {
	Kind   string  `json:"kind"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Radius float64 `json:"radius"`
	X1     float64 `json:"x1"`
	Y1     float64 `json:"y1"`
	X2     float64 `json:"x2"`
	Y2     float64 `json:"y2"`
}

// UnmarshalJSON decodes a tagged shape payload.
func (e *ShapeEnvelope) UnmarshalJSON(data []byte) error {
	var w shapeJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	switch w.Kind {
	case shapeKindRect:
		e.Shape = ink.Rect{X: w.X, Y: w.Y, Width: w.Width, Height: w.Height}
	case shapeKindCircle:
		e.Shape = ink.Circle{X: w.X, Y: w.Y, Radius: w.Radius}
	case shapeKindLine:
		e.Shape = ink.Line{From: ink.Pt(w.X1, w.Y1), To: ink.Pt(w.X2, w.Y2)}
	default:
		e.Shape = nil
	}
	return nil
}

// MarshalJSON re-encodes the shape in its tagged wire layout.
func (e ShapeEnvelope) MarshalJSON() ([]byte, error) {
	switch s := e.Shape.(type) {
	case ink.Rect:
		return json.Marshal(struct {
			Kind   string  `json:"kind"`
			X      float64 `json:"x"`
			Y      float64 `json:"y"`
			Width  float64 `json:"width"`
			Height float64 `json:"height"`
		}{shapeKindRect, s.X, s.Y, s.Width, s.Height})
	case ink.Circle:
		return json.Marshal(struct {
			Kind   string  `json:"kind"`
			X      float64 `json:"x"`
			Y      float64 `json:"y"`
			Radius float64 `json:"radius"`
		}{shapeKindCircle, s.X, s.Y, s.Radius})
	case ink.Line:
		return json.Marshal(struct {
			Kind string  `json:"kind"`
			X1   float64 `json:"x1"`
			Y1   float64 `json:"y1"`
			X2   float64 `json:"x2"`
			Y2   float64 `json:"y2"`
		}{shapeKindLine, s.From.X, s.From.Y, s.To.X, s.To.Y})
	default:
		return []byte("null"), nil
	}
}
