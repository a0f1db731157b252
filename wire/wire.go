// Package wire implements the host-facing boundary of the annotation
// engine: camelCase JSON request/response envelopes, decoded and
// validated once, over the pure functions of the ink package.
//
// Every operation either returns a well-formed response payload or an
// ErrorResponse; malformed input never panics and never partially
// applies.
package wire

import (
	"github.com/viewstage/ink"
)

// ErrorResponse is the in-band failure envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// UnknownOpError is returned by Dispatch for an unrecognized operation
// name.
type UnknownOpError struct {
	Op string
}

func (e *UnknownOpError) Error() string {
	return "wire: unknown operation " + e.Op
}

// FieldError reports a request field that failed validation.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return "wire: field " + e.Field + " " + e.Reason
}

// ProcessPointsRequest asks for one-shot quantize + filter + simplify
// over a finished gesture.
type ProcessPointsRequest struct {
	Points []ink.Segment `json:"points"`
	Config ink.Config    `json:"config"`
}

// ProcessPoints quantizes, distance-filters, and simplifies a point
// sequence in one call.
func ProcessPoints(req ProcessPointsRequest) ([]ink.Segment, error) {
	if err := req.Config.Validate(); err != nil {
		return nil, err
	}
	filtered := ink.FilterSegments(req.Points, req.Config)
	return ink.Simplify(filtered, req.Config.Epsilon), nil
}

// CollectPointsRequest streams raw samples through the throttle with
// explicit carried cursor state.
type CollectPointsRequest struct {
	Points      []ink.Segment `json:"points"`
	Config      ink.Config    `json:"config"`
	LastTime    int64         `json:"lastTime"`
	LastX       float64       `json:"lastX"`
	LastY       float64       `json:"lastY"`
	CurrentTime int64         `json:"currentTime"`
}

// CollectPointsResponse returns the committed points and the updated
// cursor for the host to carry into the next call.
type CollectPointsResponse struct {
	CollectedPoints []ink.Segment `json:"collectedPoints"`
	LastTime        int64         `json:"lastTime"`
	LastX           float64       `json:"lastX"`
	LastY           float64       `json:"lastY"`
}

// CollectPoints runs the capture throttle over a batch of raw samples.
func CollectPoints(req CollectPointsRequest) (CollectPointsResponse, error) {
	if err := req.Config.Validate(); err != nil {
		return CollectPointsResponse{}, err
	}
	cur := ink.Cursor{
		LastTime: req.LastTime,
		LastAt:   ink.Pt(req.LastX, req.LastY),
	}
	points, cur := ink.CollectPoints(req.Points, cur, req.CurrentTime, req.Config)
	return CollectPointsResponse{
		CollectedPoints: points,
		LastTime:        cur.LastTime,
		LastX:           cur.LastAt.X,
		LastY:           cur.LastAt.Y,
	}, nil
}

// SmoothPathRequest selects a smoothing algorithm by name.
type SmoothPathRequest struct {
	Points     []ink.Segment `json:"points"`
	Smoothness float64       `json:"smoothness"`
	Algorithm  ink.Algorithm `json:"algorithm"`
}

// SmoothPath applies the named smoothing algorithm.
func SmoothPath(req SmoothPathRequest) ([]ink.Segment, error) {
	if req.Smoothness < 0 {
		return nil, &FieldError{Field: "smoothness", Reason: "must be non-negative"}
	}
	return ink.Smooth(req.Points, req.Smoothness, req.Algorithm), nil
}

// CullStrokesRequest asks which strokes touch the viewport.
type CullStrokesRequest struct {
	Strokes  []ink.Stroke `json:"strokes"`
	Viewport ink.Viewport `json:"viewport"`
}

// CullStrokes returns the visible subsequence of the stroke list.
// A zero-area viewport is degenerate but legal.
func CullStrokes(req CullStrokesRequest) ([]ink.Stroke, error) {
	return ink.CullStrokes(req.Strokes, req.Viewport), nil
}

// BatchCommandsRequest groups draw commands by style.
type BatchCommandsRequest struct {
	Commands    []ink.DrawCommand `json:"commands"`
	MinDistance float64           `json:"min_distance"`
}

// BatchCommands groups same-style commands contiguously, dropping
// commands shorter than the minimum distance.
func BatchCommands(req BatchCommandsRequest) ([]ink.DrawCommand, error) {
	if req.MinDistance < 0 {
		return nil, &FieldError{Field: "min_distance", Reason: "must be non-negative"}
	}
	return ink.BatchCommands(req.Commands, req.MinDistance), nil
}

// DetectCollisionRequest carries two tagged shape payloads.
type DetectCollisionRequest struct {
	ShapeA ShapeEnvelope `json:"shapeA"`
	ShapeB ShapeEnvelope `json:"shapeB"`
}

// DetectCollisionResponse reports whether the shapes overlap.
type DetectCollisionResponse struct {
	Collision bool `json:"collision"`
}

// DetectCollision tests two shapes. Unsupported shape-kind pairs
// resolve to no collision rather than an error.
func DetectCollision(req DetectCollisionRequest) (DetectCollisionResponse, error) {
	return DetectCollisionResponse{
		Collision: ink.Collides(req.ShapeA.Shape, req.ShapeB.Shape),
	}, nil
}

// EraserHitsRequest tests an eraser gesture against a stroke list.
type EraserHitsRequest struct {
	Strokes   []ink.Stroke `json:"strokes"`
	Eraser    ink.Stroke   `json:"eraser"`
	Tolerance float64      `json:"tolerance"`
}

// EraserHitsResponse lists the hit segment indices per hit stroke.
type EraserHitsResponse struct {
	Hits []ink.StrokeHit `json:"hits"`
}

// EraserHits returns the strokes and segment indices touched by the
// eraser gesture.
func EraserHits(req EraserHitsRequest) (EraserHitsResponse, error) {
	if req.Tolerance < 0 {
		return EraserHitsResponse{}, &FieldError{Field: "tolerance", Reason: "must be non-negative"}
	}
	return EraserHitsResponse{
		Hits: ink.EraserHits(req.Strokes, req.Eraser, req.Tolerance),
	}, nil
}

// ComputeBoundsRequest asks for a stroke's bounding box.
type ComputeBoundsRequest struct {
	Stroke ink.Stroke `json:"stroke"`
}

// ComputeBounds returns the stroke's bounding box; empty strokes get
// the zero box.
func ComputeBounds(req ComputeBoundsRequest) (ink.Bounds, error) {
	return ink.ComputeBounds(req.Stroke), nil
}
