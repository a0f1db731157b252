package wire

import (
	"encoding/json"

	"github.com/viewstage/ink"
)

// Operation names accepted by Dispatch. They follow the host's
// exported function names.
const (
	OpProcessPoints = "process_stroke_points"
	OpCollectPoints = "collect_points"
	OpSmoothPath    = "smooth_path"
	OpCullStrokes   = "cull_strokes_by_viewport"
	OpBatchCommands = "batch_process_draw_commands"
	OpDetectCollide = "detect_collision"
	OpEraserHits    = "eraser_hits"
	OpComputeBounds = "compute_bounds"
)

// Dispatch routes a raw JSON payload to the named operation and always
// returns a JSON payload: the operation's response on success, an
// ErrorResponse otherwise. It never panics on malformed input.
func Dispatch(op string, payload []byte) []byte {
	out, err := dispatch(op, payload)
	if err != nil {
		ink.Logger().Debug("wire: dispatch failed", "op", op, "err", err)
		return errorPayload(err)
	}
	return out
}

func dispatch(op string, payload []byte) ([]byte, error) {
	switch op {
	case OpProcessPoints:
		return handle(payload, ProcessPoints)
	case OpCollectPoints:
		return handle(payload, CollectPoints)
	case OpSmoothPath:
		return handle(payload, SmoothPath)
	case OpCullStrokes:
		return handle(payload, CullStrokes)
	case OpBatchCommands:
		return handle(payload, BatchCommands)
	case OpDetectCollide:
		return handle(payload, DetectCollision)
	case OpEraserHits:
		return handle(payload, EraserHits)
	case OpComputeBounds:
		return handle(payload, ComputeBounds)
	default:
		return nil, &UnknownOpError{Op: op}
	}
}

// handle decodes a request, runs the operation, and encodes the
// response.
func handle[Req, Resp any](payload []byte, op func(Req) (Resp, error)) ([]byte, error) {
	var req Req
	if err := json.Unmarshal(payload, &req); err != nil {
		return nil, err
	}
	resp, err := op(req)
	if err != nil {
		return nil, err
	}
	return json.Marshal(resp)
}

func errorPayload(err error) []byte {
	out, merr := json.Marshal(ErrorResponse{Error: err.Error()})
	if merr != nil {
		return []byte(`{"error":"internal encoding failure"}`)
	}
	return out
}
