package ink

// Throttle constants. They bound the worst-case per-call cost of
// arbitrarily long gestures.
const (
	// minCommitInterval is the minimum elapsed time between committed
	// samples, in host time units.
	minCommitInterval = 30

	// eagerSimplifyThreshold triggers a mid-stream Simplify pass once
	// the committed buffer grows past this many points.
	eagerSimplifyThreshold = 1500
)

// Cursor is the carried throttle state between CollectPoints calls.
// The host persists it across pointer events; there is no hidden
// state inside the engine.
type Cursor struct {
	// LastTime is the host time of the last committed sample.
	LastTime int64

	// LastAt is the quantized end point of the last committed sample.
	LastAt Point
}

// FilterSegments quantizes every sample to the configured grid and
// drops samples whose quantized length falls below MinDistance. It is
// the distance-only half of CollectPoints, used when the host batches
// a finished gesture rather than streaming it.
func FilterSegments(samples []Segment, cfg Config) []Segment {
	out := make([]Segment, 0, len(samples))
	for _, s := range samples {
		q := s.quantize(cfg.Quantization)
		if q.Length() < cfg.MinDistance {
			continue
		}
		out = append(out, q)
	}
	return out
}

// CollectPoints converts raw pointer samples into committed segments.
// Each sample is quantized, then rejected if its quantized length is
// below cfg.MinDistance or if less than 30 time units have elapsed
// since the last commit. An accepted sample advances the cursor to its
// quantized end point.
//
// If the committed buffer exceeds 1500 points mid-stream it is eagerly
// simplified with cfg.Epsilon, bounding per-call cost for very long
// gestures.
//
// The returned cursor must be passed back on the next call.
func CollectPoints(samples []Segment, cur Cursor, now int64, cfg Config) ([]Segment, Cursor) {
	out := make([]Segment, 0, len(samples))
	for _, s := range samples {
		q := s.quantize(cfg.Quantization)
		if q.Length() < cfg.MinDistance {
			continue
		}
		if now-cur.LastTime < minCommitInterval {
			continue
		}
		cur.LastTime = now
		cur.LastAt = q.To
		out = append(out, q)

		if len(out) > eagerSimplifyThreshold {
			Logger().Debug("ink: eager simplify", "points", len(out), "epsilon", cfg.Epsilon)
			out = Simplify(out, cfg.Epsilon)
		}
	}
	return out, cur
}
