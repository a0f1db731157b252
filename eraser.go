package ink

// StrokeHit identifies the segments of one stroke touched by an eraser
// gesture. The host decides whether to delete the whole stroke or
// split it at the hit indices.
type StrokeHit struct {
	// Stroke is the index of the hit stroke in the queried list.
	Stroke int `json:"stroke"`

	// Segments are the indices of the hit segments within that stroke,
	// in ascending order.
	Segments []int `json:"segments"`
}

// EraserHits tests an eraser gesture against a stroke list and returns
// one entry per hit stroke. Eraser strokes in the list are skipped;
// erasing an erasure is meaningless.
//
// A target segment is hit by an eraser segment when either pair of
// corresponding endpoints (from/from or to/to) is within tolerance, or
// when the eraser segment's start point lies within tolerance of the
// target segment. The interior of the eraser segment is not sampled,
// so a fast eraser motion can pass through a stroke undetected between
// its endpoints.
func EraserHits(strokes []Stroke, eraser Stroke, tolerance float64) []StrokeHit {
	var hits []StrokeHit
	for si, s := range strokes {
		if s.Kind == KindErase {
			continue
		}
		var segs []int
		for i, seg := range s.Points {
			if segmentErased(seg, eraser.Points, tolerance) {
				segs = append(segs, i)
			}
		}
		if len(segs) > 0 {
			hits = append(hits, StrokeHit{Stroke: si, Segments: segs})
		}
	}
	return hits
}

func segmentErased(target Segment, eraser []Segment, tolerance float64) bool {
	for _, e := range eraser {
		if target.From.Distance(e.From) <= tolerance ||
			target.To.Distance(e.To) <= tolerance {
			return true
		}
		if PerpendicularDistance(e.From, target.From, target.To) <= tolerance {
			return true
		}
	}
	return false
}
