package ink

// CullStrokes returns the order-preserving subsequence of strokes that
// are at least partially visible in the viewport. A stroke is visible
// iff any of its segments intersects the viewport rectangle; empty
// strokes are never visible.
func CullStrokes(strokes []Stroke, vp Viewport) []Stroke {
	left, top := vp.X, vp.Y
	right, bottom := vp.X+vp.Width, vp.Y+vp.Height

	visible := make([]Stroke, 0, len(strokes))
	for _, s := range strokes {
		for _, seg := range s.Points {
			if segmentIntersectsRect(seg.From, seg.To, left, top, right, bottom) {
				visible = append(visible, s)
				break
			}
		}
	}
	return visible
}
