package ink

import (
	"math"
	"testing"
)

func TestSmooth_Degenerate(t *testing.T) {
	tests := []struct {
		name   string
		points []Segment
	}{
		{"empty", nil},
		{"single point", []Segment{Seg(0, 0, 5, 5)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, alg := range []Algorithm{AlgorithmMovingAverage, AlgorithmCornerRounding} {
				got := Smooth(tt.points, 0.8, alg)
				if len(got) != len(tt.points) {
					t.Errorf("%s: length changed %d -> %d", alg, len(tt.points), len(got))
				}
				for i := range got {
					if got[i] != tt.points[i] {
						t.Errorf("%s: point %d changed", alg, i)
					}
				}
			}
		})
	}
}

func TestSmooth_ReturnsFreshSlice(t *testing.T) {
	points := []Segment{Seg(0, 0, 5, 5)}
	got := Smooth(points, 0.8, AlgorithmCornerRounding)
	got[0] = Seg(1, 1, 1, 1)
	if points[0] != Seg(0, 0, 5, 5) {
		t.Errorf("input mutated through result: %v", points[0])
	}
}

func TestSmooth_CornerRounding_EndpointsPassThrough(t *testing.T) {
	points := []Segment{
		Seg(0, 0, 10, 0),
		Seg(10, 0, 10, 10),
		Seg(10, 10, 0, 10),
	}
	got := Smooth(points, 1, AlgorithmCornerRounding)
	if len(got) != len(points) {
		t.Fatalf("length changed %d -> %d", len(points), len(got))
	}
	if got[0] != points[0] {
		t.Errorf("first point changed: %v", got[0])
	}
	if got[2] != points[2] {
		t.Errorf("last point changed: %v", got[2])
	}
}

func TestSmooth_CornerRounding_PullsCorners(t *testing.T) {
	points := []Segment{
		Seg(0, 0, 10, 0),
		Seg(10, 0, 10, 10),
		Seg(10, 10, 0, 10),
	}
	// smoothness 1 -> factor 0.5: interior start corner is pulled
	// halfway toward the previous end corner, interior end corner
	// halfway toward the next start corner.
	got := Smooth(points, 1, AlgorithmCornerRounding)

	wantFrom := points[1].From.Lerp(points[0].To, 0.5)
	wantTo := points[1].To.Lerp(points[2].From, 0.5)
	if !approxPt(got[1].From, wantFrom, 1e-10) {
		t.Errorf("interior From = %v, want %v", got[1].From, wantFrom)
	}
	if !approxPt(got[1].To, wantTo, 1e-10) {
		t.Errorf("interior To = %v, want %v", got[1].To, wantTo)
	}
}

func TestSmooth_CornerRounding_ZeroSmoothness(t *testing.T) {
	points := []Segment{
		Seg(0, 0, 10, 0),
		Seg(10, 0, 10, 10),
		Seg(10, 10, 0, 10),
	}
	got := Smooth(points, 0, AlgorithmCornerRounding)
	for i := range got {
		if got[i] != points[i] {
			t.Errorf("point %d moved with zero smoothness: %v", i, got[i])
		}
	}
}

func TestSmooth_MovingAverage_ConstantPathIsFixed(t *testing.T) {
	points := make([]Segment, 10)
	for i := range points {
		points[i] = Seg(5, 5, 6, 6)
	}
	got := Smooth(points, 1, AlgorithmMovingAverage)
	for i, p := range got {
		if !approxPt(p.From, Pt(5, 5), 1e-9) || !approxPt(p.To, Pt(6, 6), 1e-9) {
			t.Errorf("point %d drifted: %v", i, p)
		}
	}
}

func TestSmooth_MovingAverage_WindowMean(t *testing.T) {
	// Points at x = 0,1,2,...,9; smoothness 0 gives window
	// round(3) = 3, so half-window 1: each interior output is the mean
	// of its immediate neighborhood.
	points := make([]Segment, 10)
	for i := range points {
		points[i] = Seg(float64(i), 0, float64(i), 1)
	}
	got := Smooth(points, 0, AlgorithmMovingAverage)
	if len(got) != len(points) {
		t.Fatalf("length changed %d -> %d", len(points), len(got))
	}
	// Interior point i averages x over {i-1, i, i+1} = i.
	for i := 1; i < len(got)-1; i++ {
		if math.Abs(got[i].From.X-float64(i)) > 1e-9 {
			t.Errorf("point %d: From.X = %v, want %v", i, got[i].From.X, float64(i))
		}
	}
	// Boundary windows shrink: first point averages {0, 1} = 0.5.
	if math.Abs(got[0].From.X-0.5) > 1e-9 {
		t.Errorf("boundary mean = %v, want 0.5", got[0].From.X)
	}
}

func TestSmooth_UnknownAlgorithmDefaultsToCornerRounding(t *testing.T) {
	points := []Segment{
		Seg(0, 0, 10, 0),
		Seg(10, 0, 10, 10),
		Seg(10, 10, 0, 10),
	}
	got := Smooth(points, 1, Algorithm("bogus"))
	want := Smooth(points, 1, AlgorithmCornerRounding)
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("point %d differs from corner rounding: %v vs %v", i, got[i], want[i])
		}
	}
}

func TestSmooth_JitterReduced(t *testing.T) {
	// A zig-zag path: smoothing must reduce total deviation from the
	// baseline y=0.
	var points []Segment
	prev := Pt(0, 0)
	for i := 1; i <= 20; i++ {
		y := 2.0
		if i%2 == 0 {
			y = -2.0
		}
		next := Pt(float64(i), y)
		points = append(points, Segment{From: prev, To: next})
		prev = next
	}

	got := Smooth(points, 1, AlgorithmMovingAverage)
	var before, after float64
	for i := range points {
		before += math.Abs(points[i].To.Y)
		after += math.Abs(got[i].To.Y)
	}
	if after >= before {
		t.Errorf("moving average did not reduce jitter: %v -> %v", before, after)
	}
}
