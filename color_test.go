package ink

import (
	"image/color"
	"math"
	"testing"
)

func approxRGBA(a, b RGBA, tol float64) bool {
	return math.Abs(a.R-b.R) <= tol && math.Abs(a.G-b.G) <= tol &&
		math.Abs(a.B-b.B) <= tol && math.Abs(a.A-b.A) <= tol
}

func TestHex(t *testing.T) {
	tests := []struct {
		name   string
		hex    string
		expect RGBA
	}{
		{"rrggbb red", "#ff0000", RGBA{1, 0, 0, 1}},
		{"rrggbb without hash", "00ff00", RGBA{0, 1, 0, 1}},
		{"short rgb", "#f00", RGBA{1, 0, 0, 1}},
		{"rrggbbaa half alpha", "#ff000080", RGBA{1, 0, 0, 128.0 / 255}},
		{"short rgba", "#f008", RGBA{1, 0, 0, 136.0 / 255}},
		{"mixed case", "#FF00ff", RGBA{1, 0, 1, 1}},
		{"malformed length defaults to black", "#ff00", RGBA{0, 0, 0, 1}},
		{"empty defaults to black", "", RGBA{0, 0, 0, 1}},
		{"bad digit defaults to black", "12z456", RGBA{0, 0, 0, 1}},
		{"bad digit with alpha defaults to black", "#ffffffgg", RGBA{0, 0, 0, 1}},
		{"bad short digit defaults to black", "#f0x", RGBA{0, 0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hex(tt.hex)
			if !approxRGBA(got, tt.expect, 1e-9) {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.hex, got, tt.expect)
			}
		})
	}
}

func TestRGBA_Color(t *testing.T) {
	c := RGBA{1, 0.5, 0, 1}.Color()
	n, ok := c.(color.NRGBA)
	if !ok {
		t.Fatalf("Color() returned %T, want color.NRGBA", c)
	}
	if n.R != 255 || n.G != 127 || n.B != 0 || n.A != 255 {
		t.Errorf("Color() = %+v", n)
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	if !approxRGBA(got, RGBA{1, 0, 0, 1}, 1e-3) {
		t.Errorf("FromColor(red) = %+v", got)
	}

	got = FromColor(color.NRGBA{A: 0})
	if got != Transparent {
		t.Errorf("FromColor(transparent) = %+v", got)
	}
}

func TestRGBA_Lerp(t *testing.T) {
	a := RGBA{0, 0, 0, 0}
	b := RGBA{1, 1, 1, 1}
	mid := a.Lerp(b, 0.5)
	if !approxRGBA(mid, RGBA{0.5, 0.5, 0.5, 0.5}, 1e-9) {
		t.Errorf("Lerp = %+v", mid)
	}
}
