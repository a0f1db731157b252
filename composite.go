package ink

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Composite rasterizes a finished stroke list onto a width x height
// canvas and returns the flattened pixmap. The canvas starts fully
// transparent; if base is non-nil its pixels are copied in first,
// anchored at the origin and clipped to the canvas.
//
// Strokes apply in list order, so later strokes draw over earlier ones
// at shared pixels. Draw strokes walk each segment with an integer
// digital line and stamp a disc of radius LineWidth/2 at every lit
// pixel; fully opaque color replaces the pixel, translucent color is
// blended source-over-destination. Erase strokes stamp the same discs
// with radius EraserSize but only force alpha to zero, leaving RGB
// untouched. All writes are clipped to the canvas.
//
// Compositing is inherently sequential: later strokes must overwrite
// earlier ones, so callers must not invoke it concurrently on shared
// output.
func Composite(base image.Image, strokes []Stroke, width, height int) *Pixmap {
	pm := NewPixmap(width, height)
	if base != nil {
		xdraw.Copy(pm.NRGBA(), image.Point{}, base, base.Bounds(), xdraw.Src, nil)
	}

	for _, s := range strokes {
		switch s.Kind {
		case KindErase:
			for _, seg := range s.Points {
				walkLine(seg, func(x, y int) {
					stampErase(pm, x, y, s.EraserSize)
				})
			}
		default:
			c := Hex(s.Color)
			radius := s.LineWidth / 2
			for _, seg := range s.Points {
				walkLine(seg, func(x, y int) {
					stampDisc(pm, x, y, radius, c)
				})
			}
		}
	}

	Logger().Debug("ink: composite", "strokes", len(strokes), "width", width, "height", height)
	return pm
}

// walkLine visits every pixel of the segment using the Bresenham
// stepper, endpoints included.
func walkLine(seg Segment, visit func(x, y int)) {
	x0 := int(math.Round(seg.From.X))
	y0 := int(math.Round(seg.From.Y))
	x1 := int(math.Round(seg.To.X))
	y1 := int(math.Round(seg.To.Y))

	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy

	for {
		visit(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// stampDisc paints a filled disc centered on (cx,cy). Opaque source
// replaces destination bytes exactly; translucent source blends
// source-over-destination with straight alpha.
func stampDisc(pm *Pixmap, cx, cy int, radius float64, c RGBA) {
	r := int(math.Ceil(radius))
	rsq := radius * radius
	opaque := c.A >= 1

	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if float64(dx*dx+dy*dy) > rsq {
				continue
			}
			x, y := cx+dx, cy+dy
			if x < 0 || x >= pm.width || y < 0 || y >= pm.height {
				continue
			}
			if opaque {
				i := (y*pm.width + x) * 4
				pm.data[i+0] = uint8(clamp255(c.R * 255))
				pm.data[i+1] = uint8(clamp255(c.G * 255))
				pm.data[i+2] = uint8(clamp255(c.B * 255))
				pm.data[i+3] = 255
				continue
			}
			dst := pm.GetPixel(x, y)
			blended := dst.Lerp(c, c.A)
			blended.A = c.A + dst.A*(1-c.A)
			pm.SetPixel(x, y, blended)
		}
	}
}

// stampErase clears alpha inside a disc centered on (cx,cy). RGB bytes
// are left as they were; erasing removes coverage, it does not restore
// whatever was underneath.
func stampErase(pm *Pixmap, cx, cy int, radius float64) {
	r := int(math.Ceil(radius))
	rsq := radius * radius

	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if float64(dx*dx+dy*dy) > rsq {
				continue
			}
			x, y := cx+dx, cy+dy
			if x < 0 || x >= pm.width || y < 0 || y >= pm.height {
				continue
			}
			pm.data[(y*pm.width+x)*4+3] = 0
		}
	}
}
