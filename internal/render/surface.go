package render

import (
	"image/color"
	"math"
)

// Color is an RGB colour with a straight alpha in [0, 1].
type Color struct {
	R, G, B uint8
	A       float64
}

func RGBA(r, g, b uint8, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Fade scales the alpha by f.
func (c Color) Fade(f float64) Color {
	c.A *= f
	return c
}

func (c Color) NRGBA() color.NRGBA {
	a := math.Max(0, math.Min(1, c.A))
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(a * 255))}
}

// Surface is a minimal immediate-mode 2D canvas. Coordinates are in surface
// units with the origin at the top left and y growing downward. Angles are
// in radians, measured clockwise from the positive x axis.
type Surface interface {
	Size() (w, h float64)
	Clear(c Color)
	FillRect(x, y, w, h float64, c Color)
	StrokeRect(x, y, w, h, width float64, c Color)
	Line(x0, y0, x1, y1, width float64, c Color)
	FillCircle(cx, cy, r float64, c Color)
	// Arc strokes the arc from start through start+sweep. A negative sweep
	// runs counter-clockwise.
	Arc(cx, cy, r, start, sweep, width float64, c Color)
	FillTriangle(x0, y0, x1, y1, x2, y2 float64, c Color)
	// Text draws s horizontally centred on x with its baseline at y.
	Text(x, y float64, s string, size float64, c Color)
}
