package viz

import (
	"math"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/retrotennis/internal/render"
)

const (
	// dots dimmer than this are not drawn
	litThreshold = 0.15
	// dark fills at least this opaque erase what is under them
	eraseAlpha = 0.5
)

// BrailleSurface draws render primitives onto a Canvas, one dot per surface
// unit. Dots are either on or off, so translucent colours are thresholded.
type BrailleSurface struct {
	canvas *Canvas
}

func NewBrailleSurface(c *Canvas) *BrailleSurface {
	return &BrailleSurface{canvas: c}
}

func (s *BrailleSurface) Canvas() *Canvas { return s.canvas }

func (s *BrailleSurface) Size() (float64, float64) {
	w, h := s.canvas.Dots()
	return float64(w), float64(h)
}

func (s *BrailleSurface) Clear(render.Color) {
	s.canvas.Clear()
}

func (s *BrailleSurface) FillRect(x, y, w, h float64, c render.Color) {
	plot := s.plotter(c)
	if plot == nil {
		return
	}
	x0, y0 := int(math.Floor(x)), int(math.Floor(y))
	x1, y1 := int(math.Ceil(x+w)), int(math.Ceil(y+h))
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			plot(px, py)
		}
	}
}

func (s *BrailleSurface) StrokeRect(x, y, w, h, width float64, c render.Color) {
	s.Line(x, y, x+w, y, width, c)
	s.Line(x+w, y, x+w, y+h, width, c)
	s.Line(x+w, y+h, x, y+h, width, c)
	s.Line(x, y+h, x, y, width, c)
}

func (s *BrailleSurface) Line(x0, y0, x1, y1, _ float64, c render.Color) {
	if !lit(c) {
		return
	}
	s.canvas.DrawLine(round(x0), round(y0), round(x1), round(y1), hexOf(c))
}

func (s *BrailleSurface) FillCircle(cx, cy, r float64, c render.Color) {
	plot := s.plotter(c)
	if plot == nil {
		return
	}
	plot(int(cx), int(cy))
	for py := int(math.Floor(cy - r)); py <= int(math.Ceil(cy+r)); py++ {
		for px := int(math.Floor(cx - r)); px <= int(math.Ceil(cx+r)); px++ {
			dx, dy := float64(px)+0.5-cx, float64(py)+0.5-cy
			if dx*dx+dy*dy <= r*r {
				plot(px, py)
			}
		}
	}
}

func (s *BrailleSurface) Arc(cx, cy, r, start, sweep, _ float64, c render.Color) {
	if !lit(c) || r <= 0 {
		return
	}
	color := hexOf(c)
	n := int(math.Max(16, math.Abs(sweep)*r))
	for i := 0; i <= n; i++ {
		a := start + sweep*float64(i)/float64(n)
		s.canvas.SetColor(round(cx+r*math.Cos(a)), round(cy+r*math.Sin(a)), color)
	}
}

func (s *BrailleSurface) FillTriangle(x0, y0, x1, y1, x2, y2 float64, c render.Color) {
	plot := s.plotter(c)
	if plot == nil {
		return
	}
	minX := int(math.Floor(math.Min(x0, math.Min(x1, x2))))
	maxX := int(math.Ceil(math.Max(x0, math.Max(x1, x2))))
	minY := int(math.Floor(math.Min(y0, math.Min(y1, y2))))
	maxY := int(math.Ceil(math.Max(y0, math.Max(y1, y2))))

	edge := func(ax, ay, bx, by, px, py float64) float64 {
		return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
	}
	area := edge(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		s.canvas.DrawLine(round(x0), round(y0), round(x2), round(y2), hexOf(c))
		return
	}
	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			fx, fy := float64(px)+0.5, float64(py)+0.5
			w0 := edge(x1, y1, x2, y2, fx, fy) / area
			w1 := edge(x2, y2, x0, y0, fx, fy) / area
			w2 := edge(x0, y0, x1, y1, fx, fy) / area
			if w0 >= 0 && w1 >= 0 && w2 >= 0 {
				plot(px, py)
			}
		}
	}
	s.canvas.SetColor(round((x0+x1+x2)/3), round((y0+y1+y2)/3), hexOf(c))
}

// Text writes s as characters in the cell row holding the baseline.
func (s *BrailleSurface) Text(x, y float64, str string, _ float64, c render.Color) {
	if c.A <= 0 {
		return
	}
	row := int(math.Floor((y - 1) / 4))
	col := round(x/2) - utf8.RuneCountInString(str)/2
	s.canvas.PutText(col, row, str, hexOf(c))
}

// plotter returns the dot operation for c, or nil if c draws nothing.
func (s *BrailleSurface) plotter(c render.Color) func(x, y int) {
	switch {
	case lit(c):
		color := hexOf(c)
		return func(x, y int) { s.canvas.SetColor(x, y, color) }
	case c.A >= eraseAlpha:
		return s.canvas.Unset
	default:
		return nil
	}
}

func brightness(c render.Color) float64 {
	m := math.Max(float64(c.R), math.Max(float64(c.G), float64(c.B)))
	return m / 255 * c.A
}

func lit(c render.Color) bool {
	return brightness(c) >= litThreshold
}

func hexOf(c render.Color) lipgloss.Color {
	return lipgloss.Color(hexColor(int(c.R), int(c.G), int(c.B)))
}

func round(v float64) int {
	return int(math.Round(v))
}
