package render

import "github.com/san-kum/retrotennis/internal/physics"

// view maps field coordinates onto a surface.
type view struct {
	s      Surface
	field  physics.Field
	sx, sy float64
	sr     float64
}

func newView(s Surface, f physics.Field) view {
	w, h := s.Size()
	if f.Width <= 0 || f.Height <= 0 {
		f = physics.Field{Width: w, Height: h}
	}
	sx, sy := w/f.Width, h/f.Height
	return view{s: s, field: f, sx: sx, sy: sy, sr: (sx + sy) / 2}
}

func (v view) fillRect(x, y, w, h float64, c Color) {
	v.s.FillRect(x*v.sx, y*v.sy, w*v.sx, h*v.sy, c)
}

func (v view) strokeRect(x, y, w, h, width float64, c Color) {
	v.s.StrokeRect(x*v.sx, y*v.sy, w*v.sx, h*v.sy, width*v.sr, c)
}

func (v view) line(x0, y0, x1, y1, width float64, c Color) {
	v.s.Line(x0*v.sx, y0*v.sy, x1*v.sx, y1*v.sy, width*v.sr, c)
}

func (v view) fillCircle(cx, cy, r float64, c Color) {
	v.s.FillCircle(cx*v.sx, cy*v.sy, r*v.sr, c)
}

func (v view) arc(cx, cy, r, start, sweep, width float64, c Color) {
	v.s.Arc(cx*v.sx, cy*v.sy, r*v.sr, start, sweep, width*v.sr, c)
}

func (v view) fillTriangle(x0, y0, x1, y1, x2, y2 float64, c Color) {
	v.s.FillTriangle(x0*v.sx, y0*v.sy, x1*v.sx, y1*v.sy, x2*v.sx, y2*v.sy, c)
}

func (v view) text(x, y float64, s string, size float64, c Color) {
	v.s.Text(x*v.sx, y*v.sy, s, size*v.sy, c)
}
