package render

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

const circleSegments = 32

// Raster is a Surface backed by an in-memory RGBA image. Shapes are
// anti-aliased; text uses a fixed 7x13 bitmap face and ignores size.
type Raster struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

func NewRaster(w, h int) *Raster {
	return &Raster{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		z:   vector.NewRasterizer(w, h),
	}
}

func (r *Raster) Image() *image.RGBA { return r.img }

func (r *Raster) Size() (float64, float64) {
	b := r.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (r *Raster) Clear(c Color) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
}

func (r *Raster) FillRect(x, y, w, h float64, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	r.polygon(c, x, y, x+w, y, x+w, y+h, x, y+h)
}

func (r *Raster) StrokeRect(x, y, w, h, width float64, c Color) {
	hw := width / 2
	r.FillRect(x-hw, y-hw, w+width, width, c)
	r.FillRect(x-hw, y+h-hw, w+width, width, c)
	r.FillRect(x-hw, y+hw, width, h-width, c)
	r.FillRect(x+w-hw, y+hw, width, h-width, c)
}

func (r *Raster) Line(x0, y0, x1, y1, width float64, c Color) {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 || width <= 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	r.polygon(c, x0+nx, y0+ny, x1+nx, y1+ny, x1-nx, y1-ny, x0-nx, y0-ny)
}

func (r *Raster) FillCircle(cx, cy, rad float64, c Color) {
	if rad <= 0 {
		return
	}
	pts := make([]float64, 0, circleSegments*2)
	for i := 0; i < circleSegments; i++ {
		a := float64(i) / circleSegments * 2 * math.Pi
		pts = append(pts, cx+math.Cos(a)*rad, cy+math.Sin(a)*rad)
	}
	r.polygon(c, pts...)
}

func (r *Raster) Arc(cx, cy, rad, start, sweep, width float64, c Color) {
	if rad <= 0 || sweep == 0 {
		return
	}
	n := int(math.Ceil(math.Abs(sweep) / (2 * math.Pi) * circleSegments))
	if n < 2 {
		n = 2
	}
	outer, inner := rad+width/2, math.Max(rad-width/2, 0)
	pts := make([]float64, 0, (n+1)*4)
	for i := 0; i <= n; i++ {
		a := start + sweep*float64(i)/float64(n)
		pts = append(pts, cx+math.Cos(a)*outer, cy+math.Sin(a)*outer)
	}
	for i := n; i >= 0; i-- {
		a := start + sweep*float64(i)/float64(n)
		pts = append(pts, cx+math.Cos(a)*inner, cy+math.Sin(a)*inner)
	}
	r.polygon(c, pts...)
}

func (r *Raster) FillTriangle(x0, y0, x1, y1, x2, y2 float64, c Color) {
	r.polygon(c, x0, y0, x1, y1, x2, y2)
}

func (r *Raster) Text(x, y float64, s string, _ float64, c Color) {
	if c.A <= 0 || s == "" {
		return
	}
	face := basicfont.Face7x13
	w := font.MeasureString(face, s).Round()
	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(c.NRGBA()),
		Face: face,
		Dot:  fixed.P(int(math.Round(x))-w/2, int(math.Round(y))),
	}
	d.DrawString(s)
}

// polygon fills the closed path through pts, given as x, y pairs.
func (r *Raster) polygon(c Color, pts ...float64) {
	if c.A <= 0 || len(pts) < 6 {
		return
	}
	b := r.img.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
	r.z.DrawOp = draw.Over
	r.z.MoveTo(float32(pts[0]), float32(pts[1]))
	for i := 2; i+1 < len(pts); i += 2 {
		r.z.LineTo(float32(pts[i]), float32(pts[i+1]))
	}
	r.z.ClosePath()
	r.z.Draw(r.img, b, image.NewUniform(c.NRGBA()), image.Point{})
}
