package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/retrotennis/internal/render"
)

const (
	circleSegments = 32
	degPerRad      = 180 / math.Pi
)

// screen draws render primitives straight to the raylib window. Calls must
// happen between BeginDrawing and EndDrawing.
type screen struct{}

func (screen) Size() (float64, float64) {
	return float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight())
}

func (screen) Clear(c render.Color) {
	rl.ClearBackground(toRL(c))
}

func (screen) FillRect(x, y, w, h float64, c render.Color) {
	rl.DrawRectangleV(vec(x, y), vec(w, h), toRL(c))
}

func (screen) StrokeRect(x, y, w, h, width float64, c render.Color) {
	rl.DrawRectangleLinesEx(rl.NewRectangle(float32(x), float32(y), float32(w), float32(h)), float32(width), toRL(c))
}

func (screen) Line(x0, y0, x1, y1, width float64, c render.Color) {
	rl.DrawLineEx(vec(x0, y0), vec(x1, y1), float32(width), toRL(c))
}

func (screen) FillCircle(cx, cy, r float64, c render.Color) {
	rl.DrawCircleV(vec(cx, cy), float32(r), toRL(c))
}

func (screen) Arc(cx, cy, r, start, sweep, width float64, c render.Color) {
	from, to := ringAngles(start, sweep)
	rl.DrawRing(vec(cx, cy), float32(r-width/2), float32(r+width/2), from, to, circleSegments, toRL(c))
}

func (screen) FillTriangle(x0, y0, x1, y1, x2, y2 float64, c render.Color) {
	a, b, d := counterClockwise(x0, y0, x1, y1, x2, y2)
	rl.DrawTriangle(a, b, d, toRL(c))
}

func (screen) Text(x, y float64, s string, size float64, c render.Color) {
	fs := int32(math.Max(10, size))
	w := rl.MeasureText(s, fs)
	rl.DrawText(s, int32(x)-w/2, int32(y-size*0.8), fs, toRL(c))
}

func toRL(c render.Color) rl.Color {
	n := c.NRGBA()
	return rl.NewColor(n.R, n.G, n.B, n.A)
}

func vec(x, y float64) rl.Vector2 {
	return rl.NewVector2(float32(x), float32(y))
}

// ringAngles converts a signed sweep into the increasing degree range
// DrawRing expects.
func ringAngles(start, sweep float64) (float32, float32) {
	from, to := start, start+sweep
	if sweep < 0 {
		from, to = to, start
	}
	return float32(from * degPerRad), float32(to * degPerRad)
}

// counterClockwise orders the vertices the way raylib fills them on a
// y-down screen.
func counterClockwise(x0, y0, x1, y1, x2, y2 float64) (rl.Vector2, rl.Vector2, rl.Vector2) {
	cross := (x1-x0)*(y2-y0) - (y1-y0)*(x2-x0)
	if cross > 0 {
		return vec(x0, y0), vec(x2, y2), vec(x1, y1)
	}
	return vec(x0, y0), vec(x1, y1), vec(x2, y2)
}
