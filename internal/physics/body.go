package physics

import "math"

type Field struct {
	Width  float64
	Height float64
}

// Side identifies a half of the court.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Opposite returns the other half of the court.
func (s Side) Opposite() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return SideNone
	}
}

type Paddle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Speed  float64
}

func (p Paddle) Center() float64 {
	return p.Y + p.Height/2
}

// Clamp keeps the paddle inside the field. Touching a wall stops the paddle
// dead; it reports whether that happened.
func (p *Paddle) Clamp(f Field) bool {
	if p.Y < 0 {
		p.Y = 0
		p.Speed = 0
		return true
	}
	if p.Y+p.Height > f.Height {
		p.Y = f.Height - p.Height
		p.Speed = 0
		return true
	}
	return false
}

type Ball struct {
	X      float64
	Y      float64
	Radius float64
	SpeedX float64
	SpeedY float64
	Spin   float64
}

func (b Ball) Speed() float64 {
	return math.Hypot(b.SpeedX, b.SpeedY)
}

// Direction returns the unit velocity vector, or (0, 0) for a ball at rest.
func (b Ball) Direction() (float64, float64) {
	s := b.Speed()
	if s == 0 {
		return 0, 0
	}
	return b.SpeedX / s, b.SpeedY / s
}

// NewPaddle places a paddle of the given side vertically centred, inset
// from its goal line.
func NewPaddle(side Side, f Field, p Params) Paddle {
	x := p.PaddleInset
	if side == SideRight {
		x = f.Width - p.PaddleInset - p.PaddleWidth
	}
	return Paddle{
		X:      x,
		Y:      f.Height/2 - p.PaddleHeight/2,
		Width:  p.PaddleWidth,
		Height: p.PaddleHeight,
	}
}
