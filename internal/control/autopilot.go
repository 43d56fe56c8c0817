package control

import (
	"math"

	"github.com/san-kum/retrotennis/internal/physics"
)

type AutopilotParams struct {
	Difficulty float64 // fraction of the base paddle speed
	DeadZone   float64
}

// Autopilot tracks the predicted arrival point of the ball. The prediction
// folds the straight-line path off the walls once and ignores later
// curvature and bounce spin, so fast spinning balls fool it.
type Autopilot struct {
	Side physics.Side

	params physics.Params
	ai     AutopilotParams
}

func NewAutopilot(side physics.Side, params physics.Params, ai AutopilotParams) *Autopilot {
	return &Autopilot{Side: side, params: params, ai: ai}
}

func (a *Autopilot) Drive(p *physics.Paddle, f Frame) {
	diff := a.Predict(p, f.Ball, f.Field) - p.Center()
	if math.Abs(diff) > a.ai.DeadZone {
		p.Speed = math.Copysign(a.params.PaddleSpeed*a.ai.Difficulty, diff)
	} else {
		p.Speed = 0
	}
	physics.Integrate(p, f.Field)
}

// Predict returns the y coordinate the paddle should aim its centre at.
func (a *Autopilot) Predict(p *physics.Paddle, b physics.Ball, f physics.Field) float64 {
	face := p.X
	incoming := b.SpeedX > 0
	if a.Side == physics.SideLeft {
		face = p.X + p.Width
		incoming = b.SpeedX < 0
	}
	if !incoming {
		return b.Y
	}

	t := (face - b.X) / b.SpeedX
	y := b.Y + b.SpeedY*t + b.Spin*a.params.SpinCurve*t*t
	return fold(y, f.Height)
}

func (a *Autopilot) Reset() {}

// fold reflects y off the walls by counting whole field heights. The
// remainder keeps the sign of y, so a projection above the top wall lands
// below the field and the paddle overshoots.
func fold(y, h float64) float64 {
	if h <= 0 {
		return y
	}
	r := math.Mod(y, h)
	if int64(math.Floor(y/h))%2 == 0 {
		return r
	}
	return h - r
}
