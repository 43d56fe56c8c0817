package physics

import "math"

// Contacts reports what happened to the ball during one step.
type Contacts struct {
	Wall     bool
	LeftHit  bool
	RightHit bool
	// Goal is the side whose goal line the ball crossed. The other side
	// scores.
	Goal Side
}

func (c Contacts) Hit() bool {
	return c.LeftHit || c.RightHit
}

// StepBall advances the ball one frame against both paddles.
func StepBall(b *Ball, left, right *Paddle, f Field, prm Params) Contacts {
	var c Contacts

	b.Spin *= prm.SpinDecay

	b.SpeedY += b.Spin * prm.SpinCurve
	if math.Abs(b.Spin) > prm.XCurveThreshold {
		b.SpeedX += sign(b.SpeedX) * math.Abs(b.Spin) * prm.SpinCurve * prm.XCurveFraction
	}

	b.X += b.SpeedX
	b.Y += b.SpeedY

	c.Wall = bounceWalls(b, f, prm)

	if left != nil && b.SpeedX < 0 && overlaps(b, left) {
		deflect(b, left, 1, prm)
		b.X = left.X + left.Width + b.Radius
		c.LeftHit = true
	}
	if right != nil && b.SpeedX > 0 && overlaps(b, right) {
		deflect(b, right, -1, prm)
		b.X = right.X - b.Radius
		c.RightHit = true
	}

	switch {
	case b.X-b.Radius < 0:
		c.Goal = SideLeft
	case b.X+b.Radius > f.Width:
		c.Goal = SideRight
	}
	return c
}

// ImpartSpin returns the spin a paddle moving at speed adds to the ball.
func ImpartSpin(speed float64, prm Params) float64 {
	if prm.MaxPaddleSpeed == 0 {
		return speed * prm.SpinFactor
	}
	return speed * prm.SpinFactor * (1 + math.Abs(speed)/prm.MaxPaddleSpeed*2)
}

func bounceWalls(b *Ball, f Field, prm Params) bool {
	top := b.Y-b.Radius < 0
	if !top && b.Y+b.Radius <= f.Height {
		return false
	}
	b.SpeedY = -b.SpeedY + b.Spin*prm.SpinBounce
	b.SpeedX += b.Spin * prm.SpinBounce * prm.XBounceFraction
	if top {
		b.Y = b.Radius
	} else {
		b.Y = f.Height - b.Radius
	}
	b.Spin *= prm.WallFriction
	return true
}

func overlaps(b *Ball, p *Paddle) bool {
	return b.X-b.Radius <= p.X+p.Width &&
		b.X+b.Radius >= p.X &&
		b.Y+b.Radius >= p.Y &&
		b.Y-b.Radius <= p.Y+p.Height
}

// deflect sends the ball away from the paddle. away is +1 for the left
// paddle and -1 for the right one.
func deflect(b *Ball, p *Paddle, away float64, prm Params) {
	hit := clamp((b.Y-p.Center())/(p.Height/2), -1, 1)
	angle := hit * prm.MaxBounceAngle
	speed := math.Min(b.Speed()+prm.SpeedIncrement, prm.MaxBallSpeed)

	b.SpeedX = away * math.Cos(angle) * speed
	b.SpeedY = math.Sin(angle) * speed
	b.Spin += ImpartSpin(p.Speed, prm)
}
