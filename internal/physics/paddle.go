package physics

import "math"

// ApplyFriction bleeds off a fraction of the paddle speed and snaps small
// residual speeds to zero.
func ApplyFriction(p *Paddle, prm Params) {
	if p.Speed == 0 {
		return
	}
	p.Speed *= 1 - prm.PaddleDeceleration
	if math.Abs(p.Speed) < prm.StopEpsilon {
		p.Speed = 0
	}
}

// HoldFactor maps a key hold duration in milliseconds to the acceleration
// factor in [0, MaxHoldFactor].
func HoldFactor(holdMs float64, prm Params) float64 {
	if prm.HoldRamp <= 0 {
		return prm.MaxHoldFactor
	}
	return math.Min(math.Max(holdMs, 0)/prm.HoldRamp, prm.MaxHoldFactor)
}

// TargetSpeed is the signed speed a paddle eases toward while a direction is
// held. dir is -1 for up and +1 for down.
func TargetSpeed(dir int, holdMs float64, prm Params) float64 {
	mag := prm.PaddleSpeed + prm.PaddleAcceleration*HoldFactor(holdMs, prm)*prm.PaddleBoost
	if dir < 0 {
		return -mag
	}
	return mag
}

// Accelerate eases the paddle speed toward the target for the held direction
// and clamps the result to the maximum paddle speed.
func Accelerate(p *Paddle, dir int, holdMs float64, prm Params) {
	if dir == 0 {
		return
	}
	target := TargetSpeed(dir, holdMs, prm)
	p.Speed += (target - p.Speed) * prm.Smoothing
	p.Speed = clamp(p.Speed, -prm.MaxPaddleSpeed, prm.MaxPaddleSpeed)
}

// Integrate moves the paddle by its speed and keeps it on the field.
func Integrate(p *Paddle, f Field) {
	p.Y += p.Speed
	p.Clamp(f)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
