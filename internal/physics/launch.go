package physics

import "math"

// Rand is the random source used for serves. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Launch returns a fresh ball at the centre of the field travelling at the
// initial speed toward a random side, at an angle drawn uniformly from the
// launch cone.
func Launch(f Field, prm Params, rnd Rand) Ball {
	dir := -1.0
	if rnd.Float64() > 0.5 {
		dir = 1
	}
	angle := rnd.Float64()*prm.LaunchCone - prm.LaunchCone/2

	return Ball{
		X:      f.Width / 2,
		Y:      f.Height / 2,
		Radius: prm.BallRadius,
		SpeedX: prm.InitialBallSpeed * math.Cos(angle) * dir,
		SpeedY: prm.InitialBallSpeed * math.Sin(angle),
	}
}
