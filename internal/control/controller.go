package control

import (
	"time"

	"github.com/san-kum/retrotennis/internal/input"
	"github.com/san-kum/retrotennis/internal/physics"
)

// Frame is everything a driver may look at when moving its paddle.
type Frame struct {
	Input input.State
	Ball  physics.Ball
	Field physics.Field
	Dt    time.Duration
}

type Controller interface {
	Drive(p *physics.Paddle, f Frame)
	Reset()
}

// Releaser is implemented by controllers that react to a key release as it
// happens rather than on their next Drive.
type Releaser interface {
	Release(k input.Key)
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
