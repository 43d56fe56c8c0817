package control

import (
	"slices"

	"github.com/san-kum/retrotennis/internal/input"
	"github.com/san-kum/retrotennis/internal/physics"
)

// Keyboard drives a paddle from held keys. Holding a direction ramps the
// target speed up over time; releasing it resets that direction's ramp.
type Keyboard struct {
	Binding input.Binding

	params   physics.Params
	holdUp   float64
	holdDown float64
}

func NewKeyboard(b input.Binding, params physics.Params) *Keyboard {
	return &Keyboard{Binding: b, params: params}
}

func (k *Keyboard) Drive(p *physics.Paddle, f Frame) {
	physics.ApplyFriction(p, k.params)

	dt := millis(f.Dt)
	if f.Input.Any(k.Binding.Up...) {
		k.holdUp += dt
		physics.Accelerate(p, -1, k.holdUp, k.params)
	} else {
		k.holdUp = 0
	}
	if f.Input.Any(k.Binding.Down...) {
		k.holdDown += dt
		physics.Accelerate(p, 1, k.holdDown, k.params)
	} else {
		k.holdDown = 0
	}

	physics.Integrate(p, f.Field)
}

// Hold returns the accumulated hold time in milliseconds for each direction.
func (k *Keyboard) Hold() (up, down float64) {
	return k.holdUp, k.holdDown
}

// Release clears the ramp of the direction k is bound to, even while the
// match is not stepping.
func (k *Keyboard) Release(key input.Key) {
	if slices.Contains(k.Binding.Up, key) {
		k.holdUp = 0
	}
	if slices.Contains(k.Binding.Down, key) {
		k.holdDown = 0
	}
}

func (k *Keyboard) Reset() {
	k.holdUp = 0
	k.holdDown = 0
}
