package control

import "github.com/san-kum/retrotennis/internal/physics"

// Idle applies friction and nothing else.
type Idle struct {
	params physics.Params
}

func NewIdle(params physics.Params) *Idle {
	return &Idle{params: params}
}

func (n *Idle) Drive(p *physics.Paddle, f Frame) {
	physics.ApplyFriction(p, n.params)
	physics.Integrate(p, f.Field)
}

func (n *Idle) Reset() {}
