package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/retrotennis/internal/config"
	"github.com/san-kum/retrotennis/internal/control"
	"github.com/san-kum/retrotennis/internal/input"
	"github.com/san-kum/retrotennis/internal/metrics"
	"github.com/san-kum/retrotennis/internal/physics"
)

const (
	leftSide  = physics.SideLeft
	rightSide = physics.SideRight
)

type ControllerFactory func(side physics.Side, cfg *config.Config) control.Controller

type Registry struct {
	controllers map[string]ControllerFactory
}

func NewRegistry() *Registry {
	r := &Registry{controllers: make(map[string]ControllerFactory)}

	r.Register("autopilot", func(side physics.Side, cfg *config.Config) control.Controller {
		return control.NewAutopilot(side, cfg.Physics(), cfg.Autopilot())
	})
	r.Register("idle", func(side physics.Side, cfg *config.Config) control.Controller {
		return control.NewIdle(cfg.Physics())
	})
	// keyboard paddles never move headlessly; useful as a stationary wall
	// that still applies friction.
	r.Register("keyboard", func(side physics.Side, cfg *config.Config) control.Controller {
		b := input.LeftBinding
		if side == physics.SideRight {
			b = input.RightBinding
		}
		return control.NewKeyboard(b, cfg.Physics())
	})

	return r
}

// Register adds or replaces a named controller factory.
func (r *Registry) Register(name string, fn ControllerFactory) {
	r.controllers[name] = fn
}

func (r *Registry) GetController(name string, side physics.Side, cfg *config.Config) (control.Controller, error) {
	fn, ok := r.controllers[name]
	if !ok {
		return nil, fmt.Errorf("unknown controller: %s", name)
	}
	return fn(side, cfg), nil
}

func (r *Registry) ListControllers() []string {
	names := make([]string, 0, len(r.controllers))
	for name := range r.controllers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) DefaultMetrics() []metrics.Metric {
	return metrics.Default()
}
