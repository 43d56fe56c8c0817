// Package experiment runs matches without a frontend. Both paddles are driven
// by registry controllers and every frame is fed to a metrics set.
package experiment

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/san-kum/retrotennis/internal/config"
	"github.com/san-kum/retrotennis/internal/game"
	"github.com/san-kum/retrotennis/internal/metrics"
)

const DefaultMaxFrames = 60 * 60 * 10

var ErrNotSetup = errors.New("experiment: not set up")

type Config struct {
	Game      config.Config
	Left      string
	Right     string
	Seed      int64
	MaxFrames int
	// Params overrides tunable config values by name before the match starts.
	Params map[string]float64
}

type Result struct {
	Score    game.Score
	Winner   string
	Frames   int
	Finished bool
	Metrics  map[string]float64
	// Spin and Speed hold the ball's spin and speed for every played frame.
	Spin  []float64
	Speed []float64
}

type Experiment struct {
	cfg        Config
	engine     *game.Engine
	set        *metrics.Set
	randSource *rand.Rand
}

func New(cfg Config) *Experiment {
	if cfg.Left == "" {
		cfg.Left = "autopilot"
	}
	if cfg.Right == "" {
		cfg.Right = "autopilot"
	}
	if cfg.MaxFrames <= 0 {
		cfg.MaxFrames = DefaultMaxFrames
	}
	return &Experiment{
		cfg:        cfg,
		randSource: rand.New(rand.NewSource(cfg.Seed)),
	}
}

func (e *Experiment) Setup(reg *Registry, ms []metrics.Metric) error {
	gc := e.cfg.Game
	for name, v := range e.cfg.Params {
		if err := gc.SetParam(name, v); err != nil {
			return err
		}
	}
	gc.Seed = e.cfg.Seed

	left, err := reg.GetController(e.cfg.Left, leftSide, &gc)
	if err != nil {
		return err
	}
	right, err := reg.GetController(e.cfg.Right, rightSide, &gc)
	if err != nil {
		return err
	}

	e.set = metrics.NewSet(ms...)
	e.engine, err = game.New(gc,
		game.WithRand(e.randSource),
		game.WithLeftController(left),
		game.WithRightController(right),
		game.WithObserver(e.set),
	)
	return err
}

// Run plays one match to game over or the frame cap.
func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if e.engine == nil {
		return nil, ErrNotSetup
	}

	dt := time.Second / 60
	if hz := e.engine.Config().Loop.StepHz; hz > 0 {
		dt = time.Duration(float64(time.Second) / hz)
	}

	res := &Result{
		Spin:  make([]float64, 0, 1024),
		Speed: make([]float64, 0, 1024),
	}
	e.set.Reset()
	e.engine.Start()
	for res.Frames < e.cfg.MaxFrames {
		if res.Frames%256 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("experiment: frame %d: %w", res.Frames, err)
			}
		}
		e.engine.Step(dt)
		res.Frames++

		snap := e.engine.Snapshot()
		res.Spin = append(res.Spin, snap.Ball.Spin)
		res.Speed = append(res.Speed, snap.Ball.Speed())
		if snap.State == game.GameOver {
			res.Finished = true
			break
		}
	}

	snap := e.engine.Snapshot()
	res.Score = snap.Score
	if res.Finished {
		res.Winner = snap.Winner().String()
	}
	res.Metrics = e.set.Values()
	return res, nil
}

func (e *Experiment) Engine() *game.Engine {
	return e.engine
}
