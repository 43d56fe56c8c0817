package game

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/san-kum/retrotennis/internal/config"
	"github.com/san-kum/retrotennis/internal/control"
	"github.com/san-kum/retrotennis/internal/input"
	"github.com/san-kum/retrotennis/internal/physics"
)

type Engine struct {
	cfg    config.Config
	params physics.Params
	field  physics.Field

	left  physics.Paddle
	right physics.Paddle
	ball  physics.Ball
	score Score
	state State
	frame uint64

	leftCtl  control.Controller
	rightCtl control.Controller
	leftSet  bool
	rightSet bool

	keys      *input.Tracker
	rnd       Rand
	sound     SoundPlayer
	display   ScoreDisplay
	observers []Observer
	logger    *log.Logger

	events []Event
}

// New builds an engine in the Menu state with paddles and ball in their
// starting positions.
func New(cfg config.Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInitialization, err)
	}

	e := &Engine{
		cfg:    cfg,
		params: cfg.Physics(),
		field:  cfg.FieldDims(),
		keys:   input.NewTracker(),
		state:  Menu,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.leftSet && e.leftCtl == nil {
		return nil, fmt.Errorf("%w: nil left controller", ErrInitialization)
	}
	if e.rightSet && e.rightCtl == nil {
		return nil, fmt.Errorf("%w: nil right controller", ErrInitialization)
	}
	if e.leftCtl == nil {
		e.leftCtl = control.NewKeyboard(input.LeftBinding, e.params)
	}
	if e.rightCtl == nil {
		if cfg.Match.TwoPlayer {
			e.rightCtl = control.NewKeyboard(input.RightBinding, e.params)
		} else {
			e.rightCtl = control.NewAutopilot(physics.SideRight, e.params, cfg.Autopilot())
		}
	}
	if e.rnd == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		e.rnd = rand.New(rand.NewSource(seed))
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard, "", 0)
	}

	e.rebuild()
	return e, nil
}

func (e *Engine) Config() config.Config { return e.cfg }

func (e *Engine) State() State { return e.state }

func (e *Engine) Score() Score { return e.score }

// Keys returns the tracker fed by OnKeyDown and OnKeyUp.
func (e *Engine) Keys() *input.Tracker { return e.keys }

func (e *Engine) OnKeyDown(k input.Key) {
	e.keys.KeyDown(k)
	if k == input.KeySpace && (e.state == Menu || e.state == GameOver) {
		e.Start()
	}
}

func (e *Engine) OnKeyUp(k input.Key) {
	e.keys.KeyUp(k)
	for _, c := range []control.Controller{e.leftCtl, e.rightCtl} {
		if r, ok := c.(control.Releaser); ok {
			r.Release(k)
		}
	}
}

// Start begins a new match from Menu or GameOver, or resumes a paused one.
func (e *Engine) Start() {
	switch e.state {
	case Menu, GameOver:
		e.state = Playing
		e.score = Score{}
		e.showScore()
		e.rebuild()
		e.play(SoundMatchStart)
	case Paused:
		e.state = Playing
	}
}

func (e *Engine) Pause() {
	if e.state == Playing {
		e.state = Paused
	}
}

func (e *Engine) Resume() {
	if e.state == Paused {
		e.state = Playing
	}
}

func (e *Engine) TogglePause() {
	switch e.state {
	case Playing:
		e.state = Paused
	case Paused:
		e.state = Playing
	}
}

// Reset abandons the match and returns to the menu.
func (e *Engine) Reset() {
	e.state = Menu
	e.score = Score{}
	e.showScore()
	e.rebuild()
}

// Step runs Update with the keys currently held.
func (e *Engine) Step(dt time.Duration) {
	e.Update(dt, e.keys.Snapshot())
}

// Update advances the match one frame. Outside Playing it does nothing.
func (e *Engine) Update(dt time.Duration, in input.State) {
	e.events = e.events[:0]
	if e.state != Playing {
		return
	}
	e.frame++

	fr := control.Frame{Input: in, Ball: e.ball, Field: e.field, Dt: dt}
	e.leftCtl.Drive(&e.left, fr)
	e.rightCtl.Drive(&e.right, fr)

	c := physics.StepBall(&e.ball, &e.left, &e.right, e.field, e.params)

	if c.Wall {
		e.emit(Event{Kind: EventWallBounce, Spin: e.ball.Spin, Speed: e.ball.Speed()})
	}
	if c.LeftHit {
		e.paddleHit(physics.SideLeft, e.left)
	}
	if c.RightHit {
		e.paddleHit(physics.SideRight, e.right)
	}
	if c.Goal != physics.SideNone {
		e.goal(c.Goal.Opposite())
	}

	if len(e.observers) > 0 {
		snap := e.Snapshot()
		for _, o := range e.observers {
			o.OnFrame(snap, e.events)
		}
	}
}

// Events returns what happened during the last Update. The slice is reused
// by the next call.
func (e *Engine) Events() []Event {
	return e.events
}

func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Frame:          e.frame,
		Left:           e.left,
		Right:          e.right,
		Ball:           e.ball,
		Score:          e.score,
		State:          e.state,
		Field:          e.field,
		TwoPlayer:      e.cfg.Match.TwoPlayer,
		ScoreToWin:     e.cfg.Match.ScoreToWin,
		MaxPaddleSpeed: e.params.MaxPaddleSpeed,
		MaxBallSpeed:   e.params.MaxBallSpeed,
	}
}

func (e *Engine) rebuild() {
	e.left = physics.NewPaddle(physics.SideLeft, e.field, e.params)
	e.right = physics.NewPaddle(physics.SideRight, e.field, e.params)
	e.ball = physics.Launch(e.field, e.params, e.rnd)
	e.leftCtl.Reset()
	e.rightCtl.Reset()
}

func (e *Engine) paddleHit(side physics.Side, p physics.Paddle) {
	e.emit(Event{Kind: EventPaddleHit, Side: side, Spin: e.ball.Spin, Speed: e.ball.Speed()})

	e.play(SoundHit)
	if s, ok := SpinSound(e.ball.Spin); ok {
		e.play(s)
	}
	if e.cfg.Debug {
		e.logger.Printf("%s paddle hit: speed=%.2f spin=%.2f", side, p.Speed, e.ball.Spin)
	}
}

func (e *Engine) goal(scorer physics.Side) {
	if scorer == physics.SideLeft {
		e.score.Player++
	} else {
		e.score.Opponent++
	}
	e.emit(Event{Kind: EventGoal, Side: scorer})
	e.showScore()

	if w := e.score.Winner(e.cfg.Match.ScoreToWin); w != physics.SideNone {
		e.state = GameOver
		e.emit(Event{Kind: EventGameOver, Side: w})
	}
	e.ball = physics.Launch(e.field, e.params, e.rnd)
}

func (e *Engine) emit(ev Event) {
	e.events = append(e.events, ev)
}

func (e *Engine) play(s Sound) {
	if e.sound == nil {
		return
	}
	defer e.recoverCollaborator("sound", func() { e.sound = nil })
	e.sound.Play(s)
}

func (e *Engine) showScore() {
	if e.display == nil {
		return
	}
	defer e.recoverCollaborator("score display", func() { e.display = nil })
	e.display.ShowScore(e.score.Player, e.score.Opponent)
}

func (e *Engine) recoverCollaborator(name string, detach func()) {
	if r := recover(); r != nil {
		err := &CollaboratorError{Name: name, Frame: e.frame, Value: r}
		e.logger.Printf("%v; detaching", err)
		detach()
	}
}
