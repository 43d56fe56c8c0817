// Package loop paces the engine against wall-clock time.
//
// A [Driver] is called once per displayed frame. In [Variable] mode it
// passes the measured frame time straight to the update function, so game
// speed follows the display rate. In [Fixed] mode it accumulates elapsed
// time and runs whole steps of a fixed length, dropping the backlog when a
// frame would need more than the step cap.
package loop

import (
	"fmt"
	"time"
)

type Mode int

const (
	Variable Mode = iota
	Fixed
)

func (m Mode) String() string {
	if m == Fixed {
		return "fixed"
	}
	return "variable"
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "variable":
		return Variable, nil
	case "fixed", "":
		return Fixed, nil
	default:
		return Variable, fmt.Errorf("loop: unknown mode %q", s)
	}
}

type Driver struct {
	mode     Mode
	step     time.Duration
	maxSteps int
	update   func(dt time.Duration)
	render   func()

	last    time.Time
	started bool
	acc     time.Duration
	dropped int
}

// New returns a driver calling update for simulation steps and render once
// per frame. render may be nil.
func New(mode Mode, stepHz float64, maxSteps int, update func(time.Duration), render func()) *Driver {
	if stepHz <= 0 {
		stepHz = 60
	}
	if maxSteps < 1 {
		maxSteps = 1
	}
	return &Driver{
		mode:     mode,
		step:     time.Duration(float64(time.Second) / stepHz),
		maxSteps: maxSteps,
		update:   update,
		render:   render,
	}
}

func (d *Driver) Mode() Mode { return d.mode }

// StepSize is the fixed step length.
func (d *Driver) StepSize() time.Duration { return d.step }

// Dropped counts fixed steps discarded because a frame hit the step cap.
func (d *Driver) Dropped() int { return d.dropped }

// Frame runs one frame at time now and returns the number of update calls
// made. The first frame measures zero elapsed time.
func (d *Driver) Frame(now time.Time) int {
	var elapsed time.Duration
	if d.started {
		elapsed = now.Sub(d.last)
		if elapsed < 0 {
			elapsed = 0
		}
	}
	d.last = now
	d.started = true

	steps := 0
	switch d.mode {
	case Variable:
		d.update(elapsed)
		steps = 1
	case Fixed:
		d.acc += elapsed
		for d.acc >= d.step && steps < d.maxSteps {
			d.update(d.step)
			d.acc -= d.step
			steps++
		}
		if d.acc >= d.step {
			d.dropped += int(d.acc / d.step)
			d.acc %= d.step
		}
	}

	if d.render != nil {
		d.render()
	}
	return steps
}

// Reset forgets the previous frame time and any accumulated backlog.
func (d *Driver) Reset() {
	d.started = false
	d.acc = 0
}
