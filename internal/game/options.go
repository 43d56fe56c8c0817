package game

import (
	"log"

	"github.com/san-kum/retrotennis/internal/control"
)

type Option func(*Engine)

func WithRand(r Rand) Option {
	return func(e *Engine) { e.rnd = r }
}

func WithSound(s SoundPlayer) Option {
	return func(e *Engine) { e.sound = s }
}

func WithScoreDisplay(d ScoreDisplay) Option {
	return func(e *Engine) { e.display = d }
}

func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

func WithLeftController(c control.Controller) Option {
	return func(e *Engine) {
		e.leftCtl = c
		e.leftSet = true
	}
}

func WithRightController(c control.Controller) Option {
	return func(e *Engine) {
		e.rightCtl = c
		e.rightSet = true
	}
}

func WithObserver(o Observer) Option {
	return func(e *Engine) {
		if o != nil {
			e.observers = append(e.observers, o)
		}
	}
}
