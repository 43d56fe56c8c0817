// Package gui plays the game in a raylib window.
package gui

import (
	"io"
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/retrotennis/internal/game"
	"github.com/san-kum/retrotennis/internal/input"
	"github.com/san-kum/retrotennis/internal/loop"
	"github.com/san-kum/retrotennis/internal/render"
)

var keymap = []struct {
	code int32
	key  input.Key
}{
	{rl.KeyW, input.KeyW},
	{rl.KeyS, input.KeyS},
	{rl.KeyUp, input.KeyUp},
	{rl.KeyDown, input.KeyDown},
	{rl.KeyO, input.KeyO},
	{rl.KeyL, input.KeyL},
	{rl.KeySpace, input.KeySpace},
	{rl.KeyEnter, input.KeyEnter},
	{rl.KeyP, input.KeyP},
	{rl.KeyR, input.KeyR},
	{rl.KeyM, input.KeyM},
	{rl.KeyQ, input.KeyQ},
	{rl.KeyEscape, input.KeyEscape},
}

// Muter is the part of the audio collaborator the window controls.
type Muter interface {
	ToggleMute() bool
}

type Options struct {
	Title string
	Sound Muter
	// Score is drawn over the court when set. The engine must have been
	// built with it as its score display.
	Score  *Scoreboard
	Logger *log.Logger
}

type App struct {
	engine   *game.Engine
	driver   *loop.Driver
	renderer *render.Renderer
	sound    Muter
	score    *Scoreboard
	logger   *log.Logger

	last time.Time
	quit bool
}

func NewApp(e *game.Engine, opts Options) (*App, error) {
	cfg := e.Config()
	mode, err := loop.ParseMode(cfg.Loop.Mode)
	if err != nil {
		return nil, err
	}
	a := &App{
		engine:   e,
		renderer: render.NewRenderer(),
		sound:    opts.Sound,
		score:    opts.Score,
		logger:   opts.Logger,
	}
	if a.logger == nil {
		a.logger = log.New(io.Discard, "", 0)
	}
	a.driver = loop.New(mode, cfg.Loop.StepHz, cfg.Loop.MaxSteps, e.Step, nil)
	return a, nil
}

// Frame feeds the keys held this frame to the engine and advances it. Edges
// are found by comparing down with the engine's key tracker.
func (a *App) Frame(now time.Time, down map[input.Key]bool) {
	keys := a.engine.Keys()
	for _, km := range keymap {
		if keys.IsDown(km.key) && !down[km.key] {
			a.engine.OnKeyUp(km.key)
		}
	}
	for _, km := range keymap {
		if down[km.key] && !keys.IsDown(km.key) {
			a.press(km.key)
		}
	}

	var dt time.Duration
	if !a.last.IsZero() {
		dt = now.Sub(a.last)
	}
	a.last = now

	a.driver.Frame(now)
	a.renderer.Tick(dt)
}

func (a *App) press(k input.Key) {
	switch k {
	case input.KeyEnter:
		a.engine.Start()
	case input.KeyP:
		a.engine.TogglePause()
	case input.KeyR:
		a.engine.Reset()
	case input.KeyM:
		if a.sound != nil {
			a.logger.Printf("muted: %v", a.sound.ToggleMute())
		}
	case input.KeyQ, input.KeyEscape:
		a.quit = true
	}
	a.engine.OnKeyDown(k)
}

// Quit reports whether the player asked to leave.
func (a *App) Quit() bool { return a.quit }

func (a *App) Draw(s render.Surface) error {
	if err := a.renderer.Render(s, a.engine.Snapshot()); err != nil {
		return err
	}
	if a.score != nil {
		a.score.Draw(s, a.renderer.Theme.Text)
	}
	return nil
}

func pollKeys() map[input.Key]bool {
	down := make(map[input.Key]bool, len(keymap))
	for _, km := range keymap {
		if rl.IsKeyDown(km.code) {
			down[km.key] = true
		}
	}
	return down
}

func initWindow(w, h int32, title string) {
	rl.InitWindow(w, h, title)
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

// Run opens a window the size of the field and blocks until it closes.
func Run(e *game.Engine, opts Options) error {
	app, err := NewApp(e, opts)
	if err != nil {
		return err
	}
	if opts.Title == "" {
		opts.Title = "Modern Retro Tennis"
	}
	cfg := e.Config()
	f := cfg.FieldDims()
	initWindow(int32(f.Width), int32(f.Height), opts.Title)
	defer rl.CloseWindow()

	for !rl.WindowShouldClose() && !app.Quit() {
		app.Frame(time.Now(), pollKeys())

		rl.BeginDrawing()
		if err := app.Draw(screen{}); err != nil {
			app.logger.Printf("gui: %v", err)
		}
		rl.EndDrawing()
	}
	return nil
}
