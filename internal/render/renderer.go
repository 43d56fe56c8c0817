package render

import (
	"fmt"
	"math"
	"time"

	"github.com/san-kum/retrotennis/internal/game"
	"github.com/san-kum/retrotennis/internal/physics"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	gridSize     = 40.0
	dashOn       = 10.0
	dashOff      = 15.0
	trailReach   = 30.0
	echoReach    = 15.0
	echoAlpha    = 0.15
	spinArcRatio = 0.7
	maxSpinSweep = 1.8 * math.Pi
)

type Renderer struct {
	Theme        Theme
	FadeDuration time.Duration

	overlay game.State
	seen    bool
	fade    *gween.Tween
	alpha   float64
}

func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme, FadeDuration: 300 * time.Millisecond}
}

// Tick advances the overlay fade by dt.
func (r *Renderer) Tick(dt time.Duration) {
	if r.fade == nil {
		return
	}
	v, done := r.fade.Update(float32(dt.Seconds()))
	r.alpha = float64(v)
	if done {
		r.fade = nil
	}
}

// OverlayAlpha is the current opacity of the state overlay.
func (r *Renderer) OverlayAlpha() float64 {
	return r.alpha
}

func (r *Renderer) Render(s Surface, snap game.Snapshot) error {
	if s == nil {
		return ErrNoSurface
	}
	v := newView(s, snap.Field)
	r.trackOverlay(snap.State)

	v.s.Clear(r.Theme.Background)
	r.drawGrid(v)
	r.drawCenterLine(v)
	r.drawPaddle(v, snap.Left, r.Theme.Left, snap.MaxPaddleSpeed)
	r.drawPaddle(v, snap.Right, r.Theme.Right, snap.MaxPaddleSpeed)
	r.drawBall(v, snap.Ball, snap.MaxBallSpeed)

	switch snap.State {
	case game.Menu:
		r.drawMenu(v)
	case game.Paused:
		r.drawPaused(v)
	case game.GameOver:
		r.drawGameOver(v, snap)
	}
	return nil
}

func (r *Renderer) trackOverlay(st game.State) {
	if r.seen && st == r.overlay {
		return
	}
	r.seen = true
	r.overlay = st
	r.fade = nil

	if st == game.Playing {
		r.alpha = 0
		return
	}
	if r.FadeDuration <= 0 {
		r.alpha = 1
		return
	}
	r.alpha = 0
	r.fade = gween.New(0, 1, float32(r.FadeDuration.Seconds()), ease.OutQuad)
}

func (r *Renderer) drawGrid(v view) {
	if r.Theme.Grid.A <= 0 {
		return
	}
	for x := 0.0; x <= v.field.Width; x += gridSize {
		v.line(x, 0, x, v.field.Height, 1, r.Theme.Grid)
	}
	for y := 0.0; y <= v.field.Height; y += gridSize {
		v.line(0, y, v.field.Width, y, 1, r.Theme.Grid)
	}
}

func (r *Renderer) drawCenterLine(v view) {
	x := v.field.Width / 2
	for y := 0.0; y < v.field.Height; y += dashOn + dashOff {
		end := math.Min(y+dashOn, v.field.Height)
		v.line(x, y, x, end, 2, r.Theme.CenterLine)
	}
}

func (r *Renderer) drawPaddle(v view, p physics.Paddle, c Color, maxSpeed float64) {
	v.fillRect(p.X, p.Y, p.Width, p.Height, c)

	if math.Abs(p.Speed) > 1 && maxSpeed > 0 {
		f := math.Min(math.Abs(p.Speed)/maxSpeed, 1)
		length := f * trailReach
		trail := c.WithAlpha(0.3 + f*0.2)

		if p.Speed < 0 {
			v.fillRect(p.X, p.Y+p.Height, p.Width, length, trail)
		} else {
			v.fillRect(p.X, p.Y-length, p.Width, length, trail)
		}

		if f > 0.7 {
			echo := f * echoReach
			if p.Speed < 0 {
				v.fillRect(p.X, p.Y+p.Height+length, p.Width, echo, c.WithAlpha(echoAlpha))
			} else {
				v.fillRect(p.X, p.Y-length-echo, p.Width, echo, c.WithAlpha(echoAlpha))
			}
		}
	}

	v.strokeRect(p.X, p.Y, p.Width, p.Height, 2, r.Theme.Outline)
}

// BallColor tints the base ball colour warm for positive spin and cool for
// negative spin.
func BallColor(base Color, spin float64) Color {
	i := math.Min(math.Abs(spin)/3, 1)
	switch {
	case spin > 0:
		return RGBA(255, uint8(math.Floor(204-i*100)), uint8(math.Floor(i*50)), base.A)
	case spin < 0:
		return RGBA(uint8(math.Floor(255-i*100)), uint8(math.Floor(204+i*50)), 255, base.A)
	default:
		return base
	}
}

func (r *Renderer) drawBall(v view, b physics.Ball, maxSpeed float64) {
	v.fillCircle(b.X, b.Y, b.Radius, BallColor(r.Theme.Ball, b.Spin))

	if math.Abs(b.Spin) > 0.1 {
		r.drawSpin(v, b)
	}

	speed := b.Speed()
	if speed == 0 || maxSpeed <= 0 {
		return
	}
	f := math.Min(speed/maxSpeed, 1)
	if f <= 0.2 {
		return
	}
	for i := 1; i <= 3; i++ {
		tf := float64(i) / 3
		alpha := (1 - tf) * f * 0.5
		if alpha <= 0 {
			continue
		}
		v.line(
			b.X-b.SpeedX*tf*2, b.Y-b.SpeedY*tf*2,
			b.X-b.SpeedX*tf*4, b.Y-b.SpeedY*tf*4,
			b.Radius*f*(1-tf*0.5),
			r.Theme.Ball.WithAlpha(alpha),
		)
	}
}

func (r *Renderer) drawSpin(v view, b physics.Ball) {
	dir := 1.0
	if b.Spin < 0 {
		dir = -1
	}
	i := math.Min(math.Abs(b.Spin)/2, 1)
	sweep := dir * i * maxSpinSweep
	radius := b.Radius * spinArcRatio

	var c Color
	if dir > 0 {
		c = RGBA(255, uint8(math.Floor(255-i*150)), uint8(math.Floor(255-i*200)), 0.8)
	} else {
		c = RGBA(uint8(math.Floor(255-i*150)), uint8(math.Floor(255-i*150)), 255, 0.8)
	}
	v.arc(b.X, b.Y, radius, 0, sweep, 2+i*2, c)

	tipX := b.X + math.Cos(sweep)*radius
	tipY := b.Y + math.Sin(sweep)*radius
	head := 5 + i*3
	wing := dir * math.Pi / 6
	v.fillTriangle(
		tipX, tipY,
		tipX+math.Cos(sweep+wing)*head, tipY+math.Sin(sweep+wing)*head,
		tipX+math.Cos(sweep-wing)*head, tipY+math.Sin(sweep-wing)*head,
		c,
	)
}

func (r *Renderer) shade(v view) {
	v.fillRect(0, 0, v.field.Width, v.field.Height, r.Theme.Shade.Fade(r.alpha))
}

func (r *Renderer) drawMenu(v view) {
	r.shade(v)
	cx, cy := v.field.Width/2, v.field.Height/2
	v.text(cx, cy-50, "MODERN RETRO TENNIS", 40, r.Theme.Title.Fade(r.alpha))
	v.text(cx, cy+30, "PRESS SPACE TO START", 16, r.Theme.Text.Fade(r.alpha))
}

func (r *Renderer) drawPaused(v view) {
	r.shade(v)
	cx, cy := v.field.Width/2, v.field.Height/2
	v.text(cx, cy-20, "PAUSED", 30, r.Theme.Title.Fade(r.alpha))
	v.text(cx, cy+30, "PRESS P TO RESUME", 16, r.Theme.Text.Fade(r.alpha))
}

func (r *Renderer) drawGameOver(v view, snap game.Snapshot) {
	r.shade(v)
	cx, cy := v.field.Width/2, v.field.Height/2
	v.text(cx, cy-50, WinnerText(snap), 30, r.Theme.Title.Fade(r.alpha))
	v.text(cx, cy, fmt.Sprintf("%d - %d", snap.Score.Player, snap.Score.Opponent), 20, r.Theme.Text.Fade(r.alpha))
	v.text(cx, cy+50, "PRESS SPACE TO PLAY AGAIN", 16, r.Theme.Text.Fade(r.alpha))
}

// WinnerText names the winning side of a finished match.
func WinnerText(snap game.Snapshot) string {
	left := snap.Score.Player > snap.Score.Opponent
	switch {
	case snap.TwoPlayer && left:
		return "PLAYER 1 WINS!"
	case snap.TwoPlayer:
		return "PLAYER 2 WINS!"
	case left:
		return "PLAYER WINS!"
	default:
		return "CPU WINS!"
	}
}
