package control

import (
	"math"
	"testing"
	"time"

	"github.com/san-kum/retrotennis/internal/input"
	"github.com/san-kum/retrotennis/internal/physics"
)

var testParams = physics.Params{
	PaddleWidth:        15,
	PaddleHeight:       100,
	PaddleInset:        50,
	PaddleSpeed:        5,
	PaddleAcceleration: 0.5,
	PaddleBoost:        15,
	MaxPaddleSpeed:     20,
	PaddleDeceleration: 0.05,
	StopEpsilon:        0.1,
	Smoothing:          0.2,
	HoldRamp:           500,
	MaxHoldFactor:      2,
	BallRadius:         10,
	SpinCurve:          0.15,
}

var testField = physics.Field{Width: 800, Height: 500}

const frame = 16 * time.Millisecond

func TestKeyboardHoldAccumulates(t *testing.T) {
	k := NewKeyboard(input.LeftBinding, testParams)
	p := physics.NewPaddle(physics.SideLeft, testField, testParams)
	held := input.NewState(input.KeyS)

	for i := 0; i < 10; i++ {
		k.Drive(&p, Frame{Input: held, Field: testField, Dt: frame})
	}
	_, down := k.Hold()
	if down != 160 {
		t.Errorf("expected 160ms hold, got %f", down)
	}
	if p.Speed <= 0 {
		t.Errorf("expected paddle moving down, got %f", p.Speed)
	}

	k.Drive(&p, Frame{Input: input.NewState(), Field: testField, Dt: frame})
	if _, down := k.Hold(); down != 0 {
		t.Errorf("expected hold reset on release, got %f", down)
	}
}

func TestKeyboardReleaseClearsRamp(t *testing.T) {
	k := NewKeyboard(input.LeftBinding, testParams)
	p := physics.NewPaddle(physics.SideLeft, testField, testParams)
	both := input.NewState(input.KeyW, input.KeyS)

	for i := 0; i < 5; i++ {
		k.Drive(&p, Frame{Input: both, Field: testField, Dt: frame})
	}
	k.Release(input.KeyS)
	up, down := k.Hold()
	if down != 0 {
		t.Errorf("expected down ramp cleared, got %f", down)
	}
	if up != 80 {
		t.Errorf("releasing s should keep the up ramp, got %f", up)
	}

	k.Release(input.KeyUp)
	if up, _ := k.Hold(); up != 0 {
		t.Errorf("arrowup is bound to up, expected ramp cleared, got %f", up)
	}
	k.Release(input.KeyO)
}

func TestKeyboardAlternateKeys(t *testing.T) {
	k := NewKeyboard(input.LeftBinding, testParams)
	p := physics.NewPaddle(physics.SideLeft, testField, testParams)

	k.Drive(&p, Frame{Input: input.NewState(input.KeyUp), Field: testField, Dt: frame})
	if p.Speed >= 0 {
		t.Errorf("arrowup should move the left paddle up, got %f", p.Speed)
	}
}

func TestKeyboardIgnoresOtherBinding(t *testing.T) {
	k := NewKeyboard(input.RightBinding, testParams)
	p := physics.NewPaddle(physics.SideRight, testField, testParams)
	y := p.Y

	k.Drive(&p, Frame{Input: input.NewState(input.KeyW, input.KeyS), Field: testField, Dt: frame})
	if p.Y != y || p.Speed != 0 {
		t.Errorf("right paddle should not react to left keys, y=%f speed=%f", p.Y, p.Speed)
	}
}

func TestKeyboardStaysInBounds(t *testing.T) {
	k := NewKeyboard(input.LeftBinding, testParams)
	p := physics.NewPaddle(physics.SideLeft, testField, testParams)
	held := input.NewState(input.KeyS)

	for i := 0; i < 1000; i++ {
		k.Drive(&p, Frame{Input: held, Field: testField, Dt: frame})
		if p.Y < 0 || p.Y+p.Height > testField.Height {
			t.Fatalf("frame %d: paddle out of bounds at %f", i, p.Y)
		}
		if math.Abs(p.Speed) > testParams.MaxPaddleSpeed {
			t.Fatalf("frame %d: speed %f over max", i, p.Speed)
		}
	}
	if p.Y != testField.Height-p.Height {
		t.Errorf("expected paddle at bottom, got %f", p.Y)
	}

	k.Reset()
	if up, down := k.Hold(); up != 0 || down != 0 {
		t.Error("reset should clear hold times")
	}
}

func TestAutopilotPredict(t *testing.T) {
	tests := []struct {
		name string
		ball physics.Ball
		want float64
	}{
		{"moving away", physics.Ball{X: 400, Y: 123, SpeedX: -5}, 123},
		{"straight", physics.Ball{X: 335, Y: 250, SpeedX: 5}, 250},
		{"one bounce", physics.Ball{X: 335, Y: 450, SpeedX: 5, SpeedY: 1}, 470},
		{"spin curve", physics.Ball{X: 635, Y: 250, SpeedX: 5, Spin: 1}, 310},
	}
	right := physics.NewPaddle(physics.SideRight, testField, testParams)
	a := NewAutopilot(physics.SideRight, testParams, AutopilotParams{Difficulty: 0.8, DeadZone: 5})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Predict(&right, tt.ball, testField)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("expected %f, got %f", tt.want, got)
			}
		})
	}
}

func TestFold(t *testing.T) {
	tests := []struct {
		y, want float64
	}{
		{250, 250},
		{600, 400},
		{1100, 100},
		{-100, 600},
		{-600, -100},
	}
	for _, tt := range tests {
		if got := fold(tt.y, 500); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("fold(%f): expected %f, got %f", tt.y, tt.want, got)
		}
	}
}

func TestAutopilotUpwardShotOvershoots(t *testing.T) {
	right := physics.NewPaddle(physics.SideRight, testField, testParams)
	a := NewAutopilot(physics.SideRight, testParams, AutopilotParams{Difficulty: 0.8, DeadZone: 5})

	// t = (735 - 335) / 5 = 80, raw y = 50 - 160 = -110
	got := a.Predict(&right, physics.Ball{X: 335, Y: 50, SpeedX: 5, SpeedY: -2}, testField)
	if math.Abs(got-610) > 1e-9 {
		t.Errorf("expected 610, got %f", got)
	}

	p := right
	a.Drive(&p, Frame{Ball: physics.Ball{X: 335, Y: 50, SpeedX: 5, SpeedY: -2}, Field: testField})
	if p.Speed <= 0 {
		t.Errorf("expected paddle to chase the target below, got speed %f", p.Speed)
	}
}

func TestAutopilotDeadZone(t *testing.T) {
	a := NewAutopilot(physics.SideRight, testParams, AutopilotParams{Difficulty: 0.8, DeadZone: 5})
	p := physics.NewPaddle(physics.SideRight, testField, testParams)

	a.Drive(&p, Frame{Ball: physics.Ball{X: 400, Y: 253, SpeedX: -5}, Field: testField})
	if p.Speed != 0 {
		t.Errorf("expected no movement inside dead zone, got %f", p.Speed)
	}

	a.Drive(&p, Frame{Ball: physics.Ball{X: 400, Y: 100, SpeedX: -5}, Field: testField})
	if math.Abs(p.Speed+4) > 1e-9 {
		t.Errorf("expected speed -4, got %f", p.Speed)
	}
}

func TestAutopilotLeftSide(t *testing.T) {
	a := NewAutopilot(physics.SideLeft, testParams, AutopilotParams{Difficulty: 1, DeadZone: 5})
	p := physics.NewPaddle(physics.SideLeft, testField, testParams)

	b := physics.Ball{X: 465, Y: 250, SpeedX: -5, SpeedY: -1}
	got := a.Predict(&p, b, testField)
	// t = (65 - 465) / -5 = 80
	if math.Abs(got-170) > 1e-9 {
		t.Errorf("expected 170, got %f", got)
	}
}

func TestIdleCoasts(t *testing.T) {
	n := NewIdle(testParams)
	p := physics.NewPaddle(physics.SideLeft, testField, testParams)
	p.Speed = 10

	for i := 0; i < 200; i++ {
		n.Drive(&p, Frame{Field: testField, Dt: frame})
	}
	if p.Speed != 0 {
		t.Errorf("expected paddle to stop, got %f", p.Speed)
	}
}
