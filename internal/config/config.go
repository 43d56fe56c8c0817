package config

import (
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/san-kum/retrotennis/internal/control"
	"github.com/san-kum/retrotennis/internal/physics"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth      = 800.0
	DefaultHeight     = 500.0
	DefaultScoreToWin = 5
	DefaultStepHz     = 60.0
	DefaultMaxSteps   = 5
	DefaultDifficulty = 0.8
)

type Config struct {
	Field  FieldConfig  `yaml:"field"`
	Paddle PaddleConfig `yaml:"paddle"`
	Ball   BallConfig   `yaml:"ball"`
	Spin   SpinConfig   `yaml:"spin"`
	Match  MatchConfig  `yaml:"match"`
	AI     AIConfig     `yaml:"ai"`
	Audio  AudioConfig  `yaml:"audio"`
	Loop   LoopConfig   `yaml:"loop"`
	Seed   int64        `yaml:"seed"`
	Debug  bool         `yaml:"debug"`
}

type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PaddleConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Inset         float64 `yaml:"inset"`
	Speed         float64 `yaml:"speed"`
	Acceleration  float64 `yaml:"acceleration"`
	Boost         float64 `yaml:"boost"`
	MaxSpeed      float64 `yaml:"max_speed"`
	Deceleration  float64 `yaml:"deceleration"`
	StopEpsilon   float64 `yaml:"stop_epsilon"`
	Smoothing     float64 `yaml:"smoothing"`
	HoldRampMs    float64 `yaml:"hold_ramp_ms"`
	MaxHoldFactor float64 `yaml:"max_hold_factor"`
}

type BallConfig struct {
	Radius            float64 `yaml:"radius"`
	InitialSpeed      float64 `yaml:"initial_speed"`
	MaxSpeed          float64 `yaml:"max_speed"`
	SpeedIncrement    float64 `yaml:"speed_increment"`
	MaxBounceAngleDeg float64 `yaml:"max_bounce_angle_deg"`
	LaunchConeDeg     float64 `yaml:"launch_cone_deg"`
}

type SpinConfig struct {
	Factor          float64 `yaml:"factor"`
	Decay           float64 `yaml:"decay"`
	Curve           float64 `yaml:"curve"`
	Bounce          float64 `yaml:"bounce"`
	WallFriction    float64 `yaml:"wall_friction"`
	XCurveThreshold float64 `yaml:"x_curve_threshold"`
	XCurveFraction  float64 `yaml:"x_curve_fraction"`
	XBounceFraction float64 `yaml:"x_bounce_fraction"`
}

type MatchConfig struct {
	ScoreToWin int  `yaml:"score_to_win"`
	TwoPlayer  bool `yaml:"two_player"`
}

type AIConfig struct {
	Difficulty float64 `yaml:"difficulty"`
	DeadZone   float64 `yaml:"dead_zone"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

type LoopConfig struct {
	Mode     string  `yaml:"mode"`
	StepHz   float64 `yaml:"step_hz"`
	MaxSteps int     `yaml:"max_steps"`
}

func DefaultConfig() *Config {
	return &Config{
		Field: FieldConfig{Width: DefaultWidth, Height: DefaultHeight},
		Paddle: PaddleConfig{
			Width:         15,
			Height:        100,
			Inset:         50,
			Speed:         5,
			Acceleration:  0.5,
			Boost:         15,
			MaxSpeed:      20,
			Deceleration:  0.05,
			StopEpsilon:   0.1,
			Smoothing:     0.2,
			HoldRampMs:    500,
			MaxHoldFactor: 2,
		},
		Ball: BallConfig{
			Radius:            10,
			InitialSpeed:      5,
			MaxSpeed:          15,
			SpeedIncrement:    0.5,
			MaxBounceAngleDeg: 45,
			LaunchConeDeg:     45,
		},
		Spin: SpinConfig{
			Factor:          0.2,
			Decay:           0.998,
			Curve:           0.15,
			Bounce:          1.5,
			WallFriction:    0.7,
			XCurveThreshold: 0.1,
			XCurveFraction:  0.3,
			XBounceFraction: 0.4,
		},
		Match: MatchConfig{ScoreToWin: DefaultScoreToWin, TwoPlayer: true},
		AI:    AIConfig{Difficulty: DefaultDifficulty, DeadZone: 5},
		Audio: AudioConfig{Enabled: true, Volume: 0.5},
		Loop:  LoopConfig{Mode: "fixed", StepHz: DefaultStepHz, MaxSteps: DefaultMaxSteps},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) FieldDims() physics.Field {
	return physics.Field{Width: c.Field.Width, Height: c.Field.Height}
}

func (c *Config) Physics() physics.Params {
	return physics.Params{
		PaddleWidth:        c.Paddle.Width,
		PaddleHeight:       c.Paddle.Height,
		PaddleInset:        c.Paddle.Inset,
		PaddleSpeed:        c.Paddle.Speed,
		PaddleAcceleration: c.Paddle.Acceleration,
		PaddleBoost:        c.Paddle.Boost,
		MaxPaddleSpeed:     c.Paddle.MaxSpeed,
		PaddleDeceleration: c.Paddle.Deceleration,
		StopEpsilon:        c.Paddle.StopEpsilon,
		Smoothing:          c.Paddle.Smoothing,
		HoldRamp:           c.Paddle.HoldRampMs,
		MaxHoldFactor:      c.Paddle.MaxHoldFactor,
		BallRadius:         c.Ball.Radius,
		InitialBallSpeed:   c.Ball.InitialSpeed,
		MaxBallSpeed:       c.Ball.MaxSpeed,
		SpeedIncrement:     c.Ball.SpeedIncrement,
		MaxBounceAngle:     c.Ball.MaxBounceAngleDeg * math.Pi / 180,
		LaunchCone:         c.Ball.LaunchConeDeg * math.Pi / 180,
		SpinFactor:         c.Spin.Factor,
		SpinDecay:          c.Spin.Decay,
		SpinCurve:          c.Spin.Curve,
		SpinBounce:         c.Spin.Bounce,
		WallFriction:       c.Spin.WallFriction,
		XCurveThreshold:    c.Spin.XCurveThreshold,
		XCurveFraction:     c.Spin.XCurveFraction,
		XBounceFraction:    c.Spin.XBounceFraction,
	}
}

func (c *Config) Autopilot() control.AutopilotParams {
	return control.AutopilotParams{Difficulty: c.AI.Difficulty, DeadZone: c.AI.DeadZone}
}

// Validate checks the constraints the engine relies on.
func (c *Config) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return invalid("field must have positive size, got %gx%g", c.Field.Width, c.Field.Height)
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return invalid("paddle must have positive size")
	case c.Paddle.Height >= c.Field.Height:
		return invalid("paddle height %g does not fit field height %g", c.Paddle.Height, c.Field.Height)
	case 2*(c.Paddle.Inset+c.Paddle.Width) >= c.Field.Width:
		return invalid("paddles overlap on a field %g wide", c.Field.Width)
	case c.Paddle.MaxSpeed <= 0:
		return invalid("paddle.max_speed must be positive")
	case c.Paddle.Smoothing <= 0 || c.Paddle.Smoothing > 1:
		return invalid("paddle.smoothing must be in (0, 1], got %g", c.Paddle.Smoothing)
	case c.Paddle.Deceleration < 0 || c.Paddle.Deceleration >= 1:
		return invalid("paddle.deceleration must be in [0, 1), got %g", c.Paddle.Deceleration)
	case c.Paddle.Speed < 0:
		return invalid("paddle.speed must not be negative, got %g", c.Paddle.Speed)
	case c.Paddle.HoldRampMs < 0:
		return invalid("paddle.hold_ramp_ms must not be negative, got %g", c.Paddle.HoldRampMs)
	case c.Paddle.MaxHoldFactor < 0:
		return invalid("paddle.max_hold_factor must not be negative, got %g", c.Paddle.MaxHoldFactor)
	case c.Ball.Radius <= 0 || 2*c.Ball.Radius >= c.Field.Height:
		return invalid("ball.radius %g out of range", c.Ball.Radius)
	case c.Ball.InitialSpeed <= 0 || c.Ball.InitialSpeed > c.Ball.MaxSpeed:
		return invalid("ball.initial_speed must be in (0, max_speed], got %g", c.Ball.InitialSpeed)
	case c.Ball.SpeedIncrement < 0:
		return invalid("ball.speed_increment must not be negative, got %g", c.Ball.SpeedIncrement)
	case c.Spin.Decay <= 0 || c.Spin.Decay >= 1:
		return invalid("spin.decay must be in (0, 1), got %g", c.Spin.Decay)
	case c.Spin.WallFriction < 0 || c.Spin.WallFriction > 1:
		return invalid("spin.wall_friction must be in [0, 1], got %g", c.Spin.WallFriction)
	case c.Match.ScoreToWin < 1:
		return invalid("match.score_to_win must be at least 1, got %d", c.Match.ScoreToWin)
	case c.AI.Difficulty <= 0:
		return invalid("ai.difficulty must be positive, got %g", c.AI.Difficulty)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return invalid("audio.volume must be in [0, 1], got %g", c.Audio.Volume)
	case c.Loop.Mode != "fixed" && c.Loop.Mode != "variable":
		return invalid("loop.mode must be fixed or variable, got %q", c.Loop.Mode)
	case c.Loop.StepHz <= 0 || c.Loop.MaxSteps < 1:
		return invalid("loop.step_hz and loop.max_steps must be positive")
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// tunable maps parameter names to fields that may be changed at runtime.
func (c *Config) tunable() map[string]*float64 {
	return map[string]*float64{
		"ai.difficulty":        &c.AI.Difficulty,
		"ai.dead_zone":         &c.AI.DeadZone,
		"spin.factor":          &c.Spin.Factor,
		"spin.curve":           &c.Spin.Curve,
		"spin.bounce":          &c.Spin.Bounce,
		"spin.decay":           &c.Spin.Decay,
		"ball.initial_speed":   &c.Ball.InitialSpeed,
		"ball.max_speed":       &c.Ball.MaxSpeed,
		"ball.speed_increment": &c.Ball.SpeedIncrement,
		"paddle.speed":         &c.Paddle.Speed,
		"paddle.max_speed":     &c.Paddle.MaxSpeed,
	}
}

// Params returns the current value of every tunable parameter.
func (c *Config) Params() map[string]float64 {
	out := make(map[string]float64)
	for k, v := range c.tunable() {
		out[k] = *v
	}
	return out
}

func (c *Config) SetParam(name string, value float64) error {
	p, ok := c.tunable()[name]
	if !ok {
		return fmt.Errorf("%w: unknown parameter %q", ErrInvalidConfig, name)
	}
	*p = value
	return nil
}

// ParamNames lists the tunable parameters in sorted order.
func ParamNames() []string {
	names := make([]string, 0)
	for k := range DefaultConfig().tunable() {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
