package config

import (
	"fmt"
	"sort"
)

// Presets adjust the defaults for a style of play.
var Presets = map[string]func(*Config){
	"classic": func(*Config) {},
	"arcade": func(c *Config) {
		c.Ball.InitialSpeed = 7
		c.Ball.MaxSpeed = 20
		c.Ball.SpeedIncrement = 0.8
		c.Spin.Factor = 0.3
		c.Spin.Curve = 0.2
	},
	"solo": func(c *Config) {
		c.Match.TwoPlayer = false
	},
	"practice": func(c *Config) {
		c.Match.TwoPlayer = false
		c.Match.ScoreToWin = 11
		c.AI.Difficulty = 0.5
		c.AI.DeadZone = 15
	},
	"small": func(c *Config) {
		c.Field.Width = 400
		c.Field.Height = 250
		c.Paddle.Height = 50
		c.Paddle.Inset = 25
		c.Paddle.Width = 8
		c.Ball.Radius = 5
		c.Match.ScoreToWin = 3
	},
}

// GetPreset returns a fresh config for the preset, or nil if there is none.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

// Preset is GetPreset with an error for unknown names.
func Preset(name string) (*Config, error) {
	cfg := GetPreset(name)
	if cfg == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return cfg, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
