package metrics

import (
	"math"

	"github.com/san-kum/retrotennis/internal/game"
)

type MaxSpin struct {
	name string
	max  float64
}

func NewMaxSpin() *MaxSpin {
	return &MaxSpin{name: "max_spin"}
}

func (m *MaxSpin) Name() string { return m.name }

func (m *MaxSpin) Observe(snap game.Snapshot, _ []game.Event) {
	m.max = math.Max(m.max, math.Abs(snap.Ball.Spin))
}

func (m *MaxSpin) Value() float64 { return m.max }

func (m *MaxSpin) Reset() { m.max = 0 }

type PeakBallSpeed struct {
	name string
	peak float64
}

func NewPeakBallSpeed() *PeakBallSpeed {
	return &PeakBallSpeed{name: "peak_ball_speed"}
}

func (p *PeakBallSpeed) Name() string { return p.name }

func (p *PeakBallSpeed) Observe(snap game.Snapshot, _ []game.Event) {
	p.peak = math.Max(p.peak, snap.Ball.Speed())
}

func (p *PeakBallSpeed) Value() float64 { return p.peak }

func (p *PeakBallSpeed) Reset() { p.peak = 0 }

// ScoreGap is the absolute point difference after the last observed frame.
type ScoreGap struct {
	name string
	gap  int
}

func NewScoreGap() *ScoreGap {
	return &ScoreGap{name: "score_gap"}
}

func (s *ScoreGap) Name() string { return s.name }

func (s *ScoreGap) Observe(snap game.Snapshot, _ []game.Event) {
	s.gap = snap.Score.Player - snap.Score.Opponent
	if s.gap < 0 {
		s.gap = -s.gap
	}
}

func (s *ScoreGap) Value() float64 { return float64(s.gap) }

func (s *ScoreGap) Reset() { s.gap = 0 }
