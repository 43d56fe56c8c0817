package metrics

import (
	"sort"

	"github.com/san-kum/retrotennis/internal/game"
)

type Metric interface {
	Name() string
	Observe(snap game.Snapshot, events []game.Event)
	Value() float64
	Reset()
}

// Set feeds every frame to a group of metrics. It satisfies game.Observer.
type Set struct {
	metrics []Metric
}

func NewSet(ms ...Metric) *Set {
	return &Set{metrics: ms}
}

// Default returns a fresh instance of every built-in metric.
func Default() []Metric {
	return []Metric{
		NewPaddleHits(),
		NewRallyLength(),
		NewMaxSpin(),
		NewPeakBallSpeed(),
		NewWallBounces(),
		NewScoreGap(),
	}
}

func (s *Set) OnFrame(snap game.Snapshot, events []game.Event) {
	for _, m := range s.metrics {
		m.Observe(snap, events)
	}
}

func (s *Set) Values() map[string]float64 {
	out := make(map[string]float64, len(s.metrics))
	for _, m := range s.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

// Names lists the metric names in sorted order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.metrics))
	for _, m := range s.metrics {
		names = append(names, m.Name())
	}
	sort.Strings(names)
	return names
}

func (s *Set) Reset() {
	for _, m := range s.metrics {
		m.Reset()
	}
}
