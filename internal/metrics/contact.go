package metrics

import "github.com/san-kum/retrotennis/internal/game"

type PaddleHits struct {
	name string
	hits int
}

func NewPaddleHits() *PaddleHits {
	return &PaddleHits{name: "paddle_hits"}
}

func (p *PaddleHits) Name() string { return p.name }

func (p *PaddleHits) Observe(_ game.Snapshot, events []game.Event) {
	p.hits += count(events, game.EventPaddleHit)
}

func (p *PaddleHits) Value() float64 { return float64(p.hits) }

func (p *PaddleHits) Reset() { p.hits = 0 }

type WallBounces struct {
	name    string
	bounces int
}

func NewWallBounces() *WallBounces {
	return &WallBounces{name: "wall_bounces"}
}

func (w *WallBounces) Name() string { return w.name }

func (w *WallBounces) Observe(_ game.Snapshot, events []game.Event) {
	w.bounces += count(events, game.EventWallBounce)
}

func (w *WallBounces) Value() float64 { return float64(w.bounces) }

func (w *WallBounces) Reset() { w.bounces = 0 }

// RallyLength is the mean number of paddle hits per point played.
type RallyLength struct {
	name   string
	hits   int
	points int
}

func NewRallyLength() *RallyLength {
	return &RallyLength{name: "rally_length"}
}

func (r *RallyLength) Name() string { return r.name }

func (r *RallyLength) Observe(_ game.Snapshot, events []game.Event) {
	r.hits += count(events, game.EventPaddleHit)
	r.points += count(events, game.EventGoal)
}

func (r *RallyLength) Value() float64 {
	if r.points == 0 {
		return float64(r.hits)
	}
	return float64(r.hits) / float64(r.points)
}

func (r *RallyLength) Reset() {
	r.hits = 0
	r.points = 0
}

func count(events []game.Event, kind game.EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}
