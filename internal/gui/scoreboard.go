package gui

import (
	"strconv"

	"github.com/san-kum/retrotennis/internal/render"
)

const (
	scoreTop  = 60.0
	scoreSize = 48.0
)

// Scoreboard is the window's score display. The engine pushes every change
// through ShowScore and the app draws it over the court each frame.
type Scoreboard struct {
	player, opponent int
}

func NewScoreboard() *Scoreboard {
	return &Scoreboard{}
}

func (b *Scoreboard) ShowScore(player, opponent int) {
	b.player, b.opponent = player, opponent
}

func (b *Scoreboard) Score() (player, opponent int) {
	return b.player, b.opponent
}

// Draw puts each side's score over its half of the court.
func (b *Scoreboard) Draw(s render.Surface, c render.Color) {
	w, _ := s.Size()
	s.Text(w/4, scoreTop, strconv.Itoa(b.player), scoreSize, c)
	s.Text(3*w/4, scoreTop, strconv.Itoa(b.opponent), scoreSize, c)
}
