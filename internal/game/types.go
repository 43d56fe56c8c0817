package game

import "github.com/san-kum/retrotennis/internal/physics"

type State int

const (
	Menu State = iota
	Playing
	Paused
	GameOver
)

func (s State) String() string {
	switch s {
	case Menu:
		return "menu"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Score counts points for the left (player) and right (opponent) sides.
type Score struct {
	Player   int
	Opponent int
}

// Winner returns the side that has reached target, or SideNone.
func (s Score) Winner(target int) physics.Side {
	switch {
	case s.Player >= target:
		return physics.SideLeft
	case s.Opponent >= target:
		return physics.SideRight
	default:
		return physics.SideNone
	}
}

type Sound int

const (
	SoundHit Sound = iota
	SoundSpinLight
	SoundSpinMedium
	SoundSpinHeavy
	SoundMatchStart
)

func (s Sound) String() string {
	switch s {
	case SoundHit:
		return "hit"
	case SoundSpinLight:
		return "spin_light"
	case SoundSpinMedium:
		return "spin_medium"
	case SoundSpinHeavy:
		return "spin_heavy"
	case SoundMatchStart:
		return "match_start"
	default:
		return "unknown"
	}
}

// SpinSound picks the spin cue for a spin magnitude. ok is false below the
// audible threshold.
func SpinSound(spin float64) (s Sound, ok bool) {
	if spin < 0 {
		spin = -spin
	}
	switch {
	case spin > 2:
		return SoundSpinHeavy, true
	case spin > 1:
		return SoundSpinMedium, true
	case spin > 0.5:
		return SoundSpinLight, true
	default:
		return 0, false
	}
}

type SoundPlayer interface {
	Play(s Sound)
}

type ScoreDisplay interface {
	ShowScore(player, opponent int)
}

// Rand is the random source used to serve the ball.
type Rand interface {
	Float64() float64
}

type EventKind int

const (
	EventPaddleHit EventKind = iota
	EventWallBounce
	EventGoal
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventPaddleHit:
		return "paddle_hit"
	case EventWallBounce:
		return "wall_bounce"
	case EventGoal:
		return "goal"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is something that happened during one update. Side is the paddle
// that hit, the side that scored, or the winner.
type Event struct {
	Kind  EventKind
	Side  physics.Side
	Spin  float64
	Speed float64
}

// Observer is notified after every update that ran physics.
type Observer interface {
	OnFrame(snap Snapshot, events []Event)
}

// Snapshot is a copy of everything a renderer needs.
type Snapshot struct {
	Frame          uint64
	Left           physics.Paddle
	Right          physics.Paddle
	Ball           physics.Ball
	Score          Score
	State          State
	Field          physics.Field
	TwoPlayer      bool
	ScoreToWin     int
	MaxPaddleSpeed float64
	MaxBallSpeed   float64
}

// Winner returns the side that won the match, or SideNone while it is open.
func (s Snapshot) Winner() physics.Side {
	if s.State != GameOver {
		return physics.SideNone
	}
	return s.Score.Winner(s.ScoreToWin)
}
