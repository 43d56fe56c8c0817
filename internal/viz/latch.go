package viz

import (
	"sort"
	"time"

	"github.com/san-kum/retrotennis/internal/input"
)

const (
	// covers the terminal's initial autorepeat delay
	firstLatch  = 500 * time.Millisecond
	repeatLatch = 120 * time.Millisecond
)

type latched struct {
	at       time.Time
	repeated bool
}

// latch turns key presses into held keys. Terminals report no releases, so a
// key counts as held until no press or repeat has arrived for a while.
type latch struct {
	first, repeat time.Duration
	held          map[input.Key]latched
}

func newLatch() *latch {
	return &latch{first: firstLatch, repeat: repeatLatch, held: make(map[input.Key]latched)}
}

// press records k and reports whether it was not already held.
func (l *latch) press(k input.Key, now time.Time) bool {
	st, ok := l.held[k]
	l.held[k] = latched{at: now, repeated: ok || st.repeated}
	return !ok
}

// expire releases keys whose window has passed and returns them sorted.
func (l *latch) expire(now time.Time) []input.Key {
	var out []input.Key
	for k, st := range l.held {
		window := l.first
		if st.repeated {
			window = l.repeat
		}
		if now.Sub(st.at) > window {
			delete(l.held, k)
			out = append(out, k)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// release drops every held key and returns them sorted.
func (l *latch) release() []input.Key {
	out := make([]input.Key, 0, len(l.held))
	for k := range l.held {
		out = append(out, k)
	}
	l.held = make(map[input.Key]latched)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
