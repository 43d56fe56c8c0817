// Package input tracks keyboard state for the game.
//
// Frontends feed key edges into a [Tracker]; once per frame the engine takes
// a [State] snapshot and hands it to the paddle controllers, so every
// controller in a frame sees the same keys.
package input

import (
	"sort"
	"strings"
	"sync"
)

// Key is a lower-cased key name as reported by the frontend.
type Key string

const (
	KeyW      Key = "w"
	KeyS      Key = "s"
	KeyUp     Key = "arrowup"
	KeyDown   Key = "arrowdown"
	KeyO      Key = "o"
	KeyL      Key = "l"
	KeySpace  Key = " "
	KeyEnter  Key = "enter"
	KeyP      Key = "p"
	KeyR      Key = "r"
	KeyEscape Key = "escape"
	KeyM      Key = "m"
	KeyQ      Key = "q"
)

// Normalize maps frontend key names onto Key values.
func Normalize(name string) Key {
	switch n := strings.ToLower(name); n {
	case "space":
		return KeySpace
	case "up":
		return KeyUp
	case "down":
		return KeyDown
	case "esc":
		return KeyEscape
	default:
		return Key(n)
	}
}

// State is an immutable set of keys held during one frame.
type State struct {
	pressed map[Key]struct{}
}

func NewState(keys ...Key) State {
	s := State{pressed: make(map[Key]struct{}, len(keys))}
	for _, k := range keys {
		s.pressed[k] = struct{}{}
	}
	return s
}

func (s State) Pressed(k Key) bool {
	_, ok := s.pressed[k]
	return ok
}

// Any reports whether at least one of keys is held.
func (s State) Any(keys ...Key) bool {
	for _, k := range keys {
		if s.Pressed(k) {
			return true
		}
	}
	return false
}

// Keys returns the held keys in sorted order.
func (s State) Keys() []Key {
	keys := make([]Key, 0, len(s.pressed))
	for k := range s.pressed {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Tracker records key edges. It is safe for use from an event goroutine
// while the frame loop takes snapshots.
type Tracker struct {
	mu   sync.Mutex
	down map[Key]bool
}

func NewTracker() *Tracker {
	return &Tracker{down: make(map[Key]bool)}
}

func (t *Tracker) KeyDown(k Key) {
	t.mu.Lock()
	t.down[k] = true
	t.mu.Unlock()
}

func (t *Tracker) KeyUp(k Key) {
	t.mu.Lock()
	delete(t.down, k)
	t.mu.Unlock()
}

func (t *Tracker) IsDown(k Key) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.down[k]
}

// Snapshot copies the currently held keys.
func (t *Tracker) Snapshot() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := State{pressed: make(map[Key]struct{}, len(t.down))}
	for k := range t.down {
		s.pressed[k] = struct{}{}
	}
	return s
}

// Clear releases every key.
func (t *Tracker) Clear() {
	t.mu.Lock()
	t.down = make(map[Key]bool)
	t.mu.Unlock()
}

// Binding maps a paddle's up and down directions to keys.
type Binding struct {
	Up   []Key
	Down []Key
}

var (
	LeftBinding  = Binding{Up: []Key{KeyW, KeyUp}, Down: []Key{KeyS, KeyDown}}
	RightBinding = Binding{Up: []Key{KeyO}, Down: []Key{KeyL}}
)
