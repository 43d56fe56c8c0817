// Package audio plays the game's sound cues through the system speaker.
//
// Every cue is synthesised; there are no sample files. A [SoundManager]
// that failed to open the speaker stays silent, so callers can always play
// cues without checking for an audio device.
package audio

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/san-kum/retrotennis/internal/game"
)

const (
	SampleRate = beep.SampleRate(44100)
	bufferSize = 100 * time.Millisecond
)

// ErrUnavailable indicates the speaker could not be opened.
var ErrUnavailable = errors.New("audio: output unavailable")

// The speaker is process-wide, so a failed open is remembered for every
// manager.
var (
	speakerMu   sync.Mutex
	speakerOpen bool
	speakerErr  error
)

func openSpeaker() error {
	speakerMu.Lock()
	defer speakerMu.Unlock()
	if speakerOpen || speakerErr != nil {
		return speakerErr
	}
	if err := speaker.Init(SampleRate, SampleRate.N(bufferSize)); err != nil {
		speakerErr = fmt.Errorf("%w: %v", ErrUnavailable, err)
		return speakerErr
	}
	speakerOpen = true
	return nil
}

type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
	played      map[game.Sound]int
}

func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
		played: make(map[game.Sound]int),
	}
}

// Initialize opens the speaker. On failure the manager stays silent and the
// error wraps ErrUnavailable.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := openSpeaker(); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play queues a cue. It is a no-op while silent or muted.
func (sm *SoundManager) Play(s game.Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.played[s]++
	if !sm.initialized || sm.muted {
		return
	}
	v := Cue(s, SampleRate, sm.volume)
	if v == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(v)
	speaker.Unlock()
}

// Played reports how many times s was requested, audible or not.
func (sm *SoundManager) Played(s game.Sound) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played[s]
}

func (sm *SoundManager) SetMuted(m bool) {
	sm.mu.Lock()
	sm.muted = m
	sm.mu.Unlock()
}

// ToggleMute flips the mute flag and returns the new value.
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Cleanup silences queued cues. The speaker itself stays open.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}
