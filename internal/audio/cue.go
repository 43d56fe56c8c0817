package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/san-kum/retrotennis/internal/game"
)

type wave int

const (
	waveSine wave = iota
	waveSquare
	waveSaw
)

type note struct {
	freq     float64
	duration time.Duration
	wave     wave
}

type cue struct {
	notes  []note
	volume float64
}

var cues = map[game.Sound]cue{
	game.SoundHit:        {notes: []note{{440, 60 * time.Millisecond, waveSquare}}, volume: 0.5},
	game.SoundSpinLight:  {notes: []note{{660, 80 * time.Millisecond, waveSine}}, volume: 0.3},
	game.SoundSpinMedium: {notes: []note{{880, 110 * time.Millisecond, waveSine}}, volume: 0.4},
	game.SoundSpinHeavy:  {notes: []note{{990, 150 * time.Millisecond, waveSaw}}, volume: 0.5},
	game.SoundMatchStart: {notes: []note{
		{523.25, 120 * time.Millisecond, waveSquare},
		{659.25, 120 * time.Millisecond, waveSquare},
		{783.99, 200 * time.Millisecond, waveSquare},
	}, volume: 0.6},
}

// Cue builds the finite streamer for s scaled by master volume, or nil for
// an unknown sound.
func Cue(s game.Sound, sr beep.SampleRate, master float64) beep.Streamer {
	c, ok := cues[s]
	if !ok {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(c.notes))
	for _, n := range c.notes {
		tone, err := toneFor(n, sr)
		if err != nil {
			return nil
		}
		parts = append(parts, newEnvelope(beep.Take(sr.N(n.duration), tone), sr.N(n.duration), sr.N(3*time.Millisecond), sr.N(n.duration/2)))
	}
	return newVolume(beep.Seq(parts...), c.volume*master)
}

// Length returns the duration of the cue for s.
func Length(s game.Sound) time.Duration {
	var d time.Duration
	for _, n := range cues[s].notes {
		d += n.duration
	}
	return d
}

func toneFor(n note, sr beep.SampleRate) (beep.Streamer, error) {
	switch n.wave {
	case waveSquare:
		return generators.SquareTone(sr, n.freq)
	case waveSaw:
		return generators.SawtoothTone(sr, n.freq)
	default:
		return generators.SineTone(sr, n.freq)
	}
}

func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// envelope ramps a stream in over attack samples and out over release.
type envelope struct {
	streamer beep.Streamer
	pos      int
	total    int
	attack   int
	release  int
}

func newEnvelope(s beep.Streamer, total, attack, release int) *envelope {
	return &envelope{streamer: s, total: total, attack: attack, release: release}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; e.release > 0 && left < e.release {
			vol = math.Min(vol, float64(left)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }
