package game

import (
	"bytes"
	"log"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/retrotennis/internal/config"
	"github.com/san-kum/retrotennis/internal/control"
	"github.com/san-kum/retrotennis/internal/input"
	"github.com/san-kum/retrotennis/internal/physics"
)

const frame = 16 * time.Millisecond

type cycleRand struct {
	vals []float64
	i    int
}

func (r *cycleRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

// serveRight always serves straight toward the right paddle.
func serveRight() *cycleRand {
	return &cycleRand{vals: []float64{0.9, 0.5}}
}

type soundLog struct {
	played []Sound
}

func (s *soundLog) Play(snd Sound) {
	s.played = append(s.played, snd)
}

type scoreLog struct {
	shown [][2]int
}

func (s *scoreLog) ShowScore(player, opponent int) {
	s.shown = append(s.shown, [2]int{player, opponent})
}

type brokenSound struct {
	calls int
}

func (b *brokenSound) Play(Sound) {
	b.calls++
	panic("device gone")
}

// pinned holds its paddle still while reporting a fixed speed.
type pinned struct {
	speed float64
}

func (p *pinned) Drive(paddle *physics.Paddle, _ control.Frame) {
	paddle.Speed = p.speed
}

func (p *pinned) Reset() {}

type frameLog struct {
	frames int
	events []Event
}

func (f *frameLog) OnFrame(_ Snapshot, events []Event) {
	f.frames++
	f.events = append(f.events, events...)
}

func newEngine(opts ...Option) *Engine {
	opts = append([]Option{WithRand(serveRight())}, opts...)
	eng, err := New(*config.DefaultConfig(), opts...)
	Expect(err).NotTo(HaveOccurred())
	return eng
}

var _ = Describe("Engine", func() {
	Describe("construction", func() {
		It("starts in the menu with a clean score", func() {
			eng := newEngine()
			Expect(eng.State()).To(Equal(Menu))
			Expect(eng.Score()).To(Equal(Score{}))

			snap := eng.Snapshot()
			Expect(snap.Ball.X).To(Equal(400.0))
			Expect(snap.Left.Y).To(Equal(200.0))
			Expect(snap.Right.X).To(Equal(735.0))
		})

		It("rejects an invalid configuration", func() {
			cfg := config.DefaultConfig()
			cfg.Field.Width = -1
			_, err := New(*cfg)
			Expect(err).To(MatchError(ErrInitialization))
			Expect(err).To(MatchError(config.ErrInvalidConfig))
		})

		It("rejects a nil controller", func() {
			_, err := New(*config.DefaultConfig(), WithLeftController(nil))
			Expect(err).To(MatchError(ErrInitialization))
		})

		It("uses an autopilot for the right paddle in single player", func() {
			cfg := config.DefaultConfig()
			cfg.Match.TwoPlayer = false
			eng, err := New(*cfg, WithRand(&cycleRand{vals: []float64{0.9, 0.9}}))
			Expect(err).NotTo(HaveOccurred())
			Expect(eng.rightCtl).To(BeAssignableToTypeOf(&control.Autopilot{}))

			eng.Start()
			for i := 0; i < 30; i++ {
				eng.Step(frame)
			}
			Expect(eng.Snapshot().Right.Y).NotTo(Equal(200.0))
		})
	})

	Describe("state machine", func() {
		var (
			eng     *Engine
			sounds  *soundLog
			display *scoreLog
		)

		BeforeEach(func() {
			sounds = &soundLog{}
			display = &scoreLog{}
			eng = newEngine(WithSound(sounds), WithScoreDisplay(display))
		})

		It("starts on space from the menu", func() {
			eng.OnKeyDown(input.KeySpace)
			Expect(eng.State()).To(Equal(Playing))
			Expect(sounds.played).To(Equal([]Sound{SoundMatchStart}))
			Expect(display.shown).To(Equal([][2]int{{0, 0}}))
		})

		It("ignores space while playing", func() {
			eng.Start()
			eng.OnKeyDown(input.KeySpace)
			Expect(eng.State()).To(Equal(Playing))
			Expect(sounds.played).To(HaveLen(1))
		})

		It("pauses and resumes without resetting", func() {
			eng.Start()
			eng.score = Score{Player: 2, Opponent: 1}

			eng.Pause()
			Expect(eng.State()).To(Equal(Paused))
			eng.Start()
			Expect(eng.State()).To(Equal(Playing))
			Expect(eng.Score()).To(Equal(Score{Player: 2, Opponent: 1}))

			eng.TogglePause()
			Expect(eng.State()).To(Equal(Paused))
			eng.Resume()
			Expect(eng.State()).To(Equal(Playing))
		})

		It("resets to the menu with a clean score", func() {
			eng.Start()
			eng.score = Score{Player: 3}
			eng.Reset()

			Expect(eng.State()).To(Equal(Menu))
			Expect(eng.Score()).To(Equal(Score{}))
			Expect(display.shown[len(display.shown)-1]).To(Equal([2]int{0, 0}))
		})

		DescribeTable("freezes outside of play",
			func(setup func(*Engine)) {
				setup(eng)
				before := eng.Snapshot()
				for i := 0; i < 10; i++ {
					eng.Update(frame, input.NewState(input.KeyS, input.KeyL))
				}
				Expect(eng.Snapshot()).To(Equal(before))
				Expect(eng.Events()).To(BeEmpty())
			},
			Entry("menu", func(*Engine) {}),
			Entry("paused", func(e *Engine) { e.Start(); e.Pause() }),
			Entry("game over", func(e *Engine) { e.Start(); e.state = GameOver }),
		)
	})

	Describe("scoring", func() {
		var (
			eng     *Engine
			display *scoreLog
		)

		BeforeEach(func() {
			display = &scoreLog{}
			eng = newEngine(WithScoreDisplay(display))
			eng.Start()
		})

		It("awards the opponent a point when the ball crosses the left line", func() {
			eng.ball = physics.Ball{X: 12, Y: 50, Radius: 10, SpeedX: -5, Spin: 1.5}
			eng.Step(frame)

			Expect(eng.Score()).To(Equal(Score{Opponent: 1}))
			Expect(eng.Events()).To(ContainElement(Event{Kind: EventGoal, Side: physics.SideRight}))
			Expect(display.shown[len(display.shown)-1]).To(Equal([2]int{0, 1}))

			ball := eng.Snapshot().Ball
			Expect(ball.Spin).To(BeZero())
			Expect(ball.X).To(Equal(400.0))
			Expect(ball.Y).To(Equal(250.0))
		})

		It("awards the player a point when the ball crosses the right line", func() {
			eng.ball = physics.Ball{X: 788, Y: 450, Radius: 10, SpeedX: 5}
			eng.Step(frame)
			Expect(eng.Score()).To(Equal(Score{Player: 1}))
		})

		It("ends the match at the winning score", func() {
			eng.score = Score{Player: 4, Opponent: 2}
			eng.ball = physics.Ball{X: 788, Y: 450, Radius: 10, SpeedX: 5}
			eng.Step(frame)

			Expect(eng.State()).To(Equal(GameOver))
			Expect(eng.Score()).To(Equal(Score{Player: 5, Opponent: 2}))
			Expect(eng.Events()).To(ContainElement(Event{Kind: EventGameOver, Side: physics.SideLeft}))
			Expect(eng.Snapshot().Winner()).To(Equal(physics.SideLeft))

			for i := 0; i < 600; i++ {
				eng.Step(frame)
			}
			Expect(eng.Score()).To(Equal(Score{Player: 5, Opponent: 2}))
		})

		It("starts a fresh match after game over", func() {
			eng.state = GameOver
			eng.score = Score{Opponent: 5}
			eng.OnKeyDown(input.KeySpace)
			Expect(eng.State()).To(Equal(Playing))
			Expect(eng.Score()).To(Equal(Score{}))
		})
	})

	Describe("paddle contact", func() {
		It("returns a dead-centre hit from a still paddle without spin", func() {
			sounds := &soundLog{}
			eng := newEngine(WithSound(sounds))
			eng.Start()
			eng.ball = physics.Ball{X: 723, Y: 250, Radius: 10, SpeedX: 5}
			eng.Step(frame)

			ball := eng.Snapshot().Ball
			Expect(ball.SpeedX).To(BeNumerically("~", -5.5, 1e-9))
			Expect(ball.SpeedY).To(BeNumerically("~", 0, 1e-9))
			Expect(ball.Spin).To(BeZero())
			Expect(sounds.played).To(Equal([]Sound{SoundMatchStart, SoundHit}))
		})

		It("imparts heavy spin from a paddle at full speed", func() {
			sounds := &soundLog{}
			var buf bytes.Buffer
			cfg := config.DefaultConfig()
			cfg.Debug = true
			eng, err := New(*cfg,
				WithRand(serveRight()),
				WithSound(sounds),
				WithLogger(log.New(&buf, "", 0)),
				WithRightController(&pinned{speed: 20}),
			)
			Expect(err).NotTo(HaveOccurred())
			eng.Start()
			eng.ball = physics.Ball{X: 723, Y: 250, Radius: 10, SpeedX: 5}
			eng.Step(frame)

			Expect(eng.Snapshot().Ball.Spin).To(BeNumerically("~", 20*0.2*3, 1e-9))
			Expect(sounds.played).To(Equal([]Sound{SoundMatchStart, SoundHit, SoundSpinHeavy}))
			Expect(buf.String()).To(ContainSubstring("right paddle hit: speed=20.00 spin=12.00"))
		})
	})

	Describe("collaborators", func() {
		It("detaches a panicking sound player and keeps running", func() {
			broken := &brokenSound{}
			var buf bytes.Buffer
			eng := newEngine(WithSound(broken), WithLogger(log.New(&buf, "", 0)))

			Expect(func() { eng.Start() }).NotTo(Panic())
			Expect(eng.State()).To(Equal(Playing))
			Expect(buf.String()).To(ContainSubstring("sound panicked"))

			eng.ball = physics.Ball{X: 723, Y: 250, Radius: 10, SpeedX: 5}
			Expect(func() { eng.Step(frame) }).NotTo(Panic())
			Expect(broken.calls).To(Equal(1))
		})

		It("notifies observers after each playing frame", func() {
			obs := &frameLog{}
			eng := newEngine(WithObserver(obs))
			eng.Step(frame)
			Expect(obs.frames).To(BeZero())

			eng.Start()
			eng.ball = physics.Ball{X: 723, Y: 250, Radius: 10, SpeedX: 5}
			for i := 0; i < 3; i++ {
				eng.Step(frame)
			}
			Expect(obs.frames).To(Equal(3))
			Expect(obs.events[0].Kind).To(Equal(EventPaddleHit))
			Expect(obs.events[0].Side).To(Equal(physics.SideRight))
		})
	})

	Describe("key release", func() {
		var eng *Engine

		downHold := func() float64 {
			_, down := eng.leftCtl.(*control.Keyboard).Hold()
			return down
		}

		BeforeEach(func() {
			eng = newEngine()
			eng.Start()
			eng.OnKeyDown(input.KeyS)
			for i := 0; i < 30; i++ {
				eng.Step(frame)
			}
			Expect(downHold()).To(BeNumerically("~", 480, 1e-9))
		})

		It("clears the hold ramp when released during a pause", func() {
			eng.Pause()
			eng.OnKeyUp(input.KeyS)
			eng.OnKeyDown(input.KeyS)
			eng.Resume()
			eng.Step(frame)
			Expect(downHold()).To(BeNumerically("~", 16, 1e-9))
		})

		It("clears the hold ramp when released and pressed between steps", func() {
			eng.OnKeyUp(input.KeyS)
			eng.OnKeyDown(input.KeyS)
			eng.Step(frame)
			Expect(downHold()).To(BeNumerically("~", 16, 1e-9))
		})

		It("leaves the autopilot alone", func() {
			cfg := config.DefaultConfig()
			cfg.Match.TwoPlayer = false
			solo, err := New(*cfg, WithRand(serveRight()))
			Expect(err).NotTo(HaveOccurred())
			Expect(func() { solo.OnKeyUp(input.KeyL) }).NotTo(Panic())
		})
	})

	Describe("paddle bounds", func() {
		It("keeps held paddles on the field", func() {
			eng := newEngine()
			eng.Start()
			eng.OnKeyDown(input.KeyW)
			eng.OnKeyDown(input.KeyL)

			for i := 0; i < 300; i++ {
				eng.Step(frame)
				snap := eng.Snapshot()
				for _, p := range []physics.Paddle{snap.Left, snap.Right} {
					Expect(p.Y).To(BeNumerically(">=", 0))
					Expect(p.Y + p.Height).To(BeNumerically("<=", snap.Field.Height))
				}
				if eng.State() != Playing {
					eng.Start()
				}
			}
			Expect(eng.Snapshot().Left.Y).To(BeZero())
			Expect(eng.Snapshot().Right.Y).To(Equal(400.0))
		})
	})
})

var _ = DescribeTable("SpinSound",
	func(spin float64, want Sound, audible bool) {
		got, ok := SpinSound(spin)
		Expect(ok).To(Equal(audible))
		if audible {
			Expect(got).To(Equal(want))
		}
	},
	Entry("quiet", 0.3, Sound(0), false),
	Entry("light", 0.7, SoundSpinLight, true),
	Entry("medium", -1.5, SoundSpinMedium, true),
	Entry("heavy", 2.5, SoundSpinHeavy, true),
	Entry("threshold is exclusive", 2.0, SoundSpinMedium, true),
)
