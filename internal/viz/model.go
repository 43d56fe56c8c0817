package viz

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/retrotennis/internal/game"
	"github.com/san-kum/retrotennis/internal/input"
	"github.com/san-kum/retrotennis/internal/loop"
	"github.com/san-kum/retrotennis/internal/render"
)

const (
	width          = 80
	height         = 25
	spinCapacity   = 120
	recordW        = 400
	recordH        = 250
	DefaultGIFPath = "retrotennis.gif"
	DefaultSVGPath = "retrotennis.svg"
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Muter is the part of the audio collaborator the TUI controls.
type Muter interface {
	ToggleMute() bool
	Muted() bool
}

type Options struct {
	Theme   string
	Sound   Muter
	GIFPath string
	SVGPath string
	Logger  *log.Logger
}

// Model drives an engine from terminal input and draws it as Braille.
type Model struct {
	engine   *game.Engine
	driver   *loop.Driver
	renderer *render.Renderer
	canvas   *Canvas
	surface  *BrailleSurface
	keys     *latch
	theme    Theme
	sound    Muter
	logger   *log.Logger

	gifPath string
	svgPath string
	rec     *render.Recording
	raster  *render.Raster

	spin   []float64
	last   time.Time
	frames int
	status string
	now    func() time.Time
}

func NewModel(e *game.Engine, opts Options) (*Model, error) {
	cfg := e.Config()
	mode, err := loop.ParseMode(cfg.Loop.Mode)
	if err != nil {
		return nil, err
	}

	m := &Model{
		engine:   e,
		renderer: render.NewRenderer(),
		keys:     newLatch(),
		theme:    GetTheme(opts.Theme),
		sound:    opts.Sound,
		logger:   opts.Logger,
		gifPath:  opts.GIFPath,
		svgPath:  opts.SVGPath,
		spin:     make([]float64, 0, spinCapacity),
		now:      time.Now,
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard, "", 0)
	}
	if m.gifPath == "" {
		m.gifPath = DefaultGIFPath
	}
	if m.svgPath == "" {
		m.svgPath = DefaultSVGPath
	}
	m.renderer.Theme = m.theme.Scene
	m.resize(width, height)
	m.driver = loop.New(mode, cfg.Loop.StepHz, cfg.Loop.MaxSteps, e.Step, nil)
	return m, nil
}

func (m *Model) Init() tea.Cmd {
	return tick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg.String())
	case tea.WindowSizeMsg:
		m.fit(msg.Width, msg.Height)
	case TickMsg:
		m.step(time.Time(msg))
		return m, tick()
	}
	return m, nil
}

func (m *Model) handleKey(name string) tea.Cmd {
	switch name {
	case "q", "ctrl+c":
		m.stopRecording()
		return tea.Quit
	case "p", "esc":
		m.engine.TogglePause()
	case "r":
		m.releaseAll()
		m.engine.Reset()
		m.spin = m.spin[:0]
	case "enter":
		m.engine.Start()
	case "m":
		if m.sound != nil {
			m.sound.ToggleMute()
		}
	case "t":
		m.theme = nextTheme(m.theme.Name)
		m.renderer.Theme = m.theme.Scene
	case "g":
		if m.rec == nil {
			m.startRecording()
		} else {
			m.stopRecording()
		}
	case "x":
		m.saveSVG()
	default:
		k := input.Normalize(name)
		if m.keys.press(k, m.now()) {
			m.engine.OnKeyDown(k)
		}
	}
	return nil
}

func (m *Model) step(now time.Time) {
	for _, k := range m.keys.expire(now) {
		m.engine.OnKeyUp(k)
	}

	var dt time.Duration
	if !m.last.IsZero() {
		dt = now.Sub(m.last)
	}
	m.last = now

	m.driver.Frame(now)
	m.renderer.Tick(dt)
	m.frames++

	snap := m.engine.Snapshot()
	if snap.State == game.Playing {
		if len(m.spin) == spinCapacity {
			copy(m.spin, m.spin[1:])
			m.spin = m.spin[:spinCapacity-1]
		}
		m.spin = append(m.spin, snap.Ball.Spin)
	}
	if m.rec != nil && m.frames%2 == 0 {
		if err := m.renderer.Render(m.raster, snap); err == nil {
			m.rec.Capture(m.raster)
		}
	}
}

func (m *Model) releaseAll() {
	for _, k := range m.keys.release() {
		m.engine.OnKeyUp(k)
	}
}

func (m *Model) startRecording() {
	m.rec = render.NewRecording(2)
	m.raster = render.NewRaster(recordW, recordH)
	m.status = "recording"
}

func (m *Model) stopRecording() {
	if m.rec == nil {
		return
	}
	rec := m.rec
	m.rec, m.raster = nil, nil
	if rec.Len() == 0 {
		m.status = ""
		return
	}

	f, err := os.Create(m.gifPath)
	if err != nil {
		m.status = "gif: " + err.Error()
		m.logger.Printf("viz: create %s: %v", m.gifPath, err)
		return
	}
	defer f.Close()
	if err := rec.WriteGIF(f); err != nil {
		m.status = "gif: " + err.Error()
		m.logger.Printf("viz: write %s: %v", m.gifPath, err)
		return
	}
	m.status = fmt.Sprintf("saved %d frames to %s", rec.Len(), m.gifPath)
}

// saveSVG writes the court as last drawn.
func (m *Model) saveSVG() {
	if err := os.WriteFile(m.svgPath, []byte(m.canvas.SVG(4)), 0644); err != nil {
		m.status = "svg: " + err.Error()
		m.logger.Printf("viz: write %s: %v", m.svgPath, err)
		return
	}
	m.status = "saved " + m.svgPath
}

func (m *Model) resize(cols, rows int) {
	m.canvas = NewCanvas(cols, rows)
	m.surface = NewBrailleSurface(m.canvas)
}

// fit sizes the court to the terminal, keeping the field's aspect ratio.
func (m *Model) fit(termW, termH int) {
	cols := termW - panelWidth - 6
	rows := termH - 1
	cfg := m.engine.Config()
	f := cfg.FieldDims()
	if f.Width > 0 {
		if byWidth := int(float64(cols*2) * f.Height / f.Width / 4); byWidth < rows {
			rows = byWidth
		}
	}
	if cols < 20 {
		cols = 20
	}
	if rows < 6 {
		rows = 6
	}
	m.resize(cols, rows)
}

func (m *Model) View() string {
	snap := m.engine.Snapshot()
	if err := m.renderer.Render(m.surface, snap); err != nil {
		return err.Error()
	}
	canvasView := canvasStyle.Render(m.canvas.Render())

	var s strings.Builder
	s.WriteString(GradientText("MODERN RETRO TENNIS", m.theme.Primary, m.theme.Secondary) + "\n\n")
	s.WriteString(statusStyle(snap.State).Render(strings.ToUpper(snap.State.String())))
	if m.rec != nil {
		s.WriteString("  " + recording.Render("● REC"))
	}
	s.WriteString("\n\n")

	s.WriteString(labelStyle.Render("Score") + valueStyle.Render(fmt.Sprintf("%d - %d", snap.Score.Player, snap.Score.Opponent)) + "\n")
	s.WriteString(labelStyle.Render("Spin") + valueStyle.Render(fmt.Sprintf("%+.2f", snap.Ball.Spin)) + "\n")
	speed := snap.Ball.Speed()
	ratio := 0.0
	if snap.MaxBallSpeed > 0 {
		ratio = speed / snap.MaxBallSpeed
	}
	s.WriteString(labelStyle.Render("Speed") + ProgressBar(ratio, 12) + valueStyle.Render(fmt.Sprintf(" %.1f", speed)) + "\n")
	s.WriteString(labelStyle.Render("Loop") + valueStyle.Render(fmt.Sprintf("%s, %d dropped", m.driver.Mode(), m.driver.Dropped())) + "\n")
	sound := "off"
	if m.sound != nil {
		sound = "on"
		if m.sound.Muted() {
			sound = "muted"
		}
	}
	s.WriteString(labelStyle.Render("Sound") + valueStyle.Render(sound) + "\n")
	s.WriteString(labelStyle.Render("Theme") + valueStyle.Render(m.theme.Name) + "\n")

	if len(m.spin) > 1 {
		chart := asciigraph.Plot(m.spin, asciigraph.Height(5), asciigraph.Width(28), asciigraph.Caption("Spin"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	if m.status != "" {
		s.WriteString(valueStyle.Render(m.status) + "\n")
	}

	help := "W/S ↑/↓: left paddle"
	if snap.TwoPlayer {
		help += "  O/L: right"
	}
	help += "\nSP/Enter:Start P:Pause R:Reset\nM:Mute T:Theme G:Record X:SVG Q:Quit"
	s.WriteString(helpStyle.Render(help))

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, panelStyle.Render(s.String()))
}

// Run starts the terminal program and blocks until it quits.
func Run(m *Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
