package viz

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/retrotennis/internal/config"
	"github.com/san-kum/retrotennis/internal/game"
	"github.com/san-kum/retrotennis/internal/input"
	"github.com/san-kum/retrotennis/internal/render"
)

func TestCanvasSetUnset(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected dot 1, got %U", c.Grid[0][0])
	}
	if c.Grid[0][1] != 0x2880 {
		t.Errorf("expected dot 8, got %U", c.Grid[0][1])
	}
	if !c.Lit(3, 3) || c.Lit(2, 3) {
		t.Error("Lit disagrees with Set")
	}

	c.Unset(0, 0)
	if c.Grid[0][0] != blank {
		t.Errorf("expected blank cell, got %U", c.Grid[0][0])
	}

	c.Set(-1, 0)
	c.Set(4, 0)
	c.Set(0, 4)
	if c.String() != "\u2800\u2880\n" {
		t.Errorf("out of range dots should be ignored, got %q", c.String())
	}
}

func TestCanvasTextAndRender(t *testing.T) {
	c := NewCanvas(6, 2)
	c.DrawLine(0, 0, 11, 0, "#ffffff")
	c.PutText(1, 1, "HEY", "#ffcc00")
	c.PutText(4, 1, "CLIPPED", "#ffcc00")

	lines := strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(lines))
	}
	if !strings.Contains(lines[1], "HEYCL") {
		t.Errorf("expected clipped text in row, got %q", lines[1])
	}
	if []rune(lines[0])[5] != 0x2809 {
		t.Errorf("expected top dots across the row, got %q", lines[0])
	}
	if !strings.Contains(c.Render(), "HEY") {
		t.Error("styled render lost the text")
	}

	c.Clear()
	if strings.ContainsAny(c.String(), "HEY") {
		t.Error("clear should remove text")
	}
}

func TestBrailleSurfaceThreshold(t *testing.T) {
	c := NewCanvas(10, 5)
	s := NewBrailleSurface(c)

	w, h := s.Size()
	if w != 20 || h != 20 {
		t.Fatalf("expected 20x20 dots, got %vx%v", w, h)
	}

	s.FillRect(0, 0, 20, 20, render.RGBA(255, 255, 255, 0.05))
	if c.Lit(5, 5) {
		t.Error("faint fill should not light dots")
	}

	s.FillRect(0, 0, 20, 20, render.RGBA(255, 204, 0, 0.9))
	if !c.Lit(5, 5) || !c.Lit(19, 19) {
		t.Error("bright fill should light every dot")
	}
	if c.Colors[1][2] != "#ffcc00" {
		t.Errorf("expected cell tint #ffcc00, got %q", c.Colors[1][2])
	}

	s.FillRect(0, 0, 10, 20, render.RGBA(0, 0, 0, 0.7))
	if c.Lit(5, 5) {
		t.Error("dark shade should erase")
	}
	if !c.Lit(15, 5) {
		t.Error("shade should only erase its own area")
	}
}

func TestBrailleSurfaceShapes(t *testing.T) {
	c := NewCanvas(20, 10)
	s := NewBrailleSurface(c)
	white := render.RGBA(255, 255, 255, 1)

	s.FillCircle(20, 20, 4, white)
	if !c.Lit(20, 20) || c.Lit(20, 26) {
		t.Error("circle fill wrong")
	}

	s.Clear(render.Color{})
	s.FillTriangle(0, 0, 10, 0, 0, 10, white)
	if !c.Lit(2, 2) || c.Lit(9, 9) {
		t.Error("triangle fill wrong")
	}

	s.Clear(render.Color{})
	s.Arc(20, 20, 8, 0, 3.14159/2, 2, white)
	if !c.Lit(28, 20) || !c.Lit(20, 28) || c.Lit(12, 20) {
		t.Error("quarter arc should run clockwise from +x to +y")
	}

	s.Clear(render.Color{})
	s.Text(20, 20, "GO", 12, white)
	if !strings.Contains(c.String(), "GO") {
		t.Error("text missing")
	}
}

func TestLatch(t *testing.T) {
	l := newLatch()
	t0 := time.Unix(0, 0)

	if !l.press(input.KeyW, t0) {
		t.Fatal("first press should be new")
	}
	if got := l.expire(t0.Add(400 * time.Millisecond)); len(got) != 0 {
		t.Fatalf("released during autorepeat delay: %v", got)
	}
	if l.press(input.KeyW, t0.Add(450*time.Millisecond)) {
		t.Error("repeat should not be a new press")
	}
	if got := l.expire(t0.Add(550 * time.Millisecond)); len(got) != 0 {
		t.Fatalf("released between repeats: %v", got)
	}
	got := l.expire(t0.Add(600 * time.Millisecond))
	if len(got) != 1 || got[0] != input.KeyW {
		t.Errorf("expected w released, got %v", got)
	}

	l.press(input.KeyS, t0)
	l.press(input.KeyL, t0)
	if got := l.release(); len(got) != 2 || got[0] != input.KeyL {
		t.Errorf("expected sorted release of both keys, got %v", got)
	}
}

type fakeMuter struct {
	muted bool
}

func (f *fakeMuter) ToggleMute() bool {
	f.muted = !f.muted
	return f.muted
}

func (f *fakeMuter) Muted() bool {
	return f.muted
}

func newModel(t *testing.T) (*Model, *game.Engine) {
	t.Helper()
	e, err := game.New(*config.DefaultConfig(), game.WithRand(rand.New(rand.NewSource(1))))
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	m, err := NewModel(e, Options{
		Sound:   &fakeMuter{},
		GIFPath: filepath.Join(dir, "out.gif"),
		SVGPath: filepath.Join(dir, "out.svg"),
	})
	if err != nil {
		t.Fatal(err)
	}
	return m, e
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelKeys(t *testing.T) {
	m, e := newModel(t)
	clock := time.Unix(100, 0)
	m.now = func() time.Time { return clock }

	m.Update(key(" "))
	if e.State() != game.Playing {
		t.Fatalf("space should start the match, got %v", e.State())
	}

	m.Update(key("w"))
	if !e.Keys().IsDown(input.KeyW) {
		t.Fatal("w should be held")
	}
	m.Update(TickMsg(clock.Add(time.Second)))
	if e.Keys().IsDown(input.KeyW) {
		t.Error("w should be released once repeats stop")
	}

	m.Update(key("p"))
	if e.State() != game.Paused {
		t.Errorf("p should pause, got %v", e.State())
	}
	m.Update(key("p"))
	if e.State() != game.Playing {
		t.Errorf("p should resume, got %v", e.State())
	}

	m.Update(key("m"))
	if !m.sound.Muted() {
		t.Error("m should mute")
	}

	m.Update(key("t"))
	if m.theme.Name != "phosphor" {
		t.Errorf("expected phosphor theme, got %s", m.theme.Name)
	}

	m.Update(key("r"))
	if e.State() != game.Menu {
		t.Errorf("r should reset to menu, got %v", e.State())
	}

	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected quit message")
	}
}

func TestModelTicksEngine(t *testing.T) {
	m, e := newModel(t)
	e.Start()
	x := e.Snapshot().Ball.X

	t0 := time.Unix(0, 0)
	for i := 0; i <= 10; i++ {
		m.Update(TickMsg(t0.Add(time.Duration(i) * time.Second / 60)))
	}
	if e.Snapshot().Ball.X == x {
		t.Error("ticks should advance the ball")
	}
	if len(m.spin) == 0 {
		t.Error("spin history should grow while playing")
	}
}

func TestModelView(t *testing.T) {
	m, _ := newModel(t)
	m.renderer.FadeDuration = 0
	v := m.View()
	for _, want := range []string{"MENU", "0 - 0", "PRESS SPACE TO START"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModelRecording(t *testing.T) {
	m, e := newModel(t)
	e.Start()

	m.Update(key("g"))
	if m.rec == nil {
		t.Fatal("g should start recording")
	}
	t0 := time.Unix(0, 0)
	for i := 0; i < 6; i++ {
		m.Update(TickMsg(t0.Add(time.Duration(i) * time.Second / 60)))
	}
	m.Update(key("g"))
	if m.rec != nil {
		t.Fatal("second g should stop recording")
	}
	if !strings.HasPrefix(m.status, "saved 3 frames") {
		t.Errorf("unexpected status %q", m.status)
	}
}

func TestFitKeepsAspect(t *testing.T) {
	m, _ := newModel(t)
	m.Update(tea.WindowSizeMsg{Width: 200, Height: 80})
	w, h := m.surface.Size()
	if ratio := w / h; ratio < 1.4 || ratio > 1.8 {
		t.Errorf("expected court ratio near 1.6, got %f", ratio)
	}
}

func TestGetTheme(t *testing.T) {
	if GetTheme("mono").Name != "mono" {
		t.Error("expected mono theme")
	}
	if GetTheme("missing").Name != "neon" {
		t.Error("expected neon fallback")
	}
	if len(ThemeNames()) != 3 {
		t.Errorf("expected 3 themes, got %v", ThemeNames())
	}
}

func TestCanvasSVG(t *testing.T) {
	c := NewCanvas(2, 1)
	c.SetColor(0, 0, "#00f3ff")
	c.SetColor(1, 3, "#00f3ff")
	c.PutText(1, 0, "<", "#ffffff")

	svg := c.SVG(2)
	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("not an svg document")
	}
	if n := strings.Count(svg, "<circle"); n != 2 {
		t.Errorf("expected 2 dots, got %d", n)
	}
	if !strings.Contains(svg, `fill="#00f3ff"`) {
		t.Error("dot colour missing")
	}
	if !strings.Contains(svg, "&lt;</text>") {
		t.Error("text should be escaped")
	}
}

func TestModelSaveSVG(t *testing.T) {
	m, _ := newModel(t)
	m.View()
	m.Update(key("x"))
	data, err := os.ReadFile(m.svgPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("expected svg output")
	}
	if !strings.HasPrefix(m.status, "saved") {
		t.Errorf("unexpected status %q", m.status)
	}
}
