package loop

import (
	"testing"
	"time"
)

type recorder struct {
	steps   []time.Duration
	renders int
}

func (r *recorder) update(dt time.Duration) {
	r.steps = append(r.steps, dt)
}

func (r *recorder) render() {
	r.renders++
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"fixed", Fixed, false},
		{"variable", Variable, false},
		{"", Fixed, false},
		{"turbo", Variable, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q): unexpected error %v", tt.in, err)
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseMode(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestVariableMode(t *testing.T) {
	r := &recorder{}
	d := New(Variable, 60, 5, r.update, r.render)
	t0 := time.Unix(0, 0)

	d.Frame(t0)
	d.Frame(t0.Add(16 * time.Millisecond))
	d.Frame(t0.Add(50 * time.Millisecond))

	want := []time.Duration{0, 16 * time.Millisecond, 34 * time.Millisecond}
	if len(r.steps) != len(want) {
		t.Fatalf("expected %d steps, got %d", len(want), len(r.steps))
	}
	for i := range want {
		if r.steps[i] != want[i] {
			t.Errorf("step %d: expected %v, got %v", i, want[i], r.steps[i])
		}
	}
	if r.renders != 3 {
		t.Errorf("expected 3 renders, got %d", r.renders)
	}
}

func TestFixedMode(t *testing.T) {
	r := &recorder{}
	d := New(Fixed, 100, 5, r.update, r.render)
	t0 := time.Unix(0, 0)

	if n := d.Frame(t0); n != 0 {
		t.Errorf("first frame should not step, got %d", n)
	}
	if n := d.Frame(t0.Add(25 * time.Millisecond)); n != 2 {
		t.Errorf("expected 2 steps, got %d", n)
	}
	// 5ms carried over
	if n := d.Frame(t0.Add(30 * time.Millisecond)); n != 1 {
		t.Errorf("expected 1 step from carry, got %d", n)
	}
	for i, dt := range r.steps {
		if dt != 10*time.Millisecond {
			t.Errorf("step %d: expected 10ms, got %v", i, dt)
		}
	}
}

func TestFixedModeCapsSteps(t *testing.T) {
	r := &recorder{}
	d := New(Fixed, 100, 5, r.update, nil)
	t0 := time.Unix(0, 0)

	d.Frame(t0)
	if n := d.Frame(t0.Add(time.Second)); n != 5 {
		t.Errorf("expected capped 5 steps, got %d", n)
	}
	if d.Dropped() != 95 {
		t.Errorf("expected 95 dropped steps, got %d", d.Dropped())
	}
	if n := d.Frame(t0.Add(time.Second + 10*time.Millisecond)); n != 1 {
		t.Errorf("backlog should be dropped, got %d steps", n)
	}
}

func TestReset(t *testing.T) {
	r := &recorder{}
	d := New(Variable, 60, 5, r.update, nil)
	t0 := time.Unix(0, 0)

	d.Frame(t0)
	d.Reset()
	d.Frame(t0.Add(time.Hour))
	if r.steps[1] != 0 {
		t.Errorf("expected zero elapsed after reset, got %v", r.steps[1])
	}
}
