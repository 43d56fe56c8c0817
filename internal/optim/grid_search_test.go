package optim

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/san-kum/retrotennis/internal/config"
	"github.com/san-kum/retrotennis/internal/experiment"
)

func builder(maxFrames int) Builder {
	reg := experiment.NewRegistry()
	return func(params map[string]float64) (*experiment.Experiment, error) {
		exp := experiment.New(experiment.Config{
			Game:      *config.GetPreset("small"),
			Seed:      9,
			MaxFrames: maxFrames,
			Params:    params,
		})
		if err := exp.Setup(reg, reg.DefaultMetrics()); err != nil {
			return nil, err
		}
		return exp, nil
	}
}

func TestGridSearchVisitsEveryPoint(t *testing.T) {
	g := NewGridSearch(
		[]string{"ai.difficulty", "spin.factor"},
		[][]float64{{0.4, 0.8}, {0.1, 0.2, 0.3}},
	)
	params, best, err := g.Search(context.Background(), builder(600), "peak_ball_speed")
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Trials()) != 6 {
		t.Fatalf("expected 6 trials, got %d", len(g.Trials()))
	}
	if _, ok := params["ai.difficulty"]; !ok {
		t.Errorf("best params missing ai.difficulty: %v", params)
	}
	for _, tr := range g.Trials() {
		if tr.Err != nil {
			t.Errorf("trial %v failed: %v", tr.Params, tr.Err)
		}
		if tr.Value < best {
			t.Errorf("trial %v beat the reported best %f", tr.Params, best)
		}
	}
}

func TestGridSearchMaximize(t *testing.T) {
	g := NewGridSearch([]string{"ball.initial_speed"}, [][]float64{{3, 6, 9}})
	g.Maximize = true

	params, best, err := g.Search(context.Background(), builder(1), "peak_ball_speed")
	if err != nil {
		t.Fatal(err)
	}
	if params["ball.initial_speed"] != 9 {
		t.Errorf("expected fastest serve to win, got %v", params)
	}
	if math.Abs(best-9) > 1e-6 {
		t.Errorf("expected peak speed 9, got %f", best)
	}
}

func TestGridSearchAllFail(t *testing.T) {
	g := NewGridSearch([]string{"bogus"}, [][]float64{{1, 2}})
	_, _, err := g.Search(context.Background(), builder(10), "paddle_hits")
	if !errors.Is(err, ErrNoTrials) {
		t.Errorf("expected ErrNoTrials, got %v", err)
	}
	if len(g.Trials()) != 2 {
		t.Errorf("failed trials should still be recorded")
	}
}

func TestGridSearchMismatchedRanges(t *testing.T) {
	g := NewGridSearch([]string{"a", "b"}, [][]float64{{1}})
	if _, _, err := g.Search(context.Background(), builder(10), "paddle_hits"); err == nil {
		t.Error("expected error")
	}
}

func TestGridSearchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := NewGridSearch([]string{"ai.difficulty"}, [][]float64{{0.5}})
	if _, _, err := g.Search(ctx, builder(10), "paddle_hits"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRange(t *testing.T) {
	got := Range(0.2, 1, 5)
	want := []float64{0.2, 0.4, 0.6, 0.8, 1}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("Range[%d]: expected %f, got %f", i, want[i], got[i])
		}
	}
	if len(Range(1, 2, 0)) != 1 {
		t.Error("expected single value for n<=1")
	}
}
