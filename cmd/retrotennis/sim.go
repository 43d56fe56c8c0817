package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/retrotennis/internal/config"
	"github.com/san-kum/retrotennis/internal/experiment"
	"github.com/san-kum/retrotennis/internal/metrics"
	"github.com/san-kum/retrotennis/internal/optim"
	"github.com/spf13/cobra"
)

var (
	matches   int
	maxFrames int
	left      string
	right     string
	grid      []string
	metric    string
	maximize  bool
)

func headlessFlags(c *cobra.Command) {
	c.Flags().IntVar(&maxFrames, "frames", experiment.DefaultMaxFrames, "frame cap per match")
	c.Flags().StringVar(&left, "left", "autopilot", "left controller")
	c.Flags().StringVar(&right, "right", "autopilot", "right controller")
}

func simCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "sim",
		Short: "play matches headlessly and report metrics",
		RunE:  runSim,
	}
	headlessFlags(c)
	c.Flags().IntVar(&matches, "matches", 4, "number of matches, run in parallel")
	return c
}

func tuneCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "tune",
		Short: "grid search config parameters",
		RunE:  runTune,
	}
	headlessFlags(c)
	c.Flags().StringArrayVar(&grid, "grid", []string{"ai.difficulty=0.4:1.2:5"}, "parameter range as name=lo:hi:n (repeatable)")
	c.Flags().StringVar(&metric, "metric", "rally_length", "metric to optimise")
	c.Flags().BoolVar(&maximize, "maximize", true, "maximise instead of minimise")
	return c
}

func baseExperiment(cmd *cobra.Command) (experiment.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return experiment.Config{}, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return experiment.Config{
		Game:      *cfg,
		Left:      left,
		Right:     right,
		Seed:      cfg.Seed,
		MaxFrames: maxFrames,
	}, nil
}

func runSim(cmd *cobra.Command, args []string) error {
	base, err := baseExperiment(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("playing %d matches (%s vs %s)...\n", matches, base.Left, base.Right)
	start := time.Now()

	reg := experiment.NewRegistry()
	results, err := experiment.NewEnsemble(base, reg, matches, base.Seed).Run(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Printf("completed in %v\n\n", time.Since(start))

	names := metrics.NewSet(reg.DefaultMetrics()...).Names()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	header := "SEED\tSCORE\tWINNER\tFRAMES"
	for _, name := range names {
		header += "\t" + strings.ToUpper(name)
	}
	fmt.Fprintln(w, header)
	for i, r := range results {
		winner := r.Winner
		if winner == "" {
			winner = "-"
		}
		line := fmt.Sprintf("%d\t%d - %d\t%s\t%d", base.Seed+int64(i), r.Score.Player, r.Score.Opponent, winner, r.Frames)
		for _, name := range names {
			line += fmt.Sprintf("\t%.2f", r.Metrics[name])
		}
		fmt.Fprintln(w, line)
	}
	w.Flush()

	fmt.Println("\nmeans:")
	for _, name := range names {
		fmt.Printf("  %s: %.4f\n", name, experiment.Mean(results, name))
	}

	if len(results) > 0 && len(results[0].Spin) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(results[0].Spin,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("ball spin, first match"),
		))
	}
	return nil
}

func runTune(cmd *cobra.Command, args []string) error {
	base, err := baseExperiment(cmd)
	if err != nil {
		return err
	}

	params := make([]string, 0, len(grid))
	ranges := make([][]float64, 0, len(grid))
	for _, g := range grid {
		name, values, err := parseGrid(g)
		if err != nil {
			return err
		}
		params = append(params, name)
		ranges = append(ranges, values)
	}

	reg := experiment.NewRegistry()
	build := func(p map[string]float64) (*experiment.Experiment, error) {
		cfg := base
		cfg.Params = p
		exp := experiment.New(cfg)
		if err := exp.Setup(reg, reg.DefaultMetrics()); err != nil {
			return nil, err
		}
		return exp, nil
	}

	gs := optim.NewGridSearch(params, ranges)
	gs.Maximize = maximize
	best, val, err := gs.Search(cmd.Context(), build, metric)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", strings.ToUpper(strings.Join(params, "\t")), strings.ToUpper(metric))
	for _, tr := range gs.Trials() {
		cols := make([]string, 0, len(params)+1)
		for _, p := range params {
			cols = append(cols, strconv.FormatFloat(tr.Params[p], 'f', 3, 64))
		}
		if tr.Err != nil {
			cols = append(cols, "error: "+tr.Err.Error())
		} else {
			cols = append(cols, strconv.FormatFloat(tr.Value, 'f', 4, 64))
		}
		fmt.Fprintln(w, strings.Join(cols, "\t"))
	}
	w.Flush()

	fmt.Printf("\nbest %s = %.4f at", metric, val)
	for _, p := range params {
		fmt.Printf(" %s=%.3f", p, best[p])
	}
	fmt.Println()
	return nil
}

// parseGrid reads name=lo:hi:n.
func parseGrid(s string) (string, []float64, error) {
	name, bounds, ok := strings.Cut(s, "=")
	if !ok {
		return "", nil, fmt.Errorf("bad grid %q: want name=lo:hi:n", s)
	}
	if _, ok := config.DefaultConfig().Params()[name]; !ok {
		return "", nil, fmt.Errorf("bad grid %q: unknown parameter (available: %v)", s, config.ParamNames())
	}
	parts := strings.Split(bounds, ":")
	if len(parts) != 3 {
		return "", nil, fmt.Errorf("bad grid %q: want name=lo:hi:n", s)
	}
	lo, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return "", nil, fmt.Errorf("bad grid %q: %w", s, err)
	}
	hi, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return "", nil, fmt.Errorf("bad grid %q: %w", s, err)
	}
	n, err := strconv.Atoi(parts[2])
	if err != nil || n < 1 {
		return "", nil, fmt.Errorf("bad grid %q: n must be a positive integer", s)
	}
	return name, optim.Range(lo, hi, n), nil
}
