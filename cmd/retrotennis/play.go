package main

import (
	"github.com/san-kum/retrotennis/internal/audio"
	"github.com/san-kum/retrotennis/internal/config"
	"github.com/san-kum/retrotennis/internal/game"
	"github.com/san-kum/retrotennis/internal/gui"
	"github.com/san-kum/retrotennis/internal/viz"
	"github.com/spf13/cobra"
)

var (
	theme   string
	gifPath string
)

func playFlags(c *cobra.Command) {
	c.Flags().BoolVar(&mute, "mute", false, "disable sound")
	c.Flags().BoolVar(&solo, "solo", false, "play against the autopilot")
}

func playCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "play",
		Short: "play in a window",
		RunE:  runWindow,
	}
	playFlags(c)
	return c
}

func tuiCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "tui",
		Short: "play in the terminal",
		RunE:  runTerminal,
	}
	playFlags(c)
	c.Flags().StringVar(&theme, "theme", "neon", "colour theme")
	c.Flags().StringVar(&gifPath, "gif", viz.DefaultGIFPath, "where G saves recordings")
	return c
}

func newEngine(cfg *config.Config, sm *audio.SoundManager, extra ...game.Option) (*game.Engine, error) {
	opts := append([]game.Option{game.WithLogger(logger)}, extra...)
	if sm != nil {
		opts = append(opts, game.WithSound(sm))
	}
	return game.New(*cfg, opts...)
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sm := newSound(cfg)
	board := gui.NewScoreboard()
	e, err := newEngine(cfg, sm, game.WithScoreDisplay(board))
	if err != nil {
		return err
	}

	opts := gui.Options{Score: board, Logger: logger}
	if sm != nil {
		defer sm.Cleanup()
		opts.Sound = sm
	}
	return gui.Run(e, opts)
}

func runTerminal(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sm := newSound(cfg)
	e, err := newEngine(cfg, sm)
	if err != nil {
		return err
	}

	opts := viz.Options{Theme: theme, GIFPath: gifPath, Logger: logger}
	if sm != nil {
		defer sm.Cleanup()
		opts.Sound = sm
	}
	m, err := viz.NewModel(e, opts)
	if err != nil {
		return err
	}
	return viz.Run(m)
}
