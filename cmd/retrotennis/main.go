package main

import (
	"fmt"
	"log"
	"os"

	"github.com/san-kum/retrotennis/internal/audio"
	"github.com/san-kum/retrotennis/internal/config"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	seed       int64
	debug      bool
	mute       bool
	solo       bool

	logger = log.New(os.Stderr, "retrotennis: ", log.LstdFlags)
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "retrotennis",
		Short: "modern retro tennis with paddle spin",
		RunE:  runWindow,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "classic", "use preset configuration")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log paddle contacts")

	playFlags(rootCmd)

	rootCmd.AddCommand(playCmd(), tuiCmd(), simCmd(), tuneCmd(), snapshotCmd(), presetsCmd(), configCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the config file or preset, then applies flag
// overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if configFile != "" {
		cfg, err = config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	} else {
		cfg, err = config.Preset(preset)
		if err != nil {
			return nil, fmt.Errorf("%w (available: %v)", err, config.ListPresets())
		}
	}

	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if debug {
		cfg.Debug = true
	}
	if mute {
		cfg.Audio.Enabled = false
	}
	if solo {
		cfg.Match.TwoPlayer = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newSound opens the speaker. A machine without audio still gets a working
// manager that plays nothing.
func newSound(cfg *config.Config) *audio.SoundManager {
	if !cfg.Audio.Enabled {
		return nil
	}
	sm := audio.NewSoundManager(cfg.Audio.Volume)
	if err := sm.Initialize(); err != nil {
		logger.Printf("audio disabled: %v", err)
	}
	return sm
}
