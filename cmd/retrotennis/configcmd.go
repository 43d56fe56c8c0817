package main

import (
	"fmt"
	"os"

	"github.com/san-kum/retrotennis/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}
}

func configCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "inspect configuration",
	}

	dump := &cobra.Command{
		Use:   "dump",
		Short: "print the resolved config as yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(os.Stdout)
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return err
			}
			return enc.Close()
		},
	}

	check := &cobra.Command{
		Use:   "check [file]",
		Short: "validate a config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := config.Load(args[0]); err != nil {
				return err
			}
			fmt.Printf("%s: ok\n", args[0])
			return nil
		},
	}

	params := &cobra.Command{
		Use:   "params",
		Short: "list tunable parameters and their values",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			values := cfg.Params()
			for _, name := range config.ParamNames() {
				fmt.Printf("  %-22s %g\n", name, values[name])
			}
			return nil
		},
	}

	c.AddCommand(dump, check, params)
	return c
}
