package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/go-drift/floatinglabel/pkg/floatinglabel"
	"github.com/go-drift/floatinglabel/pkg/stylesheet"
)

type demoConfig struct {
	Sheet     string `env:"FLSTYLE_SHEET"`
	DarkTheme bool   `env:"FLSTYLE_DARK_THEME"`
	EnvFile   string
}

// loadDemoConfig reads the optional env file and the environment, then lets
// explicitly set flags win. Variables already set take precedence over the
// env file.
func loadDemoConfig(cmd *cobra.Command, flags demoConfig) (demoConfig, error) {
	var c demoConfig
	if flags.EnvFile != "" {
		if err := godotenv.Load(flags.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return c, fmt.Errorf("failed to load %s: %w", flags.EnvFile, err)
		}
	}
	if err := env.Parse(&c); err != nil {
		return c, fmt.Errorf("failed to read environment: %w", err)
	}
	if cmd.Flags().Changed("sheet") {
		c.Sheet = flags.Sheet
	}
	if cmd.Flags().Changed("dark") {
		c.DarkTheme = flags.DarkTheme
	}
	return c, nil
}

// options builds the field options for the demo. The sheet is applied after
// the dark flag so a sheet that sets darkTheme wins.
func (c demoConfig) options() (floatinglabel.Options, error) {
	o := floatinglabel.Options{DarkTheme: c.DarkTheme}
	if c.Sheet == "" {
		return o, nil
	}
	s, err := stylesheet.LoadFile(c.Sheet)
	if err != nil {
		return o, err
	}
	if err := s.Apply(&o); err != nil {
		return o, err
	}
	return o, nil
}
