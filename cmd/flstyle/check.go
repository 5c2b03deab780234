package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/go-drift/floatinglabel/pkg/stylesheet"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Validate style sheets",
		Long:  "Parse each style sheet, check its version and colors, and report the sections it sets.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				s, err := stylesheet.LoadFile(path)
				if err != nil {
					a.logger.Debug("style sheet rejected", zap.String("path", path), zap.Error(err))
					fmt.Fprintf(cmd.ErrOrStderr(), "FAIL %v\n", err)
					failed++
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "ok   %s (%s) %v\n", path, s.Version, sections(s))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d style sheets failed", failed, len(args))
			}
			return nil
		},
	}
}

func sections(s *stylesheet.Sheet) []string {
	var out []string
	add := func(set bool, name string) {
		if set {
			out = append(out, name)
		}
	}
	add(s.DarkTheme != nil, "darkTheme")
	add(s.Label != nil, "label")
	add(s.LabelText != nil, "labelText")
	add(s.Container != nil, "container")
	add(s.Input != nil, "input")
	add(s.Toggle != nil, "toggle")
	add(s.ToggleImage != nil, "toggleImage")
	return out
}
