package main

import (
	"github.com/spf13/cobra"

	"github.com/go-drift/floatinglabel/pkg/stylesheet"
)

func newDefaultsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the default style sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := stylesheet.Marshal(stylesheet.Default())
			if err != nil {
				return err
			}
			a.logger.Debug("writing default style sheet")
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
