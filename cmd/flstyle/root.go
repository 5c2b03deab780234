package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/go-drift/floatinglabel/internal/logging"
)

// app carries state shared by all subcommands.
type app struct {
	logLevel string
	logType  string
	logger   *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "flstyle",
		Short: "Check floating label style sheets and export their assets",
		Long: `flstyle works with the YAML style sheets read by floating label inputs.
It validates sheets, prints the default sheet, renders the password toggle
icons to PNG files and runs a terminal demo of a login form.`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := logging.NewLogger(logging.Config{
				Level:       a.logLevel,
				Type:        a.logType,
				OutputPaths: []string{"stderr"},
			})
			if err != nil {
				return err
			}
			a.logger = logger.Named(cmd.Name())
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flags.StringVar(&a.logType, "log-type", string(logging.LogTypeDevelopment), "logger preset (development, production)")

	cmd.AddCommand(
		newCheckCmd(a),
		newDefaultsCmd(a),
		newIconsCmd(a),
		newDemoCmd(a),
	)
	return cmd
}
