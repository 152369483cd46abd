package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/borderkit/internal/config"
	"github.com/alexisbeaulieu97/borderkit/internal/logger"
)

type rootFlags struct {
	verbose     bool
	presetsPath string
	logFile     string
}

// isInteractive is replaced in tests.
var isInteractive = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "borderkit",
		Short:         "borderkit frames an image and exports the result as an HTML snippet",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return cmd.Help()
			}
			// Without a terminal there is nothing to edit; print the
			// snippet for the configured preset instead.
			if !isInteractive() {
				return runExport(cmd, flags, &exportOptions{})
			}
			return runEdit(cmd, flags, &editOptions{})
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.presetsPath, "presets", "", "Path to a preset file")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file")

	cmd.AddCommand(newEditCmd(flags))
	cmd.AddCommand(newExportCmd(flags))
	cmd.AddCommand(newPresetsCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadConfig reads the preset file when one is given. A nil config means
// only the built-in presets are available.
func loadConfig(flags *rootFlags) (*config.Config, error) {
	if flags.presetsPath == "" {
		return nil, nil
	}
	return config.ParseConfig(flags.presetsPath)
}

// newLogger builds the command logger. fallback receives logs when no log
// file is configured; the editor passes io.Discard since it owns the terminal.
func newLogger(flags *rootFlags, cfg *config.Config, fallback io.Writer) (*logger.Logger, func(), error) {
	level := "info"
	if cfg != nil && cfg.Settings.LogLevel != "" {
		level = cfg.Settings.LogLevel
	}
	if flags.verbose {
		level = "debug"
	}

	writer := fallback
	closeFn := func() {}
	humanReadable := true
	if flags.logFile != "" {
		f, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		writer = f
		humanReadable = false
		closeFn = func() { _ = f.Close() }
	}

	log, err := logger.New(logger.Options{Level: level, HumanReadable: humanReadable, Writer: writer})
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return log, closeFn, nil
}
