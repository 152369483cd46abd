package main

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/borderkit/internal/config"
	"github.com/alexisbeaulieu97/borderkit/internal/imagesource"
	"github.com/alexisbeaulieu97/borderkit/internal/tui"
)

type editOptions struct {
	Image  string
	Preset string
	Dark   bool
	Out    string
}

var errNotInteractive = errors.New("edit needs an interactive terminal; use `borderkit export` instead")

// editProgramRunner is replaced in tests.
var editProgramRunner = func(m tui.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func newEditCmd(root *rootFlags) *cobra.Command {
	opts := &editOptions{}

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open the interactive frame editor",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isInteractive() {
				return errNotInteractive
			}
			return runEdit(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Image, "image", "", "Image to frame")
	cmd.Flags().StringVar(&opts.Preset, "preset", "", "Preset to start from")
	cmd.Flags().BoolVar(&opts.Dark, "dark", false, "Use the dark colour picker theme")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", tui.DefaultOutPath, "File the snippet is written to")

	return cmd
}

func runEdit(cmd *cobra.Command, root *rootFlags, opts *editOptions) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	log, closeLog, err := newLogger(root, cfg, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	preset, dark := opts.Preset, opts.Dark
	if cfg != nil {
		if preset == "" {
			preset = cfg.Settings.Preset
		}
		if !cmd.Flags().Changed("dark") {
			dark = cfg.Settings.DarkMode
		}
	}

	m, err := tui.NewModel(tui.Options{
		Catalog:   config.NewCatalog(cfg),
		Preset:    preset,
		Loader:    imagesource.NewLoader(),
		ImagePath: opts.Image,
		DarkMode:  dark,
		OutPath:   opts.Out,
		Logger:    log,
	})
	if err != nil {
		return err
	}

	log.WithFields(map[string]any{"preset": m.Preset()}).Info("launching editor")
	if err := editProgramRunner(m); err != nil {
		log.Error(err, "editor failed")
		return fmt.Errorf("run editor: %w", err)
	}
	log.Info("editor closed")
	return nil
}
