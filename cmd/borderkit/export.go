package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/borderkit/internal/border"
	"github.com/alexisbeaulieu97/borderkit/internal/config"
	"github.com/alexisbeaulieu97/borderkit/internal/surface"
	"github.com/alexisbeaulieu97/borderkit/pkg/diff"
	bkerrors "github.com/alexisbeaulieu97/borderkit/pkg/errors"
)

type exportOptions struct {
	Preset      string
	Mode        string
	Solid       string
	Start       string
	End         string
	Angle       int
	OuterRadius int
	ImageRadius int
	Shadow      int
	Padding     int
	Ratio       string
	Out         string
	Compare     string

	// changed lists overridden flags in the order they are applied.
	changed []string
}

// exportOverrides maps export flags to the control they drive.
var exportOverrides = []struct {
	flag  string
	input border.ElementID
	value func(*exportOptions) string
}{
	{"mode", border.ModeGroup, func(o *exportOptions) string { return o.Mode }},
	{"solid", border.SolidColorInput, func(o *exportOptions) string { return o.Solid }},
	{"start", border.GradientStartInput, func(o *exportOptions) string { return o.Start }},
	{"end", border.GradientEndInput, func(o *exportOptions) string { return o.End }},
	{"angle", border.AngleInput, func(o *exportOptions) string { return strconv.Itoa(o.Angle) }},
	{"outer-radius", border.OuterRadiusInput, func(o *exportOptions) string { return strconv.Itoa(o.OuterRadius) }},
	{"image-radius", border.ImageRadiusInput, func(o *exportOptions) string { return strconv.Itoa(o.ImageRadius) }},
	{"shadow", border.ShadowInput, func(o *exportOptions) string { return strconv.Itoa(o.Shadow) }},
	{"padding", border.PaddingInput, func(o *exportOptions) string { return strconv.Itoa(o.Padding) }},
	{"ratio", border.RatioGroup, func(o *exportOptions) string { return o.Ratio }},
}

func newExportCmd(root *rootFlags) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the HTML snippet for a preset and overrides",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, o := range exportOverrides {
				if cmd.Flags().Changed(o.flag) {
					opts.changed = append(opts.changed, o.flag)
				}
			}
			return runExport(cmd, root, opts)
		},
	}

	defaults := border.DefaultPreset()
	cmd.Flags().StringVar(&opts.Preset, "preset", "", "Preset to start from")
	cmd.Flags().StringVar(&opts.Mode, "mode", string(defaults.Mode), "Background mode: solid or gradient")
	cmd.Flags().StringVar(&opts.Solid, "solid", defaults.SolidColor, "Solid background colour")
	cmd.Flags().StringVar(&opts.Start, "start", defaults.GradientStart, "Gradient start colour")
	cmd.Flags().StringVar(&opts.End, "end", defaults.GradientEnd, "Gradient end colour")
	cmd.Flags().IntVar(&opts.Angle, "angle", defaults.AngleDegrees, "Gradient angle in degrees")
	cmd.Flags().IntVar(&opts.OuterRadius, "outer-radius", defaults.OuterRadiusPx, "Container corner radius in px")
	cmd.Flags().IntVar(&opts.ImageRadius, "image-radius", defaults.ImageRadiusPx, "Image corner radius in px")
	cmd.Flags().IntVar(&opts.Shadow, "shadow", defaults.ShadowStrength, "Shadow strength")
	cmd.Flags().IntVar(&opts.Padding, "padding", defaults.PaddingPx, "Container padding in px")
	cmd.Flags().StringVar(&opts.Ratio, "ratio", border.AspectAuto, "Aspect ratio as W:H, or auto")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "Write the snippet to a file instead of stdout")
	cmd.Flags().StringVar(&opts.Compare, "compare", "", "Print a diff against a saved snippet")

	return cmd
}

func runExport(cmd *cobra.Command, root *rootFlags, opts *exportOptions) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	log, closeLog, err := newLogger(root, cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	presetName := opts.Preset
	if presetName == "" && cfg != nil {
		presetName = cfg.Settings.Preset
	}
	catalog := config.NewCatalog(cfg)

	doc := surface.NewStandardDocument()
	ctrl := border.NewController(nil, doc, border.WithLogger(log))
	ctrl.Sync()

	if presetName != "" {
		preset, ok := catalog.Lookup(presetName)
		if !ok {
			return bkerrors.NewValidationError("preset", fmt.Sprintf("unknown preset %q", presetName), nil)
		}
		ctrl.ApplyPreset(preset)
	}

	for _, flag := range opts.changed {
		for _, o := range exportOverrides {
			if o.flag != flag {
				continue
			}
			value := o.value(opts)
			if !ctrl.HandleInput(o.input, value) {
				return bkerrors.NewValidationError(flag, fmt.Sprintf("invalid value %q", value), nil)
			}
		}
	}

	snippet := ctrl.Snippet()
	log.WithFields(map[string]any{"preset": presetName, "overrides": len(opts.changed)}).Debug("snippet generated")

	if opts.Compare != "" {
		saved, err := os.ReadFile(opts.Compare)
		if err != nil {
			return bkerrors.NewLoadError(opts.Compare, err)
		}
		out := diff.GenerateUnifiedDiff(saved, []byte(snippet), opts.Compare, "current")
		if out == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "no changes")
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}

	if opts.Out != "" {
		if err := os.WriteFile(opts.Out, []byte(snippet), 0o644); err != nil {
			return fmt.Errorf("write snippet: %w", err)
		}
		log.WithFields(map[string]any{"path": opts.Out}).Info("snippet written")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), snippet)
	return nil
}
