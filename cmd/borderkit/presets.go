package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/borderkit/internal/border"
	"github.com/alexisbeaulieu97/borderkit/internal/config"
)

type presetsOptions struct {
	JSON bool
}

func newPresetsCmd(root *rootFlags) *cobra.Command {
	opts := &presetsOptions{}

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List built-in and configured presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPresets(cmd, root, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output presets as JSON")

	return cmd
}

func runPresets(cmd *cobra.Command, root *rootFlags, opts *presetsOptions) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	catalog := config.NewCatalog(cfg)
	names := catalog.Names()

	if opts.JSON {
		payload := make([]config.Preset, 0, len(names))
		for _, name := range names {
			p, _ := catalog.Lookup(name)
			payload = append(payload, config.FromBorderPreset(p))
		}
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tMODE\tFILL\tPADDING\tRADIUS\tSHADOW\tRATIO")
	for _, name := range names {
		p, _ := catalog.Lookup(name)
		fmt.Fprintf(writer, "%s\t%s\t%s\t%dpx\t%dpx/%dpx\t%d\t%s\n",
			p.Name,
			p.Mode,
			fill(p),
			p.PaddingPx,
			p.OuterRadiusPx,
			p.ImageRadiusPx,
			p.ShadowStrength,
			p.AspectRatio.ButtonValue(),
		)
	}
	return writer.Flush()
}

func fill(p border.Preset) string {
	return border.BackgroundFill(p.Mode, p.SolidColor, p.GradientStart, p.GradientEnd, p.AngleDegrees)
}
