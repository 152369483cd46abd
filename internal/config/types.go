package config

import (
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/borderkit/internal/border"
)

// Config represents a borderkit configuration document.
type Config struct {
	Version  string   `yaml:"version" validate:"required,semver"`
	Settings Settings `yaml:"settings,omitempty"`
	Presets  []Preset `yaml:"presets,omitempty" validate:"omitempty,dive"`
}

// Settings holds session-wide options.
type Settings struct {
	DarkMode bool   `yaml:"dark_mode,omitempty"`
	LogLevel string `yaml:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	Preset   string `yaml:"preset,omitempty" validate:"omitempty,preset_name"`
}

// Preset is the YAML form of a named parameter set. Keys left out of a
// document keep the default preset's value.
type Preset struct {
	Name          string `yaml:"name" json:"name" validate:"required,preset_name"`
	Mode          string `yaml:"mode" json:"mode" validate:"required,oneof=solid gradient"`
	SolidColor    string `yaml:"solid_color" json:"solid_color" validate:"required,hex_rgb"`
	GradientStart string `yaml:"gradient_start" json:"gradient_start" validate:"required,hex_rgba"`
	GradientEnd   string `yaml:"gradient_end" json:"gradient_end" validate:"required,hex_rgba"`
	Angle         int    `yaml:"angle" json:"angle" validate:"min=0,max=360"`
	OuterRadius   int    `yaml:"outer_radius" json:"outer_radius" validate:"min=0,max=64"`
	ImageRadius   int    `yaml:"image_radius" json:"image_radius" validate:"min=0,max=64"`
	Shadow        int    `yaml:"shadow" json:"shadow" validate:"min=0,max=100"`
	Padding       int    `yaml:"padding" json:"padding" validate:"min=0,max=128"`
	AspectRatio   string `yaml:"aspect_ratio,omitempty" json:"aspect_ratio,omitempty" validate:"omitempty,aspect_ratio"`
}

// UnmarshalYAML seeds the preset with default values before decoding so a
// document only needs to list what it changes.
func (p *Preset) UnmarshalYAML(value *yaml.Node) error {
	type plain Preset

	seed := plain(FromBorderPreset(border.DefaultPreset()))
	seed.Name = ""
	if err := value.Decode(&seed); err != nil {
		return err
	}
	*p = Preset(seed)
	return nil
}

// FromBorderPreset converts an engine preset into its YAML form.
func FromBorderPreset(p border.Preset) Preset {
	return Preset{
		Name:          p.Name,
		Mode:          string(p.Mode),
		SolidColor:    p.SolidColor,
		GradientStart: p.GradientStart,
		GradientEnd:   p.GradientEnd,
		Angle:         p.AngleDegrees,
		OuterRadius:   p.OuterRadiusPx,
		ImageRadius:   p.ImageRadiusPx,
		Shadow:        p.ShadowStrength,
		Padding:       p.PaddingPx,
		AspectRatio:   string(p.AspectRatio),
	}
}

// ToBorderPreset converts a validated preset into the engine form. Colours
// are canonicalised; values are assumed to have passed ValidateConfig.
func (p Preset) ToBorderPreset() border.Preset {
	mode, _ := border.ParseBackgroundMode(p.Mode)
	ratio, _ := border.ParseAspectRatio(p.AspectRatio)
	return border.Preset{
		Name:           p.Name,
		Mode:           mode,
		SolidColor:     canonicalHex(p.SolidColor, false),
		GradientStart:  canonicalHex(p.GradientStart, true),
		GradientEnd:    canonicalHex(p.GradientEnd, true),
		AngleDegrees:   p.Angle,
		OuterRadiusPx:  p.OuterRadius,
		ImageRadiusPx:  p.ImageRadius,
		ShadowStrength: p.Shadow,
		PaddingPx:      p.Padding,
		AspectRatio:    ratio,
	}
}

func canonicalHex(raw string, alpha bool) string {
	if hex, ok := border.NormalizeHex(raw, alpha); ok {
		return hex
	}
	return raw
}
