package config

import (
	"sort"

	"github.com/alexisbeaulieu97/borderkit/internal/border"
)

// builtinPresets returns the presets shipped with the tool, keyed by name.
func builtinPresets() map[string]border.Preset {
	slate := border.DefaultPreset()
	slate.Name = "slate"
	slate.Mode = border.ModeSolid
	slate.SolidColor = "#1e293b"
	slate.OuterRadiusPx = 16
	slate.ImageRadiusPx = 10
	slate.ShadowStrength = 40
	slate.PaddingPx = 48

	sunset := border.DefaultPreset()
	sunset.Name = "sunset"
	sunset.GradientStart = "#f97316"
	sunset.GradientEnd = "#db2777"
	sunset.AngleDegrees = 160
	sunset.OuterRadiusPx = 24
	sunset.ImageRadiusPx = 12
	sunset.ShadowStrength = 25
	sunset.PaddingPx = 40
	sunset.AspectRatio = "16:9"

	return map[string]border.Preset{
		border.DefaultPresetName: border.DefaultPreset(),
		slate.Name:               slate,
		sunset.Name:              sunset,
	}
}

// Catalog is the set of presets available to a session: the built-in ones
// followed by those declared in a configuration file.
type Catalog struct {
	names   []string
	presets map[string]border.Preset
}

// NewCatalog returns a catalog holding the built-in presets and those of cfg.
// cfg may be nil.
func NewCatalog(cfg *Config) *Catalog {
	builtin := builtinPresets()
	c := &Catalog{presets: make(map[string]border.Preset, len(builtin))}

	names := make([]string, 0, len(builtin))
	for name := range builtin {
		if name != border.DefaultPresetName {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	c.add(builtin[border.DefaultPresetName])
	for _, name := range names {
		c.add(builtin[name])
	}

	if cfg != nil {
		for _, p := range cfg.Presets {
			c.add(p.ToBorderPreset())
		}
	}
	return c
}

func (c *Catalog) add(p border.Preset) {
	if _, exists := c.presets[p.Name]; !exists {
		c.names = append(c.names, p.Name)
	}
	c.presets[p.Name] = p
}

// Names lists preset names, the default first.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.names...)
}

// Lookup finds a preset by name.
func (c *Catalog) Lookup(name string) (border.Preset, bool) {
	p, ok := c.presets[name]
	return p, ok
}

// Next returns the preset following name, wrapping around.
func (c *Catalog) Next(name string) border.Preset {
	for i, n := range c.names {
		if n == name {
			return c.presets[c.names[(i+1)%len(c.names)]]
		}
	}
	return c.presets[c.names[0]]
}
