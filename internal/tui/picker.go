package tui

import (
	"github.com/alexisbeaulieu97/borderkit/internal/border"
	"github.com/alexisbeaulieu97/borderkit/internal/tui/components"
)

// Picker is the terminal colour picker. It renders swatches for the colour
// inputs once a theme has been applied; until then they show as bare hex.
type Picker struct {
	cfg     border.ThemeConfig
	fields  map[border.ElementID]border.ThemeField
	applied int
}

// NewPicker creates an unthemed picker.
func NewPicker() *Picker {
	return &Picker{fields: make(map[border.ElementID]border.ThemeField)}
}

// ApplyTheme implements border.ThemeApplier.
func (p *Picker) ApplyTheme(cfg border.ThemeConfig) {
	p.cfg = cfg
	p.fields = make(map[border.ElementID]border.ThemeField, len(cfg.Fields))
	for _, f := range cfg.Fields {
		p.fields[f.Element] = f
	}
	p.applied++
}

// Themed reports whether a theme has been applied.
func (p *Picker) Themed() bool {
	return p.applied > 0
}

// Applied counts theme applications.
func (p *Picker) Applied() int {
	return p.applied
}

// Dark reports whether the dark appearance is active.
func (p *Picker) Dark() bool {
	return p.cfg.Mode == border.ThemeDark
}

// Swatch renders the value of a colour input.
func (p *Picker) Swatch(id border.ElementID, hex string) string {
	field, ok := p.fields[id]
	if !p.Themed() || !ok {
		return hex
	}
	return components.NewSwatch(hex, field.Alpha, p.Dark()).View()
}

var _ border.ThemeApplier = (*Picker)(nil)
