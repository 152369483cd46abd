package border

// DefaultPresetName names the preset a fresh session starts from.
const DefaultPresetName = "default"

// Preset is a named set of parameter values. It never carries an image.
type Preset struct {
	Name           string
	Mode           BackgroundMode
	SolidColor     string
	GradientStart  string
	GradientEnd    string
	AngleDegrees   int
	OuterRadiusPx  int
	ImageRadiusPx  int
	ShadowStrength int
	PaddingPx      int
	AspectRatio    AspectRatio
}

// DefaultPreset returns the values a fresh session starts with.
func DefaultPreset() Preset {
	return Preset{
		Name:           DefaultPresetName,
		Mode:           ModeGradient,
		SolidColor:     "#cbe7ff",
		GradientStart:  "#cbe7ff",
		GradientEnd:    "#ffbbf8",
		AngleDegrees:   135,
		OuterRadiusPx:  0,
		ImageRadiusPx:  0,
		ShadowStrength: 0,
		PaddingPx:      18,
		AspectRatio:    "",
	}
}

// PresetFromState captures the current values of s under name.
func PresetFromState(name string, s State) Preset {
	return Preset{
		Name:           name,
		Mode:           s.Mode,
		SolidColor:     s.SolidColor,
		GradientStart:  s.GradientStart,
		GradientEnd:    s.GradientEnd,
		AngleDegrees:   s.AngleDegrees,
		OuterRadiusPx:  s.OuterRadiusPx,
		ImageRadiusPx:  s.ImageRadiusPx,
		ShadowStrength: s.ShadowStrength,
		PaddingPx:      s.PaddingPx,
		AspectRatio:    s.AspectRatio,
	}
}

func (p Preset) applyTo(s *State) {
	s.Mode = p.Mode
	s.SolidColor = p.SolidColor
	s.GradientStart = p.GradientStart
	s.GradientEnd = p.GradientEnd
	s.AngleDegrees = p.AngleDegrees
	s.OuterRadiusPx = p.OuterRadiusPx
	s.ImageRadiusPx = p.ImageRadiusPx
	s.ShadowStrength = p.ShadowStrength
	s.PaddingPx = p.PaddingPx
	s.AspectRatio = p.AspectRatio
}

// Reset restores the default preset and resynchronises every surface.
func (c *Controller) Reset() {
	c.ApplyPreset(DefaultPreset())
}

// ApplyPreset replays every field of p through the controller so the preview,
// readouts and snippet converge on what a fresh session with p would show.
// The current image is kept.
func (c *Controller) ApplyPreset(p Preset) {
	c.log.WithFields(map[string]any{"preset": p.Name}).Debug("applying preset")

	c.SetMode(p.Mode)

	c.state.SolidColor = p.SolidColor
	c.state.GradientStart = p.GradientStart
	c.state.GradientEnd = p.GradientEnd
	c.surface.SetControlValue(SolidColorInput, p.SolidColor)
	c.surface.SetControlValue(GradientStartInput, p.GradientStart)
	c.surface.SetControlValue(GradientEndInput, p.GradientEnd)
	c.refreshColorPreviews()

	c.SetAngle(p.AngleDegrees)
	c.SetOuterRadius(p.OuterRadiusPx)
	c.SetImageRadius(p.ImageRadiusPx)
	c.SetShadow(p.ShadowStrength)
	c.SetPadding(p.PaddingPx)
	c.SetAspectRatio(p.AspectRatio)
}
