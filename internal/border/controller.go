package border

import (
	"strconv"

	"github.com/alexisbeaulieu97/borderkit/internal/logger"
)

// Option configures a Controller.
type Option func(*Controller)

// WithThemeApplier attaches the colour-picker collaborator.
func WithThemeApplier(t ThemeApplier) Option {
	return func(c *Controller) {
		c.theme = t
	}
}

// WithSnippetSink registers a callback receiving every regenerated snippet.
func WithSnippetSink(fn func(string)) Option {
	return func(c *Controller) {
		c.sink = fn
	}
}

// WithLogger sets the logger used for debug traces.
func WithLogger(log *logger.Logger) Option {
	return func(c *Controller) {
		c.log = log
	}
}

// WithDarkMode selects the initial picker appearance.
func WithDarkMode(dark bool) Option {
	return func(c *Controller) {
		c.dark = dark
	}
}

// Controller keeps the host surface and the exported snippet in step with a
// State. Every setter finishes all writes and regenerates the snippet before
// returning. A Controller is not safe for concurrent use; hosts drive it from
// a single event loop.
type Controller struct {
	state   *State
	surface Surface
	theme   ThemeApplier
	sink    func(string)
	log     *logger.Logger
	dark    bool
	snippet string
}

// NewController binds state to surface. A nil surface discards every write;
// a nil state starts from the default preset.
func NewController(state *State, surface Surface, opts ...Option) *Controller {
	if state == nil {
		state = NewState()
	}
	if surface == nil {
		surface = discardSurface{}
	}
	c := &Controller{state: state, surface: surface}
	for _, opt := range opts {
		opt(c)
	}
	c.snippet = GenerateSnippet(*c.state)
	return c
}

// State returns a copy of the current values.
func (c *Controller) State() State {
	return *c.state
}

// Snippet returns the snippet for the current state.
func (c *Controller) Snippet() string {
	return c.snippet
}

// Sync writes every field of the current state to the surface. Hosts call it
// once after building their surface.
func (c *Controller) Sync() {
	c.SetMode(c.state.Mode)
	c.refreshColorPreviews()
	c.SetAngle(c.state.AngleDegrees)
	c.SetOuterRadius(c.state.OuterRadiusPx)
	c.SetImageRadius(c.state.ImageRadiusPx)
	c.SetShadow(c.state.ShadowStrength)
	c.SetPadding(c.state.PaddingPx)
	c.SetAspectRatio(c.state.AspectRatio)
	if !c.state.Image.IsZero() {
		c.SetImage(c.state.Image)
	}
}

// SetOuterRadius sets the container corner radius.
func (c *Controller) SetOuterRadius(px int) {
	c.state.OuterRadiusPx = nonNegative(px)
	c.syncRange(OuterRadiusInput, OuterRadiusReadout, c.state.OuterRadiusPx, ContainerTarget, "border-radius")
}

// SetImageRadius sets the image corner radius.
func (c *Controller) SetImageRadius(px int) {
	c.state.ImageRadiusPx = nonNegative(px)
	c.syncRange(ImageRadiusInput, ImageRadiusReadout, c.state.ImageRadiusPx, ImageTarget, "border-radius")
}

// SetPadding sets the container padding.
func (c *Controller) SetPadding(px int) {
	c.state.PaddingPx = nonNegative(px)
	c.syncRange(PaddingInput, PaddingReadout, c.state.PaddingPx, ContainerTarget, "padding")
}

func (c *Controller) syncRange(input, readout ElementID, value int, target ElementID, property string) {
	text := strconv.Itoa(value)
	c.surface.SetControlValue(input, text)
	c.surface.SetText(readout, text)
	c.surface.SetStyle(target, property, text+"px")
	c.regenerate()
}

// SetShadow sets the shadow strength and writes the derived box-shadow.
func (c *Controller) SetShadow(strength int) {
	c.state.ShadowStrength = nonNegative(strength)
	text := strconv.Itoa(c.state.ShadowStrength)
	c.surface.SetControlValue(ShadowInput, text)
	c.surface.SetText(ShadowReadout, text)
	c.surface.SetStyle(ImageTarget, "box-shadow", c.state.Shadow().CSS())
	c.regenerate()
}

// SetAngle sets the gradient angle in degrees.
func (c *Controller) SetAngle(degrees int) {
	c.state.AngleDegrees = degrees
	text := strconv.Itoa(degrees)
	c.surface.SetControlValue(AngleInput, text)
	c.surface.SetText(AngleReadout, text)
	c.updateBackground()
}

// SetMode switches between solid and gradient fills. The inactive mode's
// colours and angle are left untouched. Unknown modes are ignored.
func (c *Controller) SetMode(mode BackgroundMode) {
	if mode != ModeSolid && mode != ModeGradient {
		c.log.WithFields(map[string]any{"mode": string(mode)}).Debug("ignoring unknown background mode")
		return
	}
	c.state.Mode = mode
	c.surface.SetActive(ModeGroup, string(mode))

	solid := mode == ModeSolid
	c.surface.SetVisible(SolidControls, solid)
	c.surface.SetVisible(GradientControls, !solid)
	c.surface.SetClass(AngleControl, "opacity-50", solid)
	c.surface.SetClass(AngleControl, "opacity-100", !solid)
	c.surface.SetEnabled(AngleInput, !solid)

	c.updateBackground()
}

// SetAspectRatio forces a container ratio, or clears it for auto sizing.
func (c *Controller) SetAspectRatio(ratio AspectRatio) {
	c.state.AspectRatio = ratio
	c.surface.SetActive(RatioGroup, ratio.ButtonValue())

	layout := c.state.Layout()
	c.surface.SetStyle(ContainerTarget, "aspect-ratio", layout.ContainerRatio)
	for _, decl := range previewSizing(layout.Preview) {
		c.surface.SetStyle(ImageTarget, decl.Property, decl.Value)
	}
	c.regenerate()
}

// SetSolidColor sets the solid fill colour.
func (c *Controller) SetSolidColor(hex string) {
	c.state.SolidColor = hex
	c.syncColor(SolidColorInput, SolidColorReadout, hex)
}

// SetGradientStart sets the first gradient stop.
func (c *Controller) SetGradientStart(hex string) {
	c.state.GradientStart = hex
	c.syncColor(GradientStartInput, GradientStartReadout, hex)
}

// SetGradientEnd sets the second gradient stop.
func (c *Controller) SetGradientEnd(hex string) {
	c.state.GradientEnd = hex
	c.syncColor(GradientEndInput, GradientEndReadout, hex)
}

func (c *Controller) syncColor(input, readout ElementID, hex string) {
	c.surface.SetControlValue(input, hex)
	c.colorPreview(input, readout, hex)
	c.updateBackground()
}

// SetImage replaces the framed image and makes the preview image visible.
// A zero source leaves the current image in place.
func (c *Controller) SetImage(src ImageSource) {
	if src.IsZero() {
		return
	}
	c.state.Image = src
	c.surface.SetAttr(ImageTarget, "src", src.URI)
	c.surface.SetStyle(ImageTarget, "display", "block")
	c.surface.SetVisible(ImageTarget, true)
}

// SetDarkMode switches the picker appearance and rethemes it.
func (c *Controller) SetDarkMode(dark bool) {
	c.dark = dark
	c.EnsureColorTheme()
}

// EnsureColorTheme (re)applies the picker theme and refreshes every colour
// swatch from the current state. It may run any number of times, before or
// after user interaction, with the same result.
func (c *Controller) EnsureColorTheme() {
	if c.theme != nil {
		c.theme.ApplyTheme(NewThemeConfig(c.dark))
	}
	c.refreshColorPreviews()
}

func (c *Controller) refreshColorPreviews() {
	c.colorPreview(SolidColorInput, SolidColorReadout, c.state.SolidColor)
	c.colorPreview(GradientStartInput, GradientStartReadout, c.state.GradientStart)
	c.colorPreview(GradientEndInput, GradientEndReadout, c.state.GradientEnd)
}

func (c *Controller) colorPreview(input, readout ElementID, hex string) {
	c.surface.SetStyle(input, "background-color", hex)
	c.surface.SetText(readout, hex)
}

func (c *Controller) updateBackground() {
	c.surface.SetStyle(ContainerTarget, "background", c.state.Fill())
	c.regenerate()
}

func (c *Controller) regenerate() {
	c.snippet = GenerateSnippet(*c.state)
	if c.sink != nil {
		c.sink(c.snippet)
	}
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
