package border

import (
	"strconv"
	"strings"
)

// BackgroundMode selects how the container background is filled.
type BackgroundMode string

const (
	ModeSolid    BackgroundMode = "solid"
	ModeGradient BackgroundMode = "gradient"
)

// ParseBackgroundMode converts a raw button value into a BackgroundMode.
func ParseBackgroundMode(raw string) (BackgroundMode, bool) {
	switch BackgroundMode(strings.ToLower(strings.TrimSpace(raw))) {
	case ModeSolid:
		return ModeSolid, true
	case ModeGradient:
		return ModeGradient, true
	default:
		return "", false
	}
}

// AspectRatio is a "W:H" ratio string. The zero value means auto sizing.
type AspectRatio string

// AspectAuto is the button value that clears the forced ratio.
const AspectAuto = "auto"

// ParseAspectRatio accepts "", "auto" or "W:H" with positive integer terms.
func ParseAspectRatio(raw string) (AspectRatio, bool) {
	value := strings.TrimSpace(raw)
	if value == "" || strings.EqualFold(value, AspectAuto) {
		return "", true
	}

	w, h, ok := strings.Cut(value, ":")
	if !ok {
		return "", false
	}
	for _, part := range []string{w, h} {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n <= 0 {
			return "", false
		}
	}
	return AspectRatio(strings.TrimSpace(w) + ":" + strings.TrimSpace(h)), true
}

// IsSet reports whether a forced ratio is present.
func (r AspectRatio) IsSet() bool {
	return r != ""
}

// CSS renders the ratio as a CSS aspect-ratio value ("16 / 9").
func (r AspectRatio) CSS() string {
	if !r.IsSet() {
		return ""
	}
	return strings.Replace(string(r), ":", " / ", 1)
}

// ButtonValue is the ratio button identifier matching this ratio.
func (r AspectRatio) ButtonValue() string {
	if !r.IsSet() {
		return AspectAuto
	}
	return string(r)
}

// ImageSource is an opaque reference to the image being framed.
type ImageSource struct {
	URI    string
	Name   string
	Format string
	Width  int
	Height int
}

// IsZero reports whether no image is referenced.
func (s ImageSource) IsZero() bool {
	return s.URI == ""
}

// State is the single record of every user-adjustable parameter.
type State struct {
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
	Image          ImageSource
}

// NewState returns a State holding the default preset values.
func NewState() *State {
	s := &State{}
	DefaultPreset().applyTo(s)
	return s
}

// Fill returns the background fill expression for the current values.
func (s State) Fill() string {
	return BackgroundFill(s.Mode, s.SolidColor, s.GradientStart, s.GradientEnd, s.AngleDegrees)
}

// Shadow returns the shadow geometry for the current strength.
func (s State) Shadow() Shadow {
	return ShadowGeometry(float64(s.ShadowStrength))
}

// Layout returns the layout decision for the current aspect ratio.
func (s State) Layout() Layout {
	return LayoutFor(s.AspectRatio)
}
