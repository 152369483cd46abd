package border

import (
	"math"
	"strconv"
	"strings"
)

// HandleInput applies a raw value delivered by a control widget. It returns
// false when the control is unknown or the value cannot be parsed, in which
// case nothing changes.
func (c *Controller) HandleInput(id ElementID, raw string) bool {
	switch id {
	case OuterRadiusInput, ImageRadiusInput, PaddingInput, ShadowInput:
		n, ok := parseRange(raw)
		if !ok {
			return c.ignore(id, raw)
		}
		c.rangeSetter(id)(n)
	case AngleInput:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return c.ignore(id, raw)
		}
		c.SetAngle(n)
	case SolidColorInput, GradientStartInput, GradientEndInput:
		hex, ok := NormalizeHex(raw, alphaInput(id))
		if !ok {
			return c.ignore(id, raw)
		}
		c.colorSetter(id)(hex)
	case ModeGroup:
		mode, ok := ParseBackgroundMode(raw)
		if !ok {
			return c.ignore(id, raw)
		}
		c.SetMode(mode)
	case RatioGroup:
		ratio, ok := ParseAspectRatio(raw)
		if !ok {
			return c.ignore(id, raw)
		}
		c.SetAspectRatio(ratio)
	case ImageInput:
		uri := strings.TrimSpace(raw)
		if uri == "" {
			return false
		}
		c.SetImage(ImageSource{URI: uri})
	default:
		return c.ignore(id, raw)
	}
	return true
}

func (c *Controller) rangeSetter(id ElementID) func(int) {
	switch id {
	case OuterRadiusInput:
		return c.SetOuterRadius
	case ImageRadiusInput:
		return c.SetImageRadius
	case PaddingInput:
		return c.SetPadding
	default:
		return c.SetShadow
	}
}

func (c *Controller) colorSetter(id ElementID) func(string) {
	switch id {
	case SolidColorInput:
		return c.SetSolidColor
	case GradientStartInput:
		return c.SetGradientStart
	default:
		return c.SetGradientEnd
	}
}

func (c *Controller) ignore(id ElementID, raw string) bool {
	c.log.WithFields(map[string]any{"control": string(id), "value": raw}).Debug("ignoring control input")
	return false
}

// parseRange accepts a non-negative slider value. Fractional values are
// truncated, as range inputs only ever step in whole pixels.
func parseRange(raw string) (int, bool) {
	value := strings.TrimSpace(raw)
	if n, err := strconv.Atoi(value); err == nil {
		return n, n >= 0
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}
