package border

import (
	"fmt"
	"math"
	"strconv"
)

const (
	shadowScale       = 0.4
	shadowOffsetRatio = 0.8
	shadowBlurRatio   = 2.2
	shadowSpreadStart = 6.0
)

// ShadowColor is the fixed semi-transparent colour used for every shadow.
const ShadowColor = "rgba(15, 23, 42, 0.35)"

// Shadow holds box-shadow geometry in pixels.
type Shadow struct {
	OffsetY float64
	Blur    float64
	Spread  float64
}

// ShadowGeometry derives shadow geometry from a slider strength. Spread stays
// at zero until the scaled strength passes six pixels.
func ShadowGeometry(strength float64) Shadow {
	if strength < 0 || math.IsNaN(strength) {
		strength = 0
	}
	scaled := strength * shadowScale
	return Shadow{
		OffsetY: scaled * shadowOffsetRatio,
		Blur:    scaled * shadowBlurRatio,
		Spread:  math.Max(0, scaled-shadowSpreadStart),
	}
}

// CSS renders the geometry with the shortest exact decimal for each value,
// which is what the live preview receives.
func (s Shadow) CSS() string {
	return fmt.Sprintf("0 %spx %spx %spx %s", shortFloat(s.OffsetY), shortFloat(s.Blur), shortFloat(s.Spread), ShadowColor)
}

// ExportCSS renders the geometry with exactly one fractional digit.
func (s Shadow) ExportCSS() string {
	return fmt.Sprintf("0 %.1fpx %.1fpx %.1fpx %s", s.OffsetY, s.Blur, s.Spread, ShadowColor)
}

func shortFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// BackgroundFill returns the CSS background for the active mode. Solid mode
// yields the colour unchanged; gradient mode yields a two-stop linear gradient.
func BackgroundFill(mode BackgroundMode, solid, start, end string, angle int) string {
	if mode == ModeSolid {
		return solid
	}
	return fmt.Sprintf("linear-gradient(%ddeg, %s, %s)", angle, start, end)
}

// SizingRule describes how the framed image is sized inside its container.
type SizingRule int

const (
	// SizingNatural keeps the image's intrinsic size.
	SizingNatural SizingRule = iota
	// SizingCover stretches the image to fill the container, cropping overflow.
	SizingCover
	// SizingContain fits the whole image inside the container.
	SizingContain
)

func (r SizingRule) String() string {
	switch r {
	case SizingCover:
		return "cover"
	case SizingContain:
		return "contain"
	default:
		return "natural"
	}
}

// Layout is the aspect-ratio driven layout decision. Preview and Export
// intentionally differ when a ratio is forced: the preview fills the box
// while the exported snippet never crops the image.
type Layout struct {
	ContainerRatio string
	Preview        SizingRule
	Export         SizingRule
}

// LayoutFor derives the layout for an aspect ratio.
func LayoutFor(ratio AspectRatio) Layout {
	if !ratio.IsSet() {
		return Layout{Preview: SizingNatural, Export: SizingNatural}
	}
	return Layout{
		ContainerRatio: ratio.CSS(),
		Preview:        SizingCover,
		Export:         SizingContain,
	}
}

// Declaration is a single CSS property assignment.
type Declaration struct {
	Property string
	Value    string
}

// previewSizing lists the image properties written onto the live preview.
// Natural sizing clears every property the other rules set.
func previewSizing(rule SizingRule) []Declaration {
	switch rule {
	case SizingCover, SizingContain:
		return []Declaration{
			{Property: "width", Value: "100%"},
			{Property: "height", Value: "100%"},
			{Property: "object-fit", Value: rule.String()},
		}
	default:
		return []Declaration{
			{Property: "width", Value: ""},
			{Property: "height", Value: ""},
			{Property: "object-fit", Value: ""},
		}
	}
}

// exportSizing renders the image sizing declarations used in the snippet.
func exportSizing(rule SizingRule) string {
	switch rule {
	case SizingCover, SizingContain:
		return fmt.Sprintf("width: 100%%; height: 100%%; object-fit: %s;", rule)
	default:
		return "max-width: 100%; height: auto;"
	}
}
