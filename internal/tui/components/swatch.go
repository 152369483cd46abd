package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	inkDark  = lipgloss.Color("#0f172a")
	inkLight = lipgloss.Color("#f8fafc")
)

// ParseHex reads "#rrggbb" or "#rrggbbaa" into a colour and its opacity.
func ParseHex(hex string) (colorful.Color, float64, bool) {
	hex = strings.TrimSpace(hex)
	alpha := 1.0
	if len(hex) == 9 {
		a, err := strconv.ParseUint(hex[7:], 16, 8)
		if err != nil {
			return colorful.Color{}, 0, false
		}
		alpha = float64(a) / 255
		hex = hex[:7]
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, 0, false
	}
	return c, alpha, true
}

// Flatten composites a translucent colour over backdrop.
func Flatten(c colorful.Color, alpha float64, backdrop colorful.Color) colorful.Color {
	if alpha >= 1 {
		return c
	}
	return backdrop.BlendRgb(c, alpha).Clamped()
}

// Swatch renders a colour chip labelled with its hex value.
type Swatch struct {
	hex   string
	alpha bool
	dark  bool
}

// NewSwatch creates a swatch. showAlpha appends the opacity to the label;
// dark selects the backdrop translucent colours are flattened onto.
func NewSwatch(hex string, showAlpha, dark bool) Swatch {
	return Swatch{hex: hex, alpha: showAlpha, dark: dark}
}

// View renders the swatch, or the bare hex when it cannot be parsed.
func (s Swatch) View() string {
	c, alpha, ok := ParseHex(s.hex)
	if !ok {
		return s.hex
	}

	backdrop := colorful.Color{R: 1, G: 1, B: 1}
	if s.dark {
		backdrop = colorful.Color{R: 0.06, G: 0.09, B: 0.16}
	}
	fill := Flatten(c, alpha, backdrop)

	ink := inkDark
	if l, _, _ := fill.Lab(); l < 0.6 {
		ink = inkLight
	}

	label := s.hex
	if s.alpha {
		label = fmt.Sprintf("%s %3.0f%%", s.hex, alpha*100)
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(fill.Hex())).
		Foreground(ink).
		Padding(0, 1).
		Render(label)
}
