package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/borderkit/internal/border"
)

var (
	sliderLabelStyle    = lipgloss.NewStyle().Bold(true).Width(6).Align(lipgloss.Right)
	sliderDisabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Slider renders a range control as a bar with its readout.
type Slider struct {
	bar  progress.Model
	rng  border.Range
	unit string
}

// NewSlider creates a slider over rng. unit is appended to the readout.
func NewSlider(rng border.Range, unit string) Slider {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 24
	return Slider{bar: bar, rng: rng, unit: unit}
}

// Ratio is the position of value within the range, between 0 and 1.
func (s Slider) Ratio(value int) float64 {
	span := s.rng.Max - s.rng.Min
	if span <= 0 {
		return 0
	}
	return float64(s.rng.Clamp(value)-s.rng.Min) / float64(span)
}

// View renders the bar for value. readout is shown verbatim so the slider
// displays exactly what the surface holds.
func (s Slider) View(value int, readout string, enabled bool) string {
	label := sliderLabelStyle.Render(fmt.Sprintf("%s%s", readout, s.unit))
	view := lipgloss.JoinHorizontal(lipgloss.Left, s.bar.ViewAs(s.Ratio(value)), " ", label)
	if !enabled {
		return sliderDisabledStyle.Render(view)
	}
	return view
}
