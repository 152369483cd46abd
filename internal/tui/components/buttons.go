package components

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	buttonStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	activeButtonStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true).Underline(true).Padding(0, 1)
)

// ButtonGroup renders a row of mutually exclusive options, such as the
// background mode or aspect-ratio buttons.
type ButtonGroup struct {
	options []string
	active  string
	title   bool
}

// NewButtonGroup creates a group over options with active selected. An
// active value missing from options is appended so it stays visible.
func NewButtonGroup(options []string, active string) ButtonGroup {
	opts := append([]string(nil), options...)
	if active != "" && !slices.Contains(opts, active) {
		opts = append(opts, active)
	}
	return ButtonGroup{options: opts, active: active}
}

// WithTitleCase capitalises option labels.
func (g ButtonGroup) WithTitleCase() ButtonGroup {
	g.title = true
	return g
}

// View renders the group.
func (g ButtonGroup) View() string {
	caser := cases.Title(language.English)
	parts := make([]string, 0, len(g.options))
	for _, opt := range g.options {
		label := opt
		if g.title {
			label = caser.String(opt)
		}
		style := buttonStyle
		if opt == g.active {
			style = activeButtonStyle
		}
		parts = append(parts, style.Render(label))
	}
	return strings.Join(parts, "")
}
