package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/borderkit/internal/border"
	"github.com/alexisbeaulieu97/borderkit/internal/tui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	title := titleStyle.Render(fmt.Sprintf("borderkit • %s", m.s.preset))
	if m.s.picker.Themed() {
		title += mutedStyle.Render(fmt.Sprintf("  (%s picker)", m.s.picker.cfg.Mode))
	}

	controlsPanel := panelStyle.Render(m.renderControls())
	previewCols := max(m.width-lipgloss.Width(controlsPanel)-6, 8)
	previewRows := max(m.height-m.s.snippet.Height-10, 4)
	preview := panelStyle.Render(renderPreview(m.s.doc, m.s.ctrl.State(), m.s.image, previewCols, previewRows))

	sections := []string{
		title,
		lipgloss.JoinHorizontal(lipgloss.Top, controlsPanel, " ", preview),
		sectionStyle.Render("Snippet"),
		m.s.snippet.View(),
	}
	if status := m.renderStatus(); status != "" {
		sections = append(sections, status)
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderControls() string {
	caser := cases.Title(language.English)
	var lines []string
	for i, c := range controls {
		if !c.visible(m.s.doc) {
			continue
		}
		focused := i == m.focus

		cursor := "  "
		label := labelStyle.Render(caser.String(c.label))
		if focused {
			cursor = cursorStyle.Render("› ")
			label = focusedLabelStyle.Render(caser.String(c.label))
		}

		value := m.renderValue(c)
		if focused && m.editing {
			value = m.input.View()
		}
		lines = append(lines, cursor+label+value)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderValue(c control) string {
	doc := m.s.doc
	switch c.kind {
	case kindChoice:
		group, ok := doc.Group(c.id)
		if !ok {
			return ""
		}
		buttons := components.NewButtonGroup(group.Options, group.Active)
		if c.id == border.ModeGroup {
			buttons = buttons.WithTitleCase()
		}
		return buttons.View()

	case kindColor:
		return m.s.picker.Swatch(c.id, doc.Style(c.id, "background-color"))

	case kindRange:
		value, _ := strconv.Atoi(doc.Value(c.id))
		enabled := c.enabled(doc)
		if c.container != "" && doc.HasClass(c.container, "opacity-50") {
			enabled = false
		}
		return components.NewSlider(border.Ranges[c.id], c.unit).View(value, doc.Text(c.readout), enabled)

	case kindPath:
		if m.loading {
			return m.spinner.View() + " loading"
		}
		src := doc.Attr(border.ImageTarget, "src")
		if src == "" {
			return mutedStyle.Render("none (enter to choose)")
		}
		st := m.s.ctrl.State()
		if st.Image.Name != "" {
			return st.Image.Name
		}
		return src
	}
	return ""
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusOK {
		return statusStyle.Render(m.status)
	}
	return statusErrorStyle.Render(m.status)
}
