package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/borderkit/internal/border"
	"github.com/alexisbeaulieu97/borderkit/internal/imagesource"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.s.snippet.Width = msg.Width - 4
		m.s.snippet.Height = max(msg.Height/3, 6)
		return m, nil

	case themeTickMsg:
		m.s.ctrl.EnsureColorTheme()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ImageLoadedMsg:
		m.loading = false
		m.pending = ""
		m.s.image = msg.Image
		m.s.ctrl.SetImage(msg.Image.Source)
		src := msg.Image.Source
		m.setStatus(fmt.Sprintf("loaded %s (%dx%d)", src.Name, src.Width, src.Height), true)
		return m, nil

	case ImageLoadFailedMsg:
		m.loading = false
		m.pending = ""
		if errors.Is(msg.Err, imagesource.ErrNoFile) {
			return m, nil
		}
		m.s.log.WithFields(map[string]any{"path": msg.Path}).Error(msg.Err, "image load failed")
		m.setStatus(msg.Err.Error(), false)
		return m, nil

	case SnippetWrittenMsg:
		if msg.Err != nil {
			m.s.log.WithFields(map[string]any{"path": msg.Path}).Error(msg.Err, "snippet write failed")
			m.setStatus(msg.Err.Error(), false)
			return m, nil
		}
		m.setStatus("snippet written to "+msg.Path, true)
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.handleEditKey(msg)
		}
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.StepDown):
		m.adjust(-10)
	case key.Matches(msg, m.keys.StepUp):
		m.adjust(10)
	case key.Matches(msg, m.keys.Decrease):
		m.adjust(-1)
	case key.Matches(msg, m.keys.Increase):
		m.adjust(1)
	case key.Matches(msg, m.keys.Edit):
		return m.beginEdit()
	case key.Matches(msg, m.keys.Reset):
		m.s.ctrl.Reset()
		m.s.preset = border.DefaultPresetName
		m.setStatus("reset to defaults", true)
	case key.Matches(msg, m.keys.Preset):
		p := m.s.catalog.Next(m.s.preset)
		m.s.ctrl.ApplyPreset(p)
		m.s.preset = p.Name
		m.setStatus("preset "+p.Name, true)
	case key.Matches(msg, m.keys.Theme):
		m.s.dark = !m.s.dark
		m.s.ctrl.SetDarkMode(m.s.dark)
	case key.Matches(msg, m.keys.Write):
		return m, writeSnippetCmd(m.s.outPath, m.s.ctrl.Snippet())
	case key.Matches(msg, m.keys.ScrollUp):
		m.s.snippet.HalfViewUp()
	case key.Matches(msg, m.keys.ScrollDown):
		m.s.snippet.HalfViewDown()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	}
	return m, nil
}

// moveFocus steps to the next visible control in direction dir.
func (m *Model) moveFocus(dir int) {
	n := len(controls)
	for i := 1; i <= n; i++ {
		next := ((m.focus+dir*i)%n + n) % n
		if controls[next].visible(m.s.doc) {
			m.focus = next
			return
		}
	}
}

// adjust nudges the focused control by delta steps.
func (m *Model) adjust(delta int) {
	c := controls[m.focus]
	if !c.enabled(m.s.doc) {
		m.setStatus(c.label+" is inactive in solid mode", false)
		return
	}

	switch c.kind {
	case kindChoice:
		if delta < -1 || delta > 1 {
			return
		}
		if next, ok := c.cycle(m.s.doc, delta); ok {
			m.s.ctrl.HandleInput(c.id, next)
		}
	case kindRange:
		rng := border.Ranges[c.id]
		current, err := strconv.Atoi(m.s.doc.Value(c.id))
		if err != nil {
			current = rng.Min
		}
		m.s.ctrl.HandleInput(c.id, strconv.Itoa(rng.Clamp(current+delta*rng.Step)))
	}
}

func (m Model) beginEdit() (tea.Model, tea.Cmd) {
	c := controls[m.focus]
	switch {
	case c.id == border.ModeGroup:
		m.adjust(1)
		return m, nil
	case c.kind == kindRange:
		return m, nil
	}

	m.input.Reset()
	switch c.kind {
	case kindColor:
		m.input.Placeholder = "#rrggbb"
		m.input.SetValue(m.s.doc.Value(c.id))
	case kindChoice:
		m.input.Placeholder = "width:height or auto"
	case kindPath:
		m.input.Placeholder = "path/to/image.png"
	}
	m.input.CursorEnd()
	m.editing = true
	return m, m.input.Focus()
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.editing = false
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		m.editing = false
		m.input.Blur()
		return m.commitEdit(strings.TrimSpace(m.input.Value()))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) commitEdit(value string) (tea.Model, tea.Cmd) {
	c := controls[m.focus]
	switch c.kind {
	case kindPath:
		if value == "" {
			return m, nil
		}
		m.loading = true
		m.setStatus("loading "+value, true)
		return m, tea.Batch(loadImageCmd(m.s.loader, value), m.spinner.Tick)
	default:
		if !m.s.ctrl.HandleInput(c.id, value) {
			m.setStatus(fmt.Sprintf("invalid %s: %q", c.label, value), false)
			return m, nil
		}
		m.setStatus("", true)
	}
	return m, nil
}

func (m *Model) setStatus(text string, ok bool) {
	m.status = text
	m.statusOK = ok
}
