package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/borderkit/internal/border"
	"github.com/alexisbeaulieu97/borderkit/internal/config"
)

func TestViewRendersControlsPreviewAndSnippet(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 60})
	m = updated.(Model)

	view := m.View()
	require.Contains(t, view, "borderkit • default")
	require.Contains(t, view, "Background")
	require.Contains(t, view, "Gradient Start")
	require.Contains(t, view, "Outer Radius")
	require.Contains(t, view, "Aspect Ratio")
	require.Contains(t, view, "Snippet")
	require.Contains(t, view, "image-container")
	require.Contains(t, view, "18px")
	require.NotContains(t, view, "Colour ")
}

func TestViewFollowsModeVisibility(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{})
	m = press(t, m, "right")

	view := m.View()
	require.Contains(t, view, "Colour")
	require.NotContains(t, view, "Gradient Start")
}

func TestViewShowsPickerSwatchesOnceThemed(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{})
	require.NotContains(t, m.View(), "(light picker)")

	updated, _ := m.Update(themeTickMsg{})
	m = updated.(Model)
	view := m.View()
	require.Contains(t, view, "(light picker)")
	require.Contains(t, view, "#cbe7ff 100%")
}

func TestViewShowsEditorWhileEditing(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{})
	m = focusOn(t, m, border.ImageInput)
	require.Contains(t, m.View(), "none (enter to choose)")

	m = press(t, m, "enter")
	require.Contains(t, m.View(), "path/to/image.png")
}

func TestViewShowsErrorStatus(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{})
	m.setStatus("invalid colour", false)
	require.Contains(t, m.View(), "invalid colour")
}

func TestNewModelPresetSelection(t *testing.T) {
	t.Parallel()

	_, err := NewModel(Options{Preset: "missing"})
	var unknown *UnknownPresetError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "missing", unknown.Name)

	catalog := config.NewCatalog(nil)
	m := newTestModel(t, Options{Catalog: catalog, Preset: "slate"})
	require.Equal(t, "slate", m.Preset())

	want, _ := catalog.Lookup("slate")
	require.Equal(t, want.PaddingPx, m.Controller().State().PaddingPx)
	require.Contains(t, m.View(), "borderkit • slate")
}

func TestInitSchedulesThemeAndImageLoad(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{})
	require.NotNil(t, m.Init())

	withImage := newTestModel(t, Options{ImagePath: writeTestPNG(t)})
	require.NotNil(t, withImage.Init())
	require.NotEmpty(t, withImage.pending)
}

func TestPreviewFitsPanel(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{})
	out := renderPreview(m.Document(), m.Controller().State(), nil, 40, 12)
	require.LessOrEqual(t, lipgloss.Height(out), 12)
	require.LessOrEqual(t, lipgloss.Width(out), 40)
}
