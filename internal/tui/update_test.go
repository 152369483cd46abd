package tui

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/borderkit/internal/border"
	"github.com/alexisbeaulieu97/borderkit/internal/imagesource"
)

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	m, err := NewModel(opts)
	require.NoError(t, err)
	return m
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func focusOn(t *testing.T, m Model, id border.ElementID) Model {
	t.Helper()
	for range controls {
		if m.Focused() == id {
			return m
		}
		m = press(t, m, "down")
	}
	require.Equal(t, id, m.Focused(), "control not reachable")
	return m
}

func writeTestPNG(t *testing.T) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 32, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 32; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 8), G: 90, B: 160, A: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "photo.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestUpdate_WindowSizeMsg(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{})
	updated, cmd := m.Update(tea.WindowSizeMsg{Width: 120, Height: 48})
	require.Nil(t, cmd)
	m = updated.(Model)

	require.Equal(t, 120, m.width)
	require.Equal(t, 48, m.height)
	require.Equal(t, 116, m.s.snippet.Width)
	require.Equal(t, 16, m.s.snippet.Height)
}

func TestUpdate_ThemeTickThemesPicker(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{DarkMode: true})
	require.False(t, m.Picker().Themed())

	updated, _ := m.Update(themeTickMsg{})
	m = updated.(Model)
	require.True(t, m.Picker().Themed())
	require.True(t, m.Picker().Dark())
	require.Equal(t, "#cbe7ff", m.Document().Text(border.GradientStartReadout))

	updated, _ = m.Update(themeTickMsg{})
	m = updated.(Model)
	require.Equal(t, 2, m.Picker().Applied())
	require.Equal(t, "#cbe7ff", m.Document().Style(border.GradientStartInput, "background-color"))
}

func TestUpdate_NavigationSkipsHiddenControls(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{})
	require.Equal(t, border.ModeGroup, m.Focused())

	m = press(t, m, "down")
	require.Equal(t, border.GradientStartInput, m.Focused())

	m = press(t, m, "up", "up")
	require.Equal(t, border.ImageInput, m.Focused())

	m = press(t, m, "down", "right")
	require.Equal(t, border.ModeGroup, m.Focused())
	require.Equal(t, border.ModeSolid, m.Controller().State().Mode)

	m = press(t, m, "down")
	require.Equal(t, border.SolidColorInput, m.Focused())
	m = press(t, m, "down")
	require.Equal(t, border.AngleInput, m.Focused())
}

func TestUpdate_SliderAdjustments(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{})
	m = focusOn(t, m, border.PaddingInput)

	m = press(t, m, "right")
	require.Equal(t, "19", m.Document().Value(border.PaddingInput))
	require.Equal(t, 19, m.Controller().State().PaddingPx)

	m = press(t, m, "L")
	require.Equal(t, "29", m.Document().Value(border.PaddingInput))
	require.Contains(t, m.Controller().Snippet(), "padding: 29px;")

	m = press(t, m, "H", "H", "H", "H")
	require.Equal(t, "0", m.Document().Value(border.PaddingInput))

	m = focusOn(t, m, border.ShadowInput)
	m = press(t, m, "L", "L")
	require.Equal(t, 20, m.Controller().State().ShadowStrength)
	require.Equal(t, border.ShadowGeometry(20).CSS(), m.Document().Style(border.ImageTarget, "box-shadow"))
}

func TestUpdate_AngleInactiveInSolidMode(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{})
	m = press(t, m, "right")
	require.Equal(t, border.ModeSolid, m.Controller().State().Mode)

	m = focusOn(t, m, border.AngleInput)
	m = press(t, m, "right")
	require.Equal(t, "135", m.Document().Value(border.AngleInput))

	status, ok := m.Status()
	require.False(t, ok)
	require.Contains(t, status, "angle")
}

func TestUpdate_ColorEdit(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{})
	m = focusOn(t, m, border.GradientEndInput)

	m = press(t, m, "enter")
	require.True(t, m.Editing())
	require.Equal(t, "#ffbbf8", m.input.Value())

	m.input.SetValue("#11223380")
	m = press(t, m, "enter")
	require.False(t, m.Editing())
	require.Equal(t, "#11223380", m.Document().Value(border.GradientEndInput))
	require.Contains(t, m.Controller().Snippet(), "linear-gradient(135deg, #cbe7ff, #11223380)")

	m = press(t, m, "enter")
	m.input.SetValue("#zz")
	m = press(t, m, "enter")
	status, ok := m.Status()
	require.False(t, ok)
	require.Contains(t, status, "invalid")
	require.Equal(t, "#11223380", m.Document().Value(border.GradientEndInput))
}

func TestUpdate_EditCancel(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{})
	m = focusOn(t, m, border.GradientStartInput)
	m = press(t, m, "enter")
	m.input.SetValue("#000000")
	m = press(t, m, "esc")

	require.False(t, m.Editing())
	require.Equal(t, "#cbe7ff", m.Document().Value(border.GradientStartInput))
}

func TestUpdate_AspectRatio(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{})
	m = focusOn(t, m, border.RatioGroup)

	m = press(t, m, "right")
	require.True(t, m.Document().IsActive(border.RatioGroup, "1:1"))
	require.Equal(t, "1 / 1", m.Document().Style(border.ContainerTarget, "aspect-ratio"))
	require.Equal(t, "cover", m.Document().Style(border.ImageTarget, "object-fit"))

	m = press(t, m, "enter")
	m.input.SetValue("5:4")
	m = press(t, m, "enter")
	require.True(t, m.Document().IsActive(border.RatioGroup, "5:4"))
	require.Contains(t, m.Controller().Snippet(), "aspect-ratio: 5 / 4;")

	m = press(t, m, "left")
	require.True(t, m.Document().IsActive(border.RatioGroup, "9:16"))

	m = press(t, m, "enter")
	m.input.SetValue("auto")
	m = press(t, m, "enter")
	require.True(t, m.Document().IsActive(border.RatioGroup, "auto"))
	require.Empty(t, m.Document().Style(border.ImageTarget, "object-fit"))
}

func TestUpdate_ImageLoad(t *testing.T) {
	t.Parallel()

	path := writeTestPNG(t)
	m := newTestModel(t, Options{})
	m = focusOn(t, m, border.ImageInput)

	m = press(t, m, "enter")
	m.input.SetValue(path)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	require.NotNil(t, cmd)
	require.True(t, m.loading)
	require.False(t, m.Document().Visible(border.ImageTarget))

	msg := loadImageCmd(m.s.loader, path)()
	loaded, ok := msg.(ImageLoadedMsg)
	require.True(t, ok)

	updated, _ = m.Update(loaded)
	m = updated.(Model)
	require.False(t, m.loading)
	require.True(t, m.Document().Visible(border.ImageTarget))
	require.Equal(t, "block", m.Document().Style(border.ImageTarget, "display"))
	require.True(t, strings.HasPrefix(m.Document().Attr(border.ImageTarget, "src"), "file://"))
	require.Equal(t, "photo.png", m.Controller().State().Image.Name)

	status, okStatus := m.Status()
	require.True(t, okStatus)
	require.Contains(t, status, "32x16")
}

func TestUpdate_ImageLoadFailures(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{})
	m.loading = true

	updated, _ := m.Update(ImageLoadFailedMsg{Err: imagesource.ErrNoFile})
	m = updated.(Model)
	require.False(t, m.loading)
	status, _ := m.Status()
	require.Empty(t, status)

	updated, _ = m.Update(ImageLoadFailedMsg{Path: "x.png", Err: errors.New("unsupported format")})
	m = updated.(Model)
	status, ok := m.Status()
	require.False(t, ok)
	require.Equal(t, "unsupported format", status)
	require.False(t, m.Document().Visible(border.ImageTarget))

	msg := loadImageCmd(m.s.loader, "")()
	failed, isFailure := msg.(ImageLoadFailedMsg)
	require.True(t, isFailure)
	require.ErrorIs(t, failed.Err, imagesource.ErrNoFile)
}

func TestUpdate_ResetAndPresets(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{})
	m = focusOn(t, m, border.PaddingInput)
	m = press(t, m, "L", "L")
	require.Equal(t, 38, m.Controller().State().PaddingPx)

	m = press(t, m, "r")
	require.Equal(t, border.DefaultPresetName, m.Preset())
	require.Equal(t, "18", m.Document().Value(border.PaddingInput))
	require.Equal(t, border.GenerateSnippet(*border.NewState()), m.Controller().Snippet())

	names := m.s.catalog.Names()
	m = press(t, m, "p")
	require.Equal(t, names[1], m.Preset())

	want, ok := m.s.catalog.Lookup(names[1])
	require.True(t, ok)
	require.Equal(t, want.PaddingPx, m.Controller().State().PaddingPx)
	require.Equal(t, want.Mode, m.Controller().State().Mode)
}

func TestUpdate_ThemeToggle(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{})
	m = press(t, m, "t")
	require.True(t, m.Picker().Themed())
	require.True(t, m.Picker().Dark())

	m = press(t, m, "t")
	require.False(t, m.Picker().Dark())
	require.Equal(t, 2, m.Picker().Applied())
}

func TestUpdate_WriteSnippet(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "frame.html")
	m := newTestModel(t, Options{OutPath: out})

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w")})
	m = updated.(Model)
	require.NotNil(t, cmd)

	msg := cmd()
	written, ok := msg.(SnippetWrittenMsg)
	require.True(t, ok)
	require.NoError(t, written.Err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, m.Controller().Snippet(), string(data))

	updated, _ = m.Update(written)
	m = updated.(Model)
	status, okStatus := m.Status()
	require.True(t, okStatus)
	require.Contains(t, status, out)
}

func TestUpdate_Quit(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, Options{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	require.Equal(t, tea.QuitMsg{}, cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
}
