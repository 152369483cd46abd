package tui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/borderkit/internal/border"
)

func TestPickerBeforeTheming(t *testing.T) {
	t.Parallel()

	p := NewPicker()
	require.False(t, p.Themed())
	require.Equal(t, "#cbe7ff", p.Swatch(border.SolidColorInput, "#cbe7ff"))
}

func TestPickerApplyTheme(t *testing.T) {
	t.Parallel()

	p := NewPicker()
	p.ApplyTheme(border.NewThemeConfig(true))
	require.True(t, p.Themed())
	require.True(t, p.Dark())

	require.Contains(t, p.Swatch(border.SolidColorInput, "#cbe7ff"), "#cbe7ff")
	require.NotContains(t, p.Swatch(border.SolidColorInput, "#cbe7ff"), "%")
	require.Contains(t, p.Swatch(border.GradientEndInput, "#ffbbf880"), "50%")
	require.Equal(t, "#123456", p.Swatch(border.PaddingInput, "#123456"))

	p.ApplyTheme(border.NewThemeConfig(false))
	require.False(t, p.Dark())
	require.Equal(t, 2, p.Applied())
}
