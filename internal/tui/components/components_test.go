package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/borderkit/internal/border"
)

func TestSliderRatio(t *testing.T) {
	t.Parallel()

	s := NewSlider(border.Range{Min: 0, Max: 64, Step: 1}, "px")

	tests := []struct {
		value int
		want  float64
	}{
		{0, 0},
		{32, 0.5},
		{64, 1},
		{200, 1},
		{-5, 0},
	}
	for _, tt := range tests {
		require.InDelta(t, tt.want, s.Ratio(tt.value), 1e-9, "value %d", tt.value)
	}

	require.Zero(t, NewSlider(border.Range{}, "").Ratio(10))
}

func TestSliderView(t *testing.T) {
	t.Parallel()

	s := NewSlider(border.Ranges[border.PaddingInput], "px")
	view := s.View(18, "18", true)
	require.Contains(t, view, "18px")
	require.Greater(t, len(view), len("18px"))

	disabled := s.View(18, "18", false)
	require.Contains(t, disabled, "18px")
}

func TestParseHex(t *testing.T) {
	t.Parallel()

	c, alpha, ok := ParseHex("#ff0000")
	require.True(t, ok)
	require.InDelta(t, 1.0, alpha, 1e-9)
	require.InDelta(t, 1.0, c.R, 1e-9)

	_, alpha, ok = ParseHex("#00000080")
	require.True(t, ok)
	require.InDelta(t, 128.0/255, alpha, 1e-9)

	_, _, ok = ParseHex("#0000zz80")
	require.False(t, ok)
	_, _, ok = ParseHex("nope")
	require.False(t, ok)
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	black, _, _ := ParseHex("#000000")
	white, _, _ := ParseHex("#ffffff")

	require.Equal(t, black, Flatten(black, 1, white))
	half := Flatten(black, 0.5, white)
	require.InDelta(t, 0.5, half.R, 1e-9)
}

func TestSwatchView(t *testing.T) {
	t.Parallel()

	require.Contains(t, NewSwatch("#cbe7ff", false, false).View(), "#cbe7ff")
	require.Contains(t, NewSwatch("#ffbbf880", true, true).View(), "50%")
	require.Equal(t, "garbage", NewSwatch("garbage", false, false).View())
}

func TestButtonGroupView(t *testing.T) {
	t.Parallel()

	view := NewButtonGroup([]string{"solid", "gradient"}, "gradient").WithTitleCase().View()
	require.Contains(t, view, "Solid")
	require.Contains(t, view, "Gradient")

	custom := NewButtonGroup([]string{"auto", "1:1"}, "5:4").View()
	require.Contains(t, custom, "auto")
	require.Contains(t, custom, "5:4")
	require.Less(t, strings.Index(custom, "1:1"), strings.Index(custom, "5:4"))
}
