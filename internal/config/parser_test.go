package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/borderkit/internal/border"
	bkerrors "github.com/alexisbeaulieu97/borderkit/pkg/errors"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	validYAML := `version: "1.0"
settings:
  dark_mode: true
  log_level: debug
  preset: night
presets:
  - name: night
    mode: solid
    solid_color: "#0F172A"
    shadow: 40
  - name: frame-wide
    aspect_ratio: "16:9"
    gradient_end: "#ffbbf880"
`

	invalidYAML := `version: [1, 0]
presets:
  - name: broken
`

	badColor := `version: "1.0"
presets:
  - name: odd
    solid_color: "#12"
`

	badRatio := `version: "1.0"
presets:
  - name: odd
    aspect_ratio: "wide"
`

	outOfRange := `version: "1.0"
presets:
  - name: heavy
    shadow: 400
`

	duplicate := `version: "1.0"
presets:
  - name: twin
  - name: twin
`

	reserved := `version: "1.0"
presets:
  - name: default
`

	unknownStart := `version: "1.0"
settings:
  preset: missing
`

	cases := []struct {
		name   string
		body   string
		assert func(t *testing.T, cfg *Config, err error)
	}{
		{
			name: "valid configuration is parsed",
			body: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.True(t, cfg.Settings.DarkMode)
				require.Equal(t, "night", cfg.Settings.Preset)
				require.Len(t, cfg.Presets, 2)

				night := cfg.Presets[0].ToBorderPreset()
				require.Equal(t, border.ModeSolid, night.Mode)
				require.Equal(t, "#0f172a", night.SolidColor)
				require.Equal(t, 40, night.ShadowStrength)
				require.Equal(t, 18, night.PaddingPx, "unset keys keep default values")
				require.Equal(t, 135, night.AngleDegrees)

				wide := cfg.Presets[1].ToBorderPreset()
				require.Equal(t, border.ModeGradient, wide.Mode)
				require.Equal(t, border.AspectRatio("16:9"), wide.AspectRatio)
				require.Equal(t, "#ffbbf880", wide.GradientEnd)
			},
		},
		{
			name: "invalid yaml returns parse error",
			body: invalidYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				var parseErr *bkerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, parseErr.Message, "cannot unmarshal")
				require.Positive(t, parseErr.Line)
			},
		},
		{
			name: "bad colour is rejected",
			body: badColor,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *bkerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "hex_rgb")
			},
		},
		{
			name: "bad ratio is rejected",
			body: badRatio,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *bkerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "aspect_ratio")
			},
		},
		{
			name: "slider values must stay in range",
			body: outOfRange,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *bkerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Field, "shadow")
			},
		},
		{
			name: "duplicate names are rejected",
			body: duplicate,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *bkerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "presets[1].name", validationErr.Field)
			},
		},
		{
			name: "default name is reserved",
			body: reserved,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *bkerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Contains(t, validationErr.Message, "reserved")
			},
		},
		{
			name: "starting preset must exist",
			body: unknownStart,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *bkerrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "settings.preset", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeTempConfig(t, tc.body)
			cfg, err := ParseConfig(path)
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	var parseErr *bkerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Zero(t, parseErr.Line)
}

func TestValidateConfigNil(t *testing.T) {
	t.Parallel()

	require.Error(t, ValidateConfig(nil))
}

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "borderkit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
