package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetValidator(t *testing.T) {
	t.Parallel()

	require.Same(t, GetValidator(), GetValidator())
}

func TestSemverValidation(t *testing.T) {
	t.Parallel()

	v := GetValidator()

	tests := []struct {
		name     string
		version  string
		expected bool
	}{
		{"major minor", "1.0", true},
		{"simple", "1.0.0", true},
		{"with prerelease", "1.0.0-alpha", true},
		{"with build metadata", "1.0.0+build.1", true},

		{"empty", "", false},
		{"no dots", "v1", false},
		{"too many dots", "1.2.3.4", false},
		{"leading v", "v1.0.0", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := v.Var(tt.version, "semver")
			require.Equal(t, tt.expected, err == nil, "version %q: %v", tt.version, err)
		})
	}
}

func TestPresetTagValidation(t *testing.T) {
	t.Parallel()

	v := GetValidator()

	tests := []struct {
		tag      string
		value    string
		expected bool
	}{
		{"preset_name", "night", true},
		{"preset_name", "frame-wide_2", true},
		{"preset_name", "Night", false},
		{"preset_name", "with space", false},

		{"hex_rgb", "#cbe7ff", true},
		{"hex_rgb", "#ABC", true},
		{"hex_rgb", "cbe7ff", true},
		{"hex_rgb", "#cbe7ff80", false},
		{"hex_rgb", "blue", false},

		{"hex_rgba", "#cbe7ff80", true},
		{"hex_rgba", "#cbe7ff", true},
		{"hex_rgba", "#cbe7f", false},

		{"aspect_ratio", "16:9", true},
		{"aspect_ratio", "auto", true},
		{"aspect_ratio", "16/9", false},
		{"aspect_ratio", "0:9", false},
	}

	for _, tt := range tests {
		err := v.Var(tt.value, tt.tag)
		require.Equal(t, tt.expected, err == nil, "%s(%q): %v", tt.tag, tt.value, err)
	}
}
