package config

import (
	"fmt"

	"github.com/alexisbeaulieu97/borderkit/internal/border"
	bkerrors "github.com/alexisbeaulieu97/borderkit/pkg/errors"
)

// ValidateConfig performs structural and cross-field validation on an entire configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return bkerrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]struct{}, len(cfg.Presets))
	for i, preset := range cfg.Presets {
		if preset.Name == border.DefaultPresetName {
			return bkerrors.NewValidationError(fieldForPreset(i, "name"), fmt.Sprintf("preset name %q is reserved", preset.Name), nil)
		}
		if _, exists := builtinPresets()[preset.Name]; exists {
			return bkerrors.NewValidationError(fieldForPreset(i, "name"), fmt.Sprintf("preset %q shadows a built-in preset", preset.Name), nil)
		}
		if _, exists := seen[preset.Name]; exists {
			return bkerrors.NewValidationError(fieldForPreset(i, "name"), fmt.Sprintf("duplicate preset name %q", preset.Name), nil)
		}
		seen[preset.Name] = struct{}{}
	}

	if name := cfg.Settings.Preset; name != "" {
		_, inFile := seen[name]
		_, builtin := builtinPresets()[name]
		if !inFile && !builtin {
			return bkerrors.NewValidationError("settings.preset", fmt.Sprintf("references unknown preset %q", name), nil)
		}
	}

	return nil
}
