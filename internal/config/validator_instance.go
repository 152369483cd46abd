package config

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/borderkit/internal/border"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern     = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	presetNamePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("preset_name", func(fl validator.FieldLevel) bool {
			return presetNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("hex_rgb", func(fl validator.FieldLevel) bool {
			_, ok := border.NormalizeHex(fl.Field().String(), false)
			return ok
		})

		_ = v.RegisterValidation("hex_rgba", func(fl validator.FieldLevel) bool {
			_, ok := border.NormalizeHex(fl.Field().String(), true)
			return ok
		})

		_ = v.RegisterValidation("aspect_ratio", func(fl validator.FieldLevel) bool {
			_, ok := border.ParseAspectRatio(fl.Field().String())
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}
