package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	bkerrors "github.com/alexisbeaulieu97/borderkit/pkg/errors"
)

// convertValidationError normalizes validator errors into borderkit validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return bkerrors.NewValidationError(field, msg, err)
	}

	return bkerrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForPreset(index int, field string) string {
	return fmt.Sprintf("presets[%d].%s", index, field)
}
