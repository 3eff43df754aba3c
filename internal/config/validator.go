package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidateConfig performs validation on the GlobalConfig structure.
func ValidateConfig(cfg *GlobalConfig) error {
	validate := validator.New()

	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("config validation setup failed: %w", err)
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var details []string
		for _, fieldError := range validationErrors {
			details = append(details, formatFieldError(fieldError))
		}
		return fmt.Errorf("config validation failed: %s", strings.Join(details, "; "))
	}

	return err
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("field '%s' must be one of [%s], got '%v'", fe.Namespace(), fe.Param(), fe.Value())
	case "gte", "gt", "lte", "lt":
		return fmt.Sprintf("field '%s' violates %s=%s, got '%v'", fe.Namespace(), fe.Tag(), fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("field '%s' failed validation '%s'", fe.Namespace(), fe.Tag())
	}
}
