package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validate checks the configuration for invalid or missing values.
//
// Struct-level constraints are declared as `validate` tags on the config
// types; cross-field database constraints are delegated to the database
// config's own Validate.
func Validate(cfg *Config) error {
	validate := validator.New()

	if err := validate.Struct(cfg); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			first := validationErrors[0]
			return fmt.Errorf("field %q failed validation: %s (rule: %s)",
				first.Namespace(), first.Error(), first.Tag())
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	if err := cfg.Database.Validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	return nil
}
