package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var Validator = validator.New()

// Field checks a single option value against the validate tag.
// It is used by the Options.Validate methods which cannot rely on
// Validator.Struct because option fields are unexported.
func Field(name string, value any, tag string) error {
	if err := Validator.Var(value, tag); err != nil {
		return fmt.Errorf("field `%s` did not pass the test: %w", name, err)
	}
	return nil
}
