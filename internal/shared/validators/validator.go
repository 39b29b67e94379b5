package validators

import (
	"github.com/go-playground/validator/v10"
)

// Validate aliases validator.Validate so callers (hit payload parsing, config
// loading) do not import the library directly.
type Validate = validator.Validate

// ValidationErrors aliases validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError aliases validator.FieldError.
type FieldError = validator.FieldError

// New returns a validator instance with the default tag set.
func New() *Validate {
	return validator.New()
}
