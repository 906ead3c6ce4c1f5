// Package validation checks decoded request structs against their
// `validate` tags before they reach the repository.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrValidation is wrapped by every error returned from Struct.
var ErrValidation = errors.New("validation failed")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct validates v and reports every failing field in a single error.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fmt.Sprintf("%s failed on %q", fe.Field(), fe.Tag()))
	}

	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(fields, ", "))
}
