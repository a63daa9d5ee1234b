package types

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// InvalidInputError reports a document whose shape is wrong at the boundary,
// for example a profile that is not a JSON object at all.
// Missing or malformed optional fields never produce this error; they coerce to defaults.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid input: %s", e.Reason)
	}
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

// IsInvalidInput reports whether err is (or wraps) an *InvalidInputError.
func IsInvalidInput(err error) bool {
	var target *InvalidInputError
	return errors.As(err, &target)
}

// fromValidationError converts validator output into an InvalidInputError naming the first failing field.
func fromValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &InvalidInputError{
			Field:  fe.Namespace(),
			Reason: fmt.Sprintf("failed %q check (value %v)", fe.Tag(), fe.Value()),
		}
	}
	return &InvalidInputError{Reason: err.Error()}
}
