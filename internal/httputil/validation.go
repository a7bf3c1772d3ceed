package httputil

import (
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// ValidationErrorToText returns a human readable message for a failed
// binding validation.
func ValidationErrorToText(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "max":
		return fmt.Sprintf("%s cannot be longer than %s", e.Field(), e.Param())
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", e.Field(), e.Param())
		}
		return fmt.Sprintf("%s must be at least %s", e.Field(), e.Param())
	case "email":
		return "Invalid email format"
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", e.Field(), e.Param())
	}
	return fmt.Sprintf("%s is not valid", e.Field())
}
