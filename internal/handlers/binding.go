package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// bindingErrorMessage turns a binding failure into a message suitable for the
// response body. Validator failures list the offending fields; anything else
// falls back to the raw error text.
func bindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request format: " + err.Error()
	}

	parts := make([]string, len(verrs))
	for i, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts[i] = fmt.Sprintf("%s is required", fe.Field())
		case "datetime":
			parts[i] = fmt.Sprintf("%s must be formatted as YYYY-MM-DD", fe.Field())
		case "oneof":
			parts[i] = fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
		case "email":
			parts[i] = fmt.Sprintf("%s must be a valid email address", fe.Field())
		case "min":
			parts[i] = fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
		default:
			parts[i] = fmt.Sprintf("%s is invalid", fe.Field())
		}
	}
	return "Invalid request: " + strings.Join(parts, "; ")
}
