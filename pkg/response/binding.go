package response

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// BindingMessage turns a gin binding error into a client-facing message.
// Validation failures get field-level detail; anything else (malformed JSON,
// wrong types) gets a generic message.
func BindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid request body"
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", fieldName(fe)))
		case "email":
			parts = append(parts, fmt.Sprintf("%s must be a valid email", fieldName(fe)))
		case "min":
			parts = append(parts, fmt.Sprintf("%s must be at least %s characters", fieldName(fe), fe.Param()))
		default:
			parts = append(parts, fmt.Sprintf("%s is invalid", fieldName(fe)))
		}
	}
	return strings.Join(parts, "; ")
}

func fieldName(fe validator.FieldError) string {
	f := fe.Field()
	if f == "" {
		return "field"
	}
	return strings.ToLower(f[:1]) + f[1:]
}
