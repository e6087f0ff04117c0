package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// PhoneMessage is reported when a phone number fails the format check
const PhoneMessage = "Please provide a valid 10-digit phone number"

// HandleValidationError converts a binding error into an ErrorDetail. The
// first failing field drives the message; all failures go into details.
func HandleValidationError(err error) *ErrorDetail {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return NewErrorDetail(ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, FormatFieldError(fe))
	}

	detail := NewErrorDetail(ErrorCodeValidationFailed, messages[0]).WithField(verrs[0].Field())
	if len(messages) > 1 {
		detail = detail.WithDetails(messages)
	}
	return detail
}

// FormatFieldError renders a single validator failure as a sentence
func FormatFieldError(e validator.FieldError) string {
	field := e.Field()
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "inphone":
		return PhoneMessage
	case "objectid":
		return field + " must be a valid 24 character hex id"
	case "email":
		return field + " must be a valid email address"
	case "oneof":
		return field + " must be one of: " + strings.ReplaceAll(e.Param(), "'", "")
	case "min", "gte":
		return field + " must be at least " + e.Param() + unitFor(e.Kind())
	case "max", "lte":
		return field + " must be at most " + e.Param() + unitFor(e.Kind())
	default:
		return fmt.Sprintf("%s validation failed: %s", field, e.Tag())
	}
}

func unitFor(kind reflect.Kind) string {
	switch kind {
	case reflect.String:
		return " characters long"
	case reflect.Slice, reflect.Array:
		return " items"
	default:
		return ""
	}
}
