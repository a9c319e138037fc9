package httputil

import (
	"fmt"
	"strings"
)

// HTTPError is used for error responses that contain a body.
type HTTPError struct {
	Error  string       `json:"error" example:"there is no budget matching your query"`
	Errors []FieldError `json:"errors,omitempty"` // Errors for single fields of the request body
}

// FieldError describes why the value of a single field is invalid.
type FieldError struct {
	Field   string `json:"field" example:"amount"`                 // Name of the field
	Message string `json:"message" example:"amount is required"` // What is wrong with the value
}

// ValidationError is returned when the request body is well-formed, but
// one or more fields are invalid.
type ValidationError struct {
	Fields []FieldError
}

func (e ValidationError) Error() string {
	messages := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		messages = append(messages, f.Message)
	}

	return fmt.Sprintf("the request body is invalid: %s", strings.Join(messages, ", "))
}

// NewValidationError returns a ValidationError for the passed fields.
func NewValidationError(fields ...FieldError) ValidationError {
	return ValidationError{Fields: fields}
}
