package httputil

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

var errNotAnObject = NewValidationError(FieldError{Field: "body", Message: "the request body must be a JSON object"})

// ServerFields are set by the server and must not be part of a request body.
var ServerFields = []string{"id", "createdAt", "updatedAt"}

// BindData binds the data from the request to the struct passed in the interface.
//
// Invalid fields are returned as ValidationError. This includes fields
// of the wrong JSON type and all ServerFields.
func BindData(c *gin.Context, data any) error {
	if c.Request.Body == nil {
		return ErrRequestBodyEmpty
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return ErrRequestBodyEmpty
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(body, &keys); err != nil {
		var jsonUnmarshalTypeError *json.UnmarshalTypeError
		if errors.As(err, &jsonUnmarshalTypeError) {
			return errNotAnObject
		}

		return ErrInvalidBody
	}

	// A literal null decodes without error
	if keys == nil {
		return errNotAnObject
	}

	fields := serverFieldErrors(keys)

	c.Request.Body = io.NopCloser(bytes.NewReader(body))
	if err := c.ShouldBindJSON(data); err != nil {
		var jsonUnmarshalTypeError *json.UnmarshalTypeError
		var validationErrors validator.ValidationErrors

		switch {
		case errors.As(err, &jsonUnmarshalTypeError):
			field := jsonUnmarshalTypeError.Field
			if field == "" {
				field = "body"
			}

			fields = append(fields, FieldError{
				Field:   field,
				Message: fmt.Sprintf("%s is not valid: got %s", field, jsonUnmarshalTypeError.Value),
			})

			// The remaining fields have not been decoded
			return NewValidationError(fields...)

		case errors.As(err, &validationErrors):
			fields = append(fields, fieldErrors(validationErrors)...)

		default:
			log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
			return ErrInvalidBody
		}
	}

	if v, ok := data.(Validator); ok {
		fields = append(fields, v.Validate()...)
	}

	if len(fields) > 0 {
		return NewValidationError(uniqueFields(fields)...)
	}

	return nil
}

func serverFieldErrors(keys map[string]json.RawMessage) []FieldError {
	fields := make([]FieldError, 0)
	for _, name := range ServerFields {
		if _, ok := keys[name]; ok {
			fields = append(fields, FieldError{
				Field:   name,
				Message: fmt.Sprintf("%s is set by the server and must not be sent", name),
			})
		}
	}

	return fields
}

// uniqueFields removes duplicate errors for the same field and sorts the
// errors by field name. Only the first error for every field is kept.
func uniqueFields(fields []FieldError) []FieldError {
	seen := make(map[string]bool)
	unique := make([]FieldError, 0, len(fields))

	for _, f := range fields {
		if seen[f.Field] {
			continue
		}
		seen[f.Field] = true
		unique = append(unique, f)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].Field < unique[j].Field
	})

	return unique
}
