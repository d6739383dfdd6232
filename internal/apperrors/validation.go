package apperrors

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"interior-studio-backend/internal/models"
)

// UseJSONFieldNames makes v report fields by their JSON name, so field errors
// point at "ceiling_height" rather than "CeilingHeight".
func UseJSONFieldNames(v *validator.Validate) {
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
}

// FromBindError converts a gin binding failure into a validation error.
func FromBindError(err error) *Error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make([]models.FieldError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			fields = append(fields, models.FieldError{
				Field:   fieldPath(fe.Namespace()),
				Message: describe(fe),
			})
		}
		return ValidationError("request body failed validation", fields...)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return ValidationError("request body failed validation", models.FieldError{
			Field:   typeErr.Field,
			Message: "must be of type " + typeErr.Type.String(),
		})
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ValidationError("request body is not valid JSON")
	}

	if errors.Is(err, io.EOF) {
		return ValidationError("request body is required")
	}

	return ValidationError(err.Error())
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "failed " + fe.Tag() + " validation"
	}
}
