// Package apperrors provides typed request errors and their HTTP status mapping.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	"interior-studio-backend/internal/models"
)

// ErrorType is the category of an error, also used as the "error" field of responses.
type ErrorType string

const (
	// TypeValidation indicates a malformed or out-of-constraint request body (HTTP 422)
	TypeValidation ErrorType = "validation"
	// TypeNotFound indicates a referenced id is not in the store (HTTP 404)
	TypeNotFound ErrorType = "not_found"
	// TypeInternal indicates anything else (HTTP 500)
	TypeInternal ErrorType = "internal"
)

type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Fields  []models.FieldError
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the status code for this error type.
func (e *Error) HTTPStatus() int {
	switch e.Type {
	case TypeValidation:
		return http.StatusUnprocessableEntity
	case TypeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ToResponse builds the JSON body for this error. Internal causes are not exposed.
func (e *Error) ToResponse() models.ErrorResponse {
	return models.ErrorResponse{
		Error:  string(e.Type),
		Detail: e.Message,
		Fields: e.Fields,
	}
}

func ValidationError(message string, fields ...models.FieldError) *Error {
	return &Error{
		Type:    TypeValidation,
		Message: message,
		Fields:  fields,
	}
}

func NotFoundError(message string) *Error {
	return &Error{
		Type:    TypeNotFound,
		Message: message,
	}
}

func InternalError(message string, cause error) *Error {
	return &Error{
		Type:    TypeInternal,
		Message: message,
		Cause:   cause,
	}
}

// AsStructuredError returns err as an *Error, wrapping unknown errors as internal.
func AsStructuredError(err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return InternalError("internal server error", err)
}

func IsNotFound(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Type == TypeNotFound
}

func IsValidation(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Type == TypeValidation
}
