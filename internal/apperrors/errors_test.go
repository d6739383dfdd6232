package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"interior-studio-backend/internal/apperrors"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *apperrors.Error
		want int
	}{
		{"validation", apperrors.ValidationError("bad"), http.StatusUnprocessableEntity},
		{"not found", apperrors.NotFoundError("Layout not found"), http.StatusNotFound},
		{"internal", apperrors.InternalError("boom", errors.New("cause")), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatus())
		})
	}
}

func TestAsStructuredError(t *testing.T) {
	assert.Nil(t, apperrors.AsStructuredError(nil))

	notFound := apperrors.NotFoundError("Render job not found")
	wrapped := fmt.Errorf("completing: %w", notFound)
	assert.Same(t, notFound, apperrors.AsStructuredError(wrapped))

	plain := errors.New("disk on fire")
	structured := apperrors.AsStructuredError(plain)
	require.NotNil(t, structured)
	assert.Equal(t, apperrors.TypeInternal, structured.Type)
	assert.ErrorIs(t, structured, plain)
}

func TestToResponseHidesCause(t *testing.T) {
	err := apperrors.InternalError("internal server error", errors.New("secret detail"))

	resp := err.ToResponse()
	assert.Equal(t, "internal", resp.Error)
	assert.Equal(t, "internal server error", resp.Detail)
	assert.NotContains(t, resp.Detail, "secret")
}

func TestTypePredicates(t *testing.T) {
	assert.True(t, apperrors.IsNotFound(apperrors.NotFoundError("x")))
	assert.False(t, apperrors.IsNotFound(apperrors.ValidationError("x")))
	assert.True(t, apperrors.IsValidation(fmt.Errorf("wrap: %w", apperrors.ValidationError("x"))))
	assert.False(t, apperrors.IsValidation(errors.New("x")))
}
