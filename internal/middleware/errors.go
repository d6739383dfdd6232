package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"interior-studio-backend/internal/apperrors"
)

// ErrorHandler renders the last error attached with c.Error as a JSON response,
// unless the handler already wrote one.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		appErr := apperrors.AsStructuredError(c.Errors.Last().Err)
		attrs := []any{
			"error_type", appErr.Type,
			"message", appErr.Message,
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"status", appErr.HTTPStatus(),
		}
		if appErr.Cause != nil {
			attrs = append(attrs, "cause", appErr.Cause.Error())
		}
		if appErr.Type == apperrors.TypeInternal {
			logger.ErrorContext(c.Request.Context(), "request failed", attrs...)
		} else {
			logger.DebugContext(c.Request.Context(), "request rejected", attrs...)
		}

		c.JSON(appErr.HTTPStatus(), appErr.ToResponse())
	}
}
