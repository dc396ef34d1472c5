package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/altan/coursehub/internal/app/models/dto"
	"github.com/altan/coursehub/internal/pkg/apperrors"
	"github.com/altan/coursehub/internal/pkg/logger"
)

// HandleAPIError maps service/repository errors to HTTP responses. It is the
// single mapping point: handlers return errors here instead of picking
// status codes themselves.
func HandleAPIError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(validationErr.Messages))
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse([]string{err.Error()}))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Access denied"})
	case errors.Is(err, apperrors.ErrPermissionDenied):
		// 403 carries no body: it must not reveal anything about the resource
		// beyond the status itself.
		c.Status(http.StatusForbidden)
	case errors.Is(err, apperrors.ErrCourseNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		c.Status(http.StatusNotFound)
	default:
		logger.Error().Err(err).Str("requestId", GetRequestID(c)).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.ServerErrorResponse{
			Message: "Internal Server Error",
			Error:   struct{}{},
		})
	}
}

// Recovery converts handler panics into the 500 envelope. The panic detail is
// included only outside production mode.
func Recovery(production bool) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error().
			Interface("panic", recovered).
			Str("requestId", GetRequestID(c)).
			Msg("Handler panicked")

		detail := interface{}(struct{}{})
		if !production {
			detail = fmt.Sprintf("%v", recovered)
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ServerErrorResponse{
			Message: "Internal Server Error",
			Error:   detail,
		})
	})
}

// RouteNotFound is the NoRoute fallback.
func RouteNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "Route Not Found"})
}
