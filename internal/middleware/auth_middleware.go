package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/altan/coursehub/internal/app/models"
	"github.com/altan/coursehub/internal/app/models/dto"
	"github.com/altan/coursehub/internal/pkg/apperrors"
	"github.com/altan/coursehub/internal/pkg/auth"
)

// Context keys set by BasicAuth on success.
const (
	ContextUserKey   = "currentUser"
	ContextUserIDKey = "userID"
)

// accessDeniedMessage is the uniform 401 body. The response never reveals
// whether the header was missing, the user unknown, or the password wrong;
// that distinction goes to the log only.
const accessDeniedMessage = "Access denied"

// UserFinder is the slice of the data-access layer the middleware needs.
type UserFinder interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthMiddleware authenticates requests from their Basic-Auth header.
type AuthMiddleware struct {
	users  UserFinder
	logger zerolog.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(users UserFinder, logger zerolog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		users:  users,
		logger: logger,
	}
}

// BasicAuth validates the credentials in the Authorization header, attaches
// the authenticated user to the request context and otherwise short-circuits
// with a 401. It has no side effect beyond the context attachment.
func (m *AuthMiddleware) BasicAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		email, password, ok := c.Request.BasicAuth()
		if !ok {
			m.deny(c, "auth header not found", "")
			return
		}

		user, err := m.users.GetUserByEmail(c.Request.Context(), email)
		if err != nil {
			if errors.Is(err, apperrors.ErrUserNotFound) {
				m.deny(c, "user not found", email)
				return
			}
			m.logger.Error().Err(err).Str("requestId", GetRequestID(c)).Msg("User lookup failed during authentication")
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ServerErrorResponse{
				Message: "Internal Server Error",
				Error:   struct{}{},
			})
			return
		}

		if !auth.CheckPassword(user.Password, password) {
			m.deny(c, "authentication failure", email)
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.ID)
		c.Next()
	}
}

// deny logs the diagnostic reason and aborts with the generic 401 body.
func (m *AuthMiddleware) deny(c *gin.Context, reason, email string) {
	m.logger.Warn().
		Str("reason", reason).
		Str("emailAddress", email).
		Str("requestId", GetRequestID(c)).
		Msg("Basic auth rejected")

	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponse{Message: accessDeniedMessage})
}

// CurrentUser returns the authenticated user attached by BasicAuth.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
