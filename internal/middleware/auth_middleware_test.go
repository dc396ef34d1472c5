package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altan/coursehub/internal/app/models"
	"github.com/altan/coursehub/internal/middleware"
	"github.com/altan/coursehub/internal/pkg/apperrors"
	"github.com/altan/coursehub/internal/pkg/auth"
)

type fakeUserFinder struct {
	users map[string]*models.User
}

func (f *fakeUserFinder) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func newAuthRouter(t *testing.T) (*gin.Engine, *models.User) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := auth.HashPassword("joepassword")
	require.NoError(t, err)

	user := &models.User{
		ID:           1,
		FirstName:    "Joe",
		LastName:     "Smith",
		EmailAddress: "joe@smith.com",
		Password:     hash,
	}

	finder := &fakeUserFinder{users: map[string]*models.User{user.EmailAddress: user}}
	authMiddleware := middleware.NewAuthMiddleware(finder, zerolog.Nop())

	router := gin.New()
	router.GET("/protected", authMiddleware.BasicAuth(), func(c *gin.Context) {
		current, ok := middleware.CurrentUser(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": current.ID})
	})

	return router, user
}

func TestBasicAuth(t *testing.T) {
	router, user := newAuthRouter(t)

	// All three failure modes must produce byte-identical bodies so the
	// response never reveals which check failed.
	denied := func(t *testing.T, w *httptest.ResponseRecorder) {
		t.Helper()
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Access denied", body["message"])
	}

	t.Run("no header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		denied(t, w)
	})

	t.Run("unknown user", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.SetBasicAuth("nobody@example.com", "whatever")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		denied(t, w)
	})

	t.Run("wrong password", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.SetBasicAuth(user.EmailAddress, "wrongpassword")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		denied(t, w)
	})

	t.Run("valid credentials attach user", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.SetBasicAuth(user.EmailAddress, "joepassword")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]int64
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, user.ID, body["id"])
	})
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	t.Run("generated when absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.NotEmpty(t, w.Body.String())
		assert.Equal(t, w.Body.String(), w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("client id echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "client-id-1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "client-id-1", w.Body.String())
	})
}
