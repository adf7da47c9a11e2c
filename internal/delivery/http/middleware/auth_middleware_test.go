package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medibook/config"
	"medibook/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(expiry time.Duration) *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret: "test-secret",
		Expiry: expiry,
	})
}

func TestAuthenticate(t *testing.T) {
	jwtService := newTestJWTService(time.Hour)
	authMiddleware := NewAuthMiddleware(jwtService)

	userID := uuid.New()
	token, err := jwtService.GenerateToken(userID, "patient")
	require.NoError(t, err)

	t.Run("valid token passes identity to the handler", func(t *testing.T) {
		var gotID uuid.UUID
		var gotRole string
		handler := authMiddleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotID, _ = GetUserIDFromContext(r.Context())
			gotRole, _ = GetUserRoleFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/appointments", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, userID, gotID)
		assert.Equal(t, "patient", gotRole)
	})

	t.Run("missing header is rejected before the handler runs", func(t *testing.T) {
		called := false
		handler := authMiddleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/appointments", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, called)
	})

	t.Run("malformed header is rejected", func(t *testing.T) {
		handler := authMiddleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		req := httptest.NewRequest(http.MethodGet, "/api/appointments", nil)
		req.Header.Set("Authorization", "Token "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		handler := authMiddleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		req := httptest.NewRequest(http.MethodGet, "/api/appointments", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		expiredService := newTestJWTService(-time.Hour)
		expiredToken, err := expiredService.GenerateToken(userID, "patient")
		require.NoError(t, err)

		handler := authMiddleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		req := httptest.NewRequest(http.MethodGet, "/api/appointments", nil)
		req.Header.Set("Authorization", "Bearer "+expiredToken)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
