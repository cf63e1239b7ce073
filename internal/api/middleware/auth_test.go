package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwhitmore/launchkit/internal/api/shared"
	"github.com/jwhitmore/launchkit/internal/service/auth"
)

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	return decoded
}

// okHandler records whether the guard let the request through and what
// identity it attached.
type okHandler struct {
	called bool
	userID uuid.UUID
	claims *auth.Claims
}

func (h *okHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.called = true
	h.userID, _ = r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	h.claims, _ = r.Context().Value(shared.ClaimsContextKey).(*auth.Claims)
	w.WriteHeader(http.StatusOK)
}

func TestAuthenticateMissingHeader(t *testing.T) {
	next := &okHandler{}
	guard := NewAuthMiddleware(&auth.MockJWTService{})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	guard.Authenticate(next).ServeHTTP(w, req)

	assert.False(t, next.called)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	env := decodeEnvelope(t, w)
	assert.Equal(t, "UNAUTHORIZED", env["code"])
	assert.Equal(t, float64(http.StatusUnauthorized), env["status"])
	assert.Equal(t, false, env["success"])
}

func TestAuthenticateBadScheme(t *testing.T) {
	next := &okHandler{}
	guard := NewAuthMiddleware(&auth.MockJWTService{})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()
	guard.Authenticate(next).ServeHTTP(w, req)

	assert.False(t, next.called)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "UNAUTHORIZED", decodeEnvelope(t, w)["code"])
}

func TestAuthenticateExpiredToken(t *testing.T) {
	next := &okHandler{}
	guard := NewAuthMiddleware(&auth.MockJWTService{
		ValidateTokenFn: func(ctx context.Context, tokenString string) (*auth.Claims, error) {
			return nil, auth.ErrExpiredToken
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	w := httptest.NewRecorder()
	guard.Authenticate(next).ServeHTTP(w, req)

	assert.False(t, next.called)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	env := decodeEnvelope(t, w)
	assert.Equal(t, "UNAUTHORIZED", env["code"])
	assert.Equal(t, "Token expired", env["message"])
}

func TestAuthenticateInvalidToken(t *testing.T) {
	next := &okHandler{}
	guard := NewAuthMiddleware(&auth.MockJWTService{
		ValidateTokenFn: func(ctx context.Context, tokenString string) (*auth.Claims, error) {
			return nil, auth.ErrInvalidToken
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()
	guard.Authenticate(next).ServeHTTP(w, req)

	assert.False(t, next.called)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "UNAUTHORIZED", decodeEnvelope(t, w)["code"])
}

func TestAuthenticateMissingSubjectClaim(t *testing.T) {
	next := &okHandler{}
	guard := NewAuthMiddleware(&auth.MockJWTService{
		ValidateTokenFn: func(ctx context.Context, tokenString string) (*auth.Claims, error) {
			// Structurally valid and verified, but without the subject
			// claim protected routes require.
			return &auth.Claims{
				TokenType: "access",
				ExpiresAt: time.Now().Add(time.Hour),
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer no-subject")
	w := httptest.NewRecorder()
	guard.Authenticate(next).ServeHTTP(w, req)

	assert.False(t, next.called)
	assert.Equal(t, http.StatusForbidden, w.Code)

	env := decodeEnvelope(t, w)
	assert.Equal(t, "FORBIDDEN", env["code"])
	assert.Equal(t, float64(http.StatusForbidden), env["status"])
}

func TestAuthenticateValidToken(t *testing.T) {
	userID := uuid.New()
	next := &okHandler{}
	guard := NewAuthMiddleware(&auth.MockJWTService{
		ValidateTokenFn: func(ctx context.Context, tokenString string) (*auth.Claims, error) {
			return &auth.Claims{
				UserID:    userID,
				TokenType: "access",
				Subject:   userID.String(),
				ExpiresAt: time.Now().Add(time.Hour),
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	w := httptest.NewRecorder()
	guard.Authenticate(next).ServeHTTP(w, req)

	assert.True(t, next.called)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, next.userID)
	require.NotNil(t, next.claims)
	assert.Equal(t, userID, next.claims.UserID)
}
