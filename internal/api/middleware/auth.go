// Package middleware provides the HTTP middleware chain: the auth
// guard, trace ID injection, and CORS handling.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jwhitmore/launchkit/internal/api"
	"github.com/jwhitmore/launchkit/internal/api/shared"
	"github.com/jwhitmore/launchkit/internal/service/auth"
)

// AuthMiddleware is the per-request auth guard. Each request is
// verified independently; nothing is cached across requests.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates an AuthMiddleware using the given token
// service.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// Authenticate verifies the bearer token on protected routes. A
// missing, malformed, or expired credential is rejected with 401; a
// verified credential lacking the required subject claim with 403. On
// success the decoded identity claims are attached to the request
// context and the request proceeds.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			api.RespondWithError(w, r, api.Unauthorized("Authorization header required"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			api.RespondWithError(w, r, api.Unauthorized("Invalid authorization format"))
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), parts[1])
		if err != nil {
			kind := api.CoerceError(err)
			if kind.Code() == api.CodeInternalServerError {
				api.RespondWithErrorAndLog(w, r, kind, err)
			} else {
				api.RespondWithError(w, r, kind)
			}
			return
		}

		// A verified token without a subject is well-formed but lacks
		// the claim every protected route requires.
		if claims.UserID == uuid.Nil {
			api.RespondWithError(w, r, api.Forbidden("Credential is missing a required claim"))
			return
		}

		ctx := context.WithValue(r.Context(), shared.UserIDContextKey, claims.UserID)
		ctx = context.WithValue(ctx, shared.ClaimsContextKey, claims)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}