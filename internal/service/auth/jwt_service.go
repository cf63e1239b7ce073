package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed access token for the user.
	GenerateToken(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateToken verifies an access token and extracts its claims.
	// Returns ErrExpiredToken, ErrInvalidToken, or ErrWrongTokenType
	// on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)

	// GenerateRefreshToken creates a signed refresh token for the user.
	// Refresh tokens live longer and are only accepted by the refresh
	// exchange, never by the auth guard.
	GenerateRefreshToken(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateRefreshToken verifies a refresh token and extracts its
	// claims. Returns ErrExpiredRefreshToken, ErrInvalidRefreshToken,
	// or ErrWrongTokenType on failure.
	ValidateRefreshToken(ctx context.Context, tokenString string) (*Claims, error)

	// AccessTokenLifetime reports how long newly minted access tokens
	// are valid, so handlers can surface the expiry to clients.
	AccessTokenLifetime() time.Duration
}

// Claims are the decoded, verified identity data extracted from a
// token. They are request-scoped: attached to the request context by
// the auth guard and discarded when the response is written.
type Claims struct {
	// UserID is the user the token was issued for.
	UserID uuid.UUID `json:"uid,omitempty"`

	// TokenType is "access" or "refresh"; validated to prevent a token
	// minted for one purpose being replayed for the other.
	TokenType string `json:"type,omitempty"`

	// Standard registered JWT claims.
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
