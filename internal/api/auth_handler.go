package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jwhitmore/launchkit/internal/api/shared"
	"github.com/jwhitmore/launchkit/internal/api/validation"
	"github.com/jwhitmore/launchkit/internal/domain"
	"github.com/jwhitmore/launchkit/internal/service/auth"
	"github.com/jwhitmore/launchkit/internal/store"
)

// AuthHandler handles the authentication endpoints: register, login,
// refresh exchange, and the authenticated profile lookup.
type AuthHandler struct {
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
}

// NewAuthHandler creates an AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordHasher auth.PasswordHasher,
	passwordVerifier auth.PasswordVerifier,
) *AuthHandler {
	return &AuthHandler{
		userStore:        userStore,
		jwtService:       jwtService,
		passwordHasher:   passwordHasher,
		passwordVerifier: passwordVerifier,
	}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if fieldErrors := validation.DecodeAndValidate(r, &req); fieldErrors != nil {
		RespondWithError(w, r, BadRequest("Invalid request data", fieldErrors...))
		return
	}

	user, err := domain.NewUser(req.Email, req.Password)
	if err != nil {
		RespondWithError(w, r, CoerceError(err))
		return
	}

	hashed, err := h.passwordHasher.Hash(req.Password)
	if err != nil {
		RespondWithErrorAndLog(w, r, InternalServerError(), err)
		return
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := h.userStore.Create(r.Context(), user); err != nil {
		kind := CoerceError(err)
		if kind.Code() == CodeInternalServerError {
			RespondWithErrorAndLog(w, r, kind, err)
		} else {
			RespondWithError(w, r, kind)
		}
		return
	}

	resp, err := h.tokenPair(r, user.ID)
	if err != nil {
		RespondWithErrorAndLog(w, r, InternalServerError(), err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusCreated, "User registered", resp)
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if fieldErrors := validation.DecodeAndValidate(r, &req); fieldErrors != nil {
		RespondWithError(w, r, BadRequest("Invalid request data", fieldErrors...))
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Same response as a wrong password so the endpoint doesn't
			// reveal which emails are registered.
			RespondWithError(w, r, Unauthorized("Invalid credentials"))
			return
		}
		RespondWithErrorAndLog(w, r, InternalServerError(), err)
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		RespondWithError(w, r, Unauthorized("Invalid credentials"))
		return
	}

	resp, err := h.tokenPair(r, user.ID)
	if err != nil {
		RespondWithErrorAndLog(w, r, InternalServerError(), err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "Login successful", resp)
}

// RefreshToken handles POST /api/auth/refresh. It verifies the refresh
// token and mints a fresh access and refresh pair for the same subject.
// The old access token is not invalidated; there is no revocation list.
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req RefreshTokenRequest
	if fieldErrors := validation.DecodeAndValidate(r, &req); fieldErrors != nil {
		RespondWithError(w, r, BadRequest("Invalid request data", fieldErrors...))
		return
	}

	claims, err := h.jwtService.ValidateRefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		RespondWithError(w, r, CoerceError(err))
		return
	}

	resp, err := h.tokenPair(r, claims.UserID)
	if err != nil {
		RespondWithErrorAndLog(w, r, InternalServerError(), err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "Token refreshed", resp)
}

// Me handles GET /api/users/me on protected routes.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUser(w, r)
	if !ok {
		return
	}

	user, err := h.userStore.GetByID(r.Context(), userID)
	if err != nil {
		kind := CoerceError(err)
		if kind.Code() == CodeInternalServerError {
			RespondWithErrorAndLog(w, r, kind, err)
		} else {
			RespondWithError(w, r, kind)
		}
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "User profile", userToResponse(user))
}

// tokenPair mints a fresh access and refresh token for the user.
func (h *AuthHandler) tokenPair(r *http.Request, userID uuid.UUID) (*AuthResponse, error) {
	accessToken, err := h.jwtService.GenerateToken(r.Context(), userID)
	if err != nil {
		return nil, err
	}
	refreshToken, err := h.jwtService.GenerateRefreshToken(r.Context(), userID)
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().UTC().Add(h.jwtService.AccessTokenLifetime())
	return &AuthResponse{
		UserID:       userID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt.Format(time.RFC3339),
	}, nil
}
