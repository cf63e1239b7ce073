package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jwhitmore/launchkit/internal/api/shared"
	"github.com/jwhitmore/launchkit/internal/domain"
	"github.com/jwhitmore/launchkit/internal/service"
	"github.com/jwhitmore/launchkit/internal/service/auth"
	"github.com/jwhitmore/launchkit/internal/store"
)

// ErrorCode is a machine-readable error category. The set is closed:
// every failure surfaced to a client carries exactly one of these five
// codes, and each code has exactly one canonical HTTP status.
type ErrorCode string

const (
	CodeBadRequest          ErrorCode = "BAD_REQUEST"
	CodeUnauthorized        ErrorCode = "UNAUTHORIZED"
	CodeForbidden           ErrorCode = "FORBIDDEN"
	CodeNotFound            ErrorCode = "NOT_FOUND"
	CodeInternalServerError ErrorCode = "INTERNAL_SERVER_ERROR"
)

// statusByCode is the fixed, total code-to-status mapping.
var statusByCode = map[ErrorCode]int{
	CodeBadRequest:          http.StatusBadRequest,
	CodeUnauthorized:        http.StatusUnauthorized,
	CodeForbidden:           http.StatusForbidden,
	CodeNotFound:            http.StatusNotFound,
	CodeInternalServerError: http.StatusInternalServerError,
}

// StatusForCode returns the canonical HTTP status for an error code.
// Unknown codes map to 500 so a miscategorized failure can never leave
// the process with a success status.
func StatusForCode(code ErrorCode) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Kind is one member of the closed error taxonomy: a code, its derived
// status, a client-safe message, and an optional ordered field-error
// list. Kinds are the single point where an internal error becomes an
// HTTP response.
type Kind struct {
	code    ErrorCode
	message string
	fields  []shared.FieldError
}

// BadRequest builds the 400 kind, optionally carrying field errors.
func BadRequest(message string, fieldErrors ...shared.FieldError) Kind {
	return Kind{code: CodeBadRequest, message: message, fields: fieldErrors}
}

// Unauthorized builds the 401 kind.
func Unauthorized(message string) Kind {
	return Kind{code: CodeUnauthorized, message: message}
}

// Forbidden builds the 403 kind.
func Forbidden(message string) Kind {
	return Kind{code: CodeForbidden, message: message}
}

// NotFound builds the 404 kind.
func NotFound(message string) Kind {
	return Kind{code: CodeNotFound, message: message}
}

// InternalServerError builds the 500 kind. The client-visible message
// is always the generic status text; the underlying cause belongs in
// the server logs only.
func InternalServerError() Kind {
	return Kind{code: CodeInternalServerError}
}

// Code returns the kind's error code.
func (k Kind) Code() ErrorCode { return k.code }

// Status returns the HTTP status derived from the kind's code.
func (k Kind) Status() int { return StatusForCode(k.code) }

// FieldErrors returns the ordered field-error list, if any.
func (k Kind) FieldErrors() []shared.FieldError { return k.fields }

// Envelope renders the kind as a ready-to-send failure envelope.
func (k Kind) Envelope() shared.Envelope {
	return shared.FailureEnvelope(k.Status(), string(k.code), k.message, k.fields)
}

// CoerceError maps any error from the service and store layers onto one
// of the five taxonomy kinds. Sentinel errors keep a specific code and
// a client-safe message; anything unrecognized is coerced to
// InternalServerError with the original detail suppressed from the
// client (the caller logs it).
func CoerceError(err error) Kind {
	switch {
	case errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrWrongTokenType):
		return Unauthorized("Invalid token")

	case errors.Is(err, auth.ErrExpiredToken):
		return Unauthorized("Token expired")

	case errors.Is(err, auth.ErrExpiredRefreshToken):
		return Unauthorized("Refresh token expired")

	case errors.Is(err, auth.ErrInvalidRefreshToken):
		return Unauthorized("Invalid refresh token")

	case errors.Is(err, service.ErrNoteNotOwned):
		return Forbidden("You do not own this note")

	case errors.Is(err, store.ErrUserNotFound):
		return NotFound("User not found")

	case errors.Is(err, store.ErrNoteNotFound):
		return NotFound("Note not found")

	case errors.Is(err, store.ErrNotFound):
		return NotFound("Resource not found")

	case errors.Is(err, store.ErrEmailExists):
		return BadRequest("Invalid request data",
			shared.FieldError{Field: "email", Message: "is already registered"})

	case errors.Is(err, store.ErrInvalidEntity), domain.IsValidationError(err):
		return BadRequest("Invalid request data")

	default:
		return InternalServerError()
	}
}

// RespondWithError writes the kind's failure envelope.
func RespondWithError(w http.ResponseWriter, r *http.Request, kind Kind) {
	shared.RespondWithEnvelope(w, r, kind.Envelope())
}

// RespondWithErrorAndLog writes the kind's failure envelope and logs
// the underlying cause server-side. 5xx responses log at ERROR, 4xx at
// DEBUG; the raw error never reaches the client.
func RespondWithErrorAndLog(w http.ResponseWriter, r *http.Request, kind Kind, err error) {
	logAttrs := []slog.Attr{
		slog.String("trace_id", shared.GetTraceID(r.Context())),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", kind.Status()),
		slog.String("code", string(kind.code)),
	}
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", err.Error()),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if kind.Status() >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}
	slog.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	shared.RespondWithEnvelope(w, r, kind.Envelope())
}
