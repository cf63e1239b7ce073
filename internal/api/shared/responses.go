package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// FieldError describes a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Envelope is the uniform wrapper for every response body, success or
// failure. Exactly one of Data (success) or Code+Errors (failure) is
// populated, and Status always mirrors the HTTP status sent to the
// transport.
type Envelope struct {
	Status  int          `json:"status"`
	Success bool         `json:"success"`
	Code    string       `json:"code,omitempty"`
	Message string       `json:"message"`
	Data    any          `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// SuccessEnvelope builds a success envelope for the given status,
// message, and payload. A nil payload is replaced with an empty object
// so data is always present on success responses. The message falls
// back to the canonical status text so it is never empty.
func SuccessEnvelope(status int, message string, data any) Envelope {
	if message == "" {
		message = http.StatusText(status)
	}
	if data == nil {
		data = struct{}{}
	}
	return Envelope{
		Status:  status,
		Success: true,
		Message: message,
		Data:    data,
	}
}

// FailureEnvelope builds a failure envelope. The status must come from
// the fixed code-to-status mapping; the envelope itself only enforces
// the shape invariants.
func FailureEnvelope(status int, code, message string, fieldErrors []FieldError) Envelope {
	if message == "" {
		message = http.StatusText(status)
	}
	return Envelope{
		Status:  status,
		Success: false,
		Code:    code,
		Message: message,
		Errors:  fieldErrors,
	}
}

// RespondWithJSON writes v as the JSON response body with the given status.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode JSON response",
			"error", err,
			"path", r.URL.Path,
			"method", r.Method)
	}
}

// RespondWithEnvelope writes the envelope using its own status as the
// HTTP status, keeping the body and transport status in lockstep.
func RespondWithEnvelope(w http.ResponseWriter, r *http.Request, env Envelope) {
	RespondWithJSON(w, r, env.Status, env)
}

// RespondWithSuccess builds and writes a success envelope.
func RespondWithSuccess(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	message string,
	data any,
) {
	RespondWithEnvelope(w, r, SuccessEnvelope(status, message, data))
}
