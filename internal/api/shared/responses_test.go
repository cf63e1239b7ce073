package shared

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessEnvelope(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		message     string
		data        any
		wantMessage string
	}{
		{
			name:        "with payload and message",
			status:      http.StatusOK,
			message:     "note retrieved",
			data:        map[string]string{"id": "1"},
			wantMessage: "note retrieved",
		},
		{
			name:        "empty message falls back to status text",
			status:      http.StatusCreated,
			message:     "",
			data:        "payload",
			wantMessage: "Created",
		},
		{
			name:        "nil payload becomes empty object",
			status:      http.StatusOK,
			message:     "ok",
			data:        nil,
			wantMessage: "ok",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := SuccessEnvelope(tc.status, tc.message, tc.data)

			assert.True(t, env.Success)
			assert.Equal(t, tc.status, env.Status)
			assert.Equal(t, tc.wantMessage, env.Message)
			assert.NotEmpty(t, env.Message)
			assert.NotNil(t, env.Data)
			assert.Empty(t, env.Code)
			assert.Nil(t, env.Errors)
		})
	}
}

func TestSuccessEnvelopeWireShape(t *testing.T) {
	env := SuccessEnvelope(http.StatusOK, "ok", map[string]int{"count": 3})

	raw, err := json.Marshal(env)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	// Success responses carry data and never code or errors.
	assert.Contains(t, decoded, "data")
	assert.NotContains(t, decoded, "code")
	assert.NotContains(t, decoded, "errors")
	assert.Equal(t, true, decoded["success"])
	assert.Equal(t, float64(http.StatusOK), decoded["status"])
}

func TestFailureEnvelopeWireShape(t *testing.T) {
	env := FailureEnvelope(http.StatusBadRequest, "BAD_REQUEST", "Invalid request data",
		[]FieldError{{Field: "name", Message: "is required"}})

	raw, err := json.Marshal(env)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	// Failure responses carry code and errors and never data.
	assert.Contains(t, decoded, "code")
	assert.Contains(t, decoded, "errors")
	assert.NotContains(t, decoded, "data")
	assert.Equal(t, false, decoded["success"])
	assert.Equal(t, "BAD_REQUEST", decoded["code"])
	assert.NotEmpty(t, decoded["message"])
}

func TestFailureEnvelopeEmptyMessageFallsBack(t *testing.T) {
	env := FailureEnvelope(http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "", nil)
	assert.Equal(t, "Internal Server Error", env.Message)
}

func TestEnvelopeIdempotence(t *testing.T) {
	// Identical arguments must yield byte-identical envelopes.
	build := func() []byte {
		env := SuccessEnvelope(http.StatusOK, "ok", map[string]string{"id": "42"})
		raw, err := json.Marshal(env)
		require.NoError(t, err)
		return raw
	}
	assert.Equal(t, build(), build())

	buildFailure := func() []byte {
		env := FailureEnvelope(http.StatusNotFound, "NOT_FOUND", "Note not found", nil)
		raw, err := json.Marshal(env)
		require.NoError(t, err)
		return raw
	}
	assert.Equal(t, buildFailure(), buildFailure())
}

func TestRespondWithEnvelope(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	env := SuccessEnvelope(http.StatusCreated, "created", map[string]string{"id": "1"})
	RespondWithEnvelope(w, req, env)

	// The HTTP status always mirrors the envelope status.
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	assert.Equal(t, float64(http.StatusCreated), decoded["status"])
}

func TestRespondWithSuccess(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	RespondWithSuccess(w, req, http.StatusOK, "ok", []string{"a", "b"})

	assert.Equal(t, http.StatusOK, w.Code)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	assert.Equal(t, true, decoded["success"])
	assert.Equal(t, []any{"a", "b"}, decoded["data"])
}
