package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// personRequest is the schema used across these tests: field order is
// the declaration order violations must be reported in.
type personRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
	Age  *int   `json:"age"  validate:"required,gte=0,lte=150"`
}

func postJSON(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))
}

func TestDecodeAndValidateEmptyBodyObject(t *testing.T) {
	var req personRequest
	fieldErrors := DecodeAndValidate(postJSON(`{}`), &req)

	// Both violations reported together, in declaration order.
	require.Len(t, fieldErrors, 2)
	assert.Equal(t, "name", fieldErrors[0].Field)
	assert.Equal(t, "is required", fieldErrors[0].Message)
	assert.Equal(t, "age", fieldErrors[1].Field)
	assert.Equal(t, "is required", fieldErrors[1].Message)
}

func TestDecodeAndValidateCollectsAllViolations(t *testing.T) {
	type wideRequest struct {
		Email    string `json:"email"    validate:"required,email"`
		Password string `json:"password" validate:"required,min=12"`
		Role     string `json:"role"     validate:"required,oneof=admin member"`
	}

	var req wideRequest
	fieldErrors := DecodeAndValidate(
		postJSON(`{"email":"not-an-email","password":"short","role":"owner"}`), &req)

	require.Len(t, fieldErrors, 3)
	assert.Equal(t, "email", fieldErrors[0].Field)
	assert.Equal(t, "must be a valid email address", fieldErrors[0].Message)
	assert.Equal(t, "password", fieldErrors[1].Field)
	assert.Equal(t, "must be at least 12 characters", fieldErrors[1].Message)
	assert.Equal(t, "role", fieldErrors[2].Field)
	assert.Equal(t, "must be one of: admin member", fieldErrors[2].Message)
}

func TestDecodeAndValidateOrderIsDeterministic(t *testing.T) {
	for i := 0; i < 20; i++ {
		var req personRequest
		fieldErrors := DecodeAndValidate(postJSON(`{}`), &req)
		require.Len(t, fieldErrors, 2)
		assert.Equal(t, "name", fieldErrors[0].Field)
		assert.Equal(t, "age", fieldErrors[1].Field)
	}
}

func TestDecodeAndValidateNoSilentCoercion(t *testing.T) {
	// A numeric field submitted as text is a violation, not a cast.
	var req personRequest
	fieldErrors := DecodeAndValidate(postJSON(`{"name":"Ada","age":"30"}`), &req)

	require.NotEmpty(t, fieldErrors)
	assert.Equal(t, "age", fieldErrors[0].Field)
	assert.Contains(t, fieldErrors[0].Message, "must be of type")
}

func TestDecodeAndValidateRejectsUnknownFields(t *testing.T) {
	var req personRequest
	fieldErrors := DecodeAndValidate(postJSON(`{"name":"Ada","age":30,"nickname":"ada"}`), &req)

	require.Len(t, fieldErrors, 1)
	assert.Equal(t, "nickname", fieldErrors[0].Field)
	assert.Equal(t, "is not an expected field", fieldErrors[0].Message)
}

func TestDecodeAndValidateCollectsAllTypeMismatches(t *testing.T) {
	var req personRequest
	fieldErrors := DecodeAndValidate(postJSON(`{"name":1,"age":"x"}`), &req)

	require.Len(t, fieldErrors, 2)
	assert.Equal(t, "name", fieldErrors[0].Field)
	assert.Equal(t, "must be of type string", fieldErrors[0].Message)
	assert.Equal(t, "age", fieldErrors[1].Field)
	assert.Equal(t, "must be of type int", fieldErrors[1].Message)
}

func TestDecodeAndValidateMixedTypeAndConstraintViolations(t *testing.T) {
	// A type mismatch on one field must not hide the required-miss on
	// another; both come back in declaration order.
	var req personRequest
	fieldErrors := DecodeAndValidate(postJSON(`{"age":"x"}`), &req)

	require.Len(t, fieldErrors, 2)
	assert.Equal(t, "name", fieldErrors[0].Field)
	assert.Equal(t, "is required", fieldErrors[0].Message)
	assert.Equal(t, "age", fieldErrors[1].Field)
	assert.Equal(t, "must be of type int", fieldErrors[1].Message)
}

func TestDecodeAndValidateMixedWithUnknownField(t *testing.T) {
	var req personRequest
	fieldErrors := DecodeAndValidate(postJSON(`{"name":1,"nickname":"ada"}`), &req)

	require.Len(t, fieldErrors, 3)
	assert.Equal(t, "name", fieldErrors[0].Field)
	assert.Equal(t, "must be of type string", fieldErrors[0].Message)
	assert.Equal(t, "age", fieldErrors[1].Field)
	assert.Equal(t, "is required", fieldErrors[1].Message)
	assert.Equal(t, "nickname", fieldErrors[2].Field)
	assert.Equal(t, "is not an expected field", fieldErrors[2].Message)
}

func TestDecodeAndValidateNonObjectBody(t *testing.T) {
	var req personRequest
	fieldErrors := DecodeAndValidate(postJSON(`[1,2,3]`), &req)

	require.Len(t, fieldErrors, 1)
	assert.Equal(t, "body", fieldErrors[0].Field)
	assert.Equal(t, "must be a JSON object", fieldErrors[0].Message)
}

func TestDecodeAndValidateEmptyBody(t *testing.T) {
	var req personRequest
	fieldErrors := DecodeAndValidate(postJSON(``), &req)

	require.Len(t, fieldErrors, 1)
	assert.Equal(t, "body", fieldErrors[0].Field)
	assert.Equal(t, "must not be empty", fieldErrors[0].Message)
}

func TestDecodeAndValidateMalformedJSON(t *testing.T) {
	var req personRequest
	fieldErrors := DecodeAndValidate(postJSON(`{"name":`), &req)

	require.Len(t, fieldErrors, 1)
	assert.Equal(t, "body", fieldErrors[0].Field)
	assert.Equal(t, "must be valid JSON", fieldErrors[0].Message)
}

func TestDecodeAndValidateAcceptsValidInput(t *testing.T) {
	var req personRequest
	fieldErrors := DecodeAndValidate(postJSON(`{"name":"Ada","age":30}`), &req)

	require.Nil(t, fieldErrors)
	assert.Equal(t, "Ada", req.Name)
	require.NotNil(t, req.Age)
	assert.Equal(t, 30, *req.Age)
}

func TestValidateBoundaryValues(t *testing.T) {
	zero := 0
	oneFifty := 150
	tooOld := 151

	tests := []struct {
		name    string
		req     personRequest
		wantErr bool
	}{
		{"age lower bound", personRequest{Name: "a", Age: &zero}, false},
		{"age upper bound", personRequest{Name: "a", Age: &oneFifty}, false},
		{"age above range", personRequest{Name: "a", Age: &tooOld}, true},
		{"name too long", personRequest{Name: strings.Repeat("x", 51), Age: &zero}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fieldErrors := Validate(&tc.req)
			if tc.wantErr {
				assert.NotEmpty(t, fieldErrors)
			} else {
				assert.Nil(t, fieldErrors)
			}
		})
	}
}

func TestValidateUsesJSONFieldNames(t *testing.T) {
	type renamedRequest struct {
		DisplayName string `json:"display_name" validate:"required"`
	}

	fieldErrors := Validate(&renamedRequest{})
	require.Len(t, fieldErrors, 1)
	assert.Equal(t, "display_name", fieldErrors[0].Field)
}
