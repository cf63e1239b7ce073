// Package validation is the input-shape boundary: every request body is
// decoded and checked here before it reaches business logic. Schemas
// are declarative request structs with validate tags, interpreted by
// one shared validator instance. Violations are collected in a single
// pass and reported together, ordered by the schema's field declaration
// order.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jwhitmore/launchkit/internal/api/shared"
)

// validate is the shared validator instance. Field names in reported
// errors come from json tags so they match the wire names clients sent.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	return v
}

// jsonFieldName returns the wire name of a struct field, or "" when the
// field is excluded from JSON.
func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// DecodeAndValidate decodes the request body into dst and validates it
// against dst's declarative schema. It returns nil when the input is
// valid; otherwise it returns every field-level violation found in one
// pass, and dst must not be used.
//
// Decoding is strict: unknown fields are violations and values are
// never coerced across type boundaries (a string where a number is
// declared is an error, not a cast). Decode-level and tag-level
// violations are collected together, so a type mismatch on one field
// never hides a violation on another. Schema fields are reported in
// declaration order, one violation each, with unknown members appended
// in name order.
func DecodeAndValidate(r *http.Request, dst any) []shared.FieldError {
	target := reflect.ValueOf(dst)
	if target.Kind() != reflect.Ptr || target.Elem().Kind() != reflect.Struct {
		return []shared.FieldError{{Field: "body", Message: "is not a valid request shape"}}
	}

	members, bodyErrors := decodeMembers(r.Body)
	if bodyErrors != nil {
		return bodyErrors
	}

	decodeErrors, known := decodeFields(target.Elem(), members)

	tagErrors := make(map[string]shared.FieldError)
	for _, fieldError := range Validate(dst) {
		tagErrors[fieldError.Field] = fieldError
	}

	var fieldErrors []shared.FieldError
	structType := target.Elem().Type()
	for i := 0; i < structType.NumField(); i++ {
		name := jsonFieldName(structType.Field(i))
		if name == "" {
			continue
		}
		// A field that failed to decode holds its zero value, so any tag
		// violation on it is an artifact; the decode error wins.
		if fieldError, ok := decodeErrors[name]; ok {
			fieldErrors = append(fieldErrors, fieldError)
			continue
		}
		if fieldError, ok := tagErrors[name]; ok {
			fieldErrors = append(fieldErrors, fieldError)
		}
	}

	var unknown []string
	for name := range members {
		if !known[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		fieldErrors = append(fieldErrors, shared.FieldError{
			Field:   name,
			Message: "is not an expected field",
		})
	}

	return fieldErrors
}

// Validate checks dst against its validate tags and returns every
// violation, in struct declaration order, or nil if valid.
func Validate(dst any) []shared.FieldError {
	err := validate.Struct(dst)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		// InvalidValidationError: dst is not a struct. Programmer error,
		// reported as a single opaque violation rather than a panic.
		return []shared.FieldError{{Field: "body", Message: "is not a valid request shape"}}
	}

	fieldErrors := make([]shared.FieldError, 0, len(violations))
	for _, violation := range violations {
		fieldErrors = append(fieldErrors, shared.FieldError{
			Field:   violation.Field(),
			Message: messageForTag(violation),
		})
	}
	return fieldErrors
}

// decodeMembers reads the body as a JSON object, keeping each member
// raw so per-field decoding can report every mismatch instead of
// stopping at the first. Body-level problems are reported against the
// pseudo-field "body".
func decodeMembers(body io.Reader) (map[string]json.RawMessage, []shared.FieldError) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, []shared.FieldError{{Field: "body", Message: "must be valid JSON"}}
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, []shared.FieldError{{Field: "body", Message: "must not be empty"}}
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal(raw, &members); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, []shared.FieldError{{Field: "body", Message: "must be a JSON object"}}
		}
		return nil, []shared.FieldError{{Field: "body", Message: "must be valid JSON"}}
	}
	return members, nil
}

// decodeFields unmarshals each present member into its schema field,
// recording one violation per mismatched field rather than aborting on
// the first. Returns the violations keyed by wire name alongside the
// set of schema names, which the caller uses to spot unknown members.
func decodeFields(
	structValue reflect.Value,
	members map[string]json.RawMessage,
) (map[string]shared.FieldError, map[string]bool) {
	decodeErrors := make(map[string]shared.FieldError)
	known := make(map[string]bool)

	structType := structValue.Type()
	for i := 0; i < structType.NumField(); i++ {
		name := jsonFieldName(structType.Field(i))
		if name == "" {
			continue
		}
		known[name] = true

		rawValue, present := members[name]
		if !present {
			continue
		}

		err := json.Unmarshal(rawValue, structValue.Field(i).Addr().Interface())
		if err == nil {
			continue
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			decodeErrors[name] = shared.FieldError{
				Field:   name,
				Message: fmt.Sprintf("must be of type %s", typeErr.Type.Kind()),
			}
			continue
		}
		decodeErrors[name] = shared.FieldError{Field: name, Message: "must be valid JSON"}
	}
	return decodeErrors, known
}

// messageForTag renders a violated constraint as a human-readable
// message.
func messageForTag(violation validator.FieldError) string {
	switch violation.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "uuid":
		return "must be a valid UUID"
	case "min":
		if isLengthKind(violation.Kind()) {
			return fmt.Sprintf("must be at least %s characters", violation.Param())
		}
		return fmt.Sprintf("must be at least %s", violation.Param())
	case "max":
		if isLengthKind(violation.Kind()) {
			return fmt.Sprintf("must be at most %s characters", violation.Param())
		}
		return fmt.Sprintf("must be at most %s", violation.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", violation.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", violation.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", violation.Param())
	default:
		return "is invalid"
	}
}

// isLengthKind reports whether min/max applies to a length rather than
// a numeric magnitude.
func isLengthKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return true
	default:
		return false
	}
}
