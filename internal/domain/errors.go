package domain

import "errors"

// ErrValidation is the root of all domain validation errors. Every
// construction-time validation failure wraps it so callers can treat
// the whole family as one category with errors.Is.
var ErrValidation = errors.New("validation failed")

// Entity validation errors.
var (
	ErrEmptyUserID         = validationError("user ID cannot be empty")
	ErrEmptyEmail          = validationError("email cannot be empty")
	ErrInvalidEmail        = validationError("invalid email format")
	ErrPasswordTooShort    = validationError("password must be at least 12 characters long")
	ErrPasswordTooLong     = validationError("password must be at most 72 characters long")
	ErrEmptyPassword       = validationError("password cannot be empty")
	ErrEmptyHashedPassword = validationError("hashed password cannot be empty")

	ErrEmptyNoteID      = validationError("note ID cannot be empty")
	ErrEmptyNoteOwner   = validationError("note owner cannot be empty")
	ErrEmptyNoteTitle   = validationError("note title cannot be empty")
	ErrNoteTitleTooLong = validationError("note title must be at most 200 characters long")
)

// IsValidationError reports whether err belongs to the domain
// validation family.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

type wrappedValidationError struct {
	msg string
}

func (e *wrappedValidationError) Error() string { return e.msg }

func (e *wrappedValidationError) Unwrap() error { return ErrValidation }

func validationError(msg string) error {
	return &wrappedValidationError{msg: msg}
}
