package service

import "errors"

// Service-level errors surfaced to the API layer.
var (
	// ErrNoteNotOwned indicates the authenticated user tried to operate
	// on a note that belongs to someone else.
	ErrNoteNotOwned = errors.New("note not owned by user")
)
