package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jwhitmore/launchkit/internal/domain"
)

// NoteStore defines the interface for note data persistence.
type NoteStore interface {
	// Create saves a new note. Returns ErrInvalidEntity if the owning
	// user does not exist and domain validation errors if the data is
	// invalid.
	Create(ctx context.Context, note *domain.Note) error

	// GetByID retrieves a note by ID regardless of owner.
	// Returns ErrNoteNotFound if the note does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Note, error)

	// ListByUser retrieves all notes owned by userID, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Note, error)

	// Update persists changes to an existing note's title and content.
	// Returns ErrNoteNotFound if the note does not exist.
	Update(ctx context.Context, note *domain.Note) error

	// Delete removes a note by ID.
	// Returns ErrNoteNotFound if the note does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a NoteStore that runs on the provided transaction.
	WithTx(tx *sql.Tx) NoteStore
}
