package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxNoteTitleLength caps note titles at a size that fits the schema.
const MaxNoteTitleLength = 200

// Note is a user-owned text record, the sample resource demonstrating
// the handler, service, and store layering.
type Note struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewNote creates a Note owned by userID with a fresh ID and timestamps.
func NewNote(userID uuid.UUID, title, content string) (*Note, error) {
	now := time.Now().UTC()
	note := &Note{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := note.Validate(); err != nil {
		return nil, err
	}
	return note, nil
}

// Validate checks the note's fields, returning the first violated
// domain invariant.
func (n *Note) Validate() error {
	if n.ID == uuid.Nil {
		return ErrEmptyNoteID
	}
	if n.UserID == uuid.Nil {
		return ErrEmptyNoteOwner
	}
	if n.Title == "" {
		return ErrEmptyNoteTitle
	}
	if len(n.Title) > MaxNoteTitleLength {
		return ErrNoteTitleTooLong
	}
	return nil
}
