package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNote(t *testing.T) {
	userID := uuid.New()
	note, err := NewNote(userID, "groceries", "milk, eggs")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, note.ID)
	assert.Equal(t, userID, note.UserID)
	assert.Equal(t, "groceries", note.Title)
	assert.Equal(t, "milk, eggs", note.Content)
	assert.Equal(t, note.CreatedAt, note.UpdatedAt)
}

func TestNewNoteEmptyContentAllowed(t *testing.T) {
	_, err := NewNote(uuid.New(), "just a title", "")
	assert.NoError(t, err)
}

func TestNoteValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(n *Note)
		expected error
	}{
		{"empty id", func(n *Note) { n.ID = uuid.Nil }, ErrEmptyNoteID},
		{"empty owner", func(n *Note) { n.UserID = uuid.Nil }, ErrEmptyNoteOwner},
		{"empty title", func(n *Note) { n.Title = "" }, ErrEmptyNoteTitle},
		{
			"title too long",
			func(n *Note) { n.Title = strings.Repeat("x", MaxNoteTitleLength+1) },
			ErrNoteTitleTooLong,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			note, err := NewNote(uuid.New(), "valid", "content")
			require.NoError(t, err)

			tc.mutate(note)
			err = note.Validate()
			assert.ErrorIs(t, err, tc.expected)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestNoteTitleAtMaxLength(t *testing.T) {
	_, err := NewNote(uuid.New(), strings.Repeat("x", MaxNoteTitleLength), "")
	assert.NoError(t, err)
}
