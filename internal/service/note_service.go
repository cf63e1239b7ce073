// Package service contains the business logic sitting between the API
// handlers and the persistence stores.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jwhitmore/launchkit/internal/domain"
	"github.com/jwhitmore/launchkit/internal/platform/logger"
	"github.com/jwhitmore/launchkit/internal/store"
)

// NoteService defines the business operations for notes. Every
// operation is scoped to the authenticated user: reads and writes on a
// note owned by someone else fail with ErrNoteNotOwned.
type NoteService interface {
	CreateNote(ctx context.Context, userID uuid.UUID, title, content string) (*domain.Note, error)
	GetNote(ctx context.Context, userID, noteID uuid.UUID) (*domain.Note, error)
	ListNotes(ctx context.Context, userID uuid.UUID) ([]domain.Note, error)
	UpdateNote(ctx context.Context, userID, noteID uuid.UUID, title, content string) (*domain.Note, error)
	DeleteNote(ctx context.Context, userID, noteID uuid.UUID) error
}

// noteService is the default NoteService implementation.
type noteService struct {
	noteStore store.NoteStore
	logger    *slog.Logger
}

var _ NoteService = (*noteService)(nil)

// NewNoteService creates a NoteService backed by the given store.
func NewNoteService(noteStore store.NoteStore, log *slog.Logger) NoteService {
	if log == nil {
		log = slog.Default()
	}
	return &noteService{
		noteStore: noteStore,
		logger:    log.With(slog.String("component", "note_service")),
	}
}

// CreateNote implements NoteService.CreateNote.
func (s *noteService) CreateNote(
	ctx context.Context,
	userID uuid.UUID,
	title, content string,
) (*domain.Note, error) {
	note, err := domain.NewNote(userID, title, content)
	if err != nil {
		return nil, err
	}

	if err := s.noteStore.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Info("note created",
		slog.String("note_id", note.ID.String()),
		slog.String("user_id", userID.String()))

	return note, nil
}

// GetNote implements NoteService.GetNote.
func (s *noteService) GetNote(
	ctx context.Context,
	userID, noteID uuid.UUID,
) (*domain.Note, error) {
	return s.ownedNote(ctx, userID, noteID)
}

// ListNotes implements NoteService.ListNotes.
func (s *noteService) ListNotes(ctx context.Context, userID uuid.UUID) ([]domain.Note, error) {
	notes, err := s.noteStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

// UpdateNote implements NoteService.UpdateNote.
func (s *noteService) UpdateNote(
	ctx context.Context,
	userID, noteID uuid.UUID,
	title, content string,
) (*domain.Note, error) {
	note, err := s.ownedNote(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}

	note.Title = title
	note.Content = content
	note.UpdatedAt = time.Now().UTC()
	if err := note.Validate(); err != nil {
		return nil, err
	}

	if err := s.noteStore.Update(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return note, nil
}

// DeleteNote implements NoteService.DeleteNote.
func (s *noteService) DeleteNote(ctx context.Context, userID, noteID uuid.UUID) error {
	if _, err := s.ownedNote(ctx, userID, noteID); err != nil {
		return err
	}

	if err := s.noteStore.Delete(ctx, noteID); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Info("note deleted",
		slog.String("note_id", noteID.String()),
		slog.String("user_id", userID.String()))

	return nil
}

// ownedNote loads a note and checks ownership. Existence is checked
// before ownership so an unknown ID is a 404 and someone else's note
// is a 403.
func (s *noteService) ownedNote(
	ctx context.Context,
	userID, noteID uuid.UUID,
) (*domain.Note, error) {
	note, err := s.noteStore.GetByID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if note.UserID != userID {
		return nil, ErrNoteNotOwned
	}
	return note, nil
}
