package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jwhitmore/launchkit/internal/api/shared"
	"github.com/jwhitmore/launchkit/internal/api/validation"
	"github.com/jwhitmore/launchkit/internal/service"
)

// NoteHandler handles the note resource endpoints. All routes sit
// behind the auth guard, so a user ID is always present in the context.
type NoteHandler struct {
	noteService service.NoteService
}

// NewNoteHandler creates a NoteHandler with the given service.
func NewNoteHandler(noteService service.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

// CreateNote handles POST /api/notes.
func (h *NoteHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUser(w, r)
	if !ok {
		return
	}

	var req CreateNoteRequest
	if fieldErrors := validation.DecodeAndValidate(r, &req); fieldErrors != nil {
		RespondWithError(w, r, BadRequest("Invalid request data", fieldErrors...))
		return
	}

	note, err := h.noteService.CreateNote(r.Context(), userID, req.Title, req.Content)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusCreated, "Note created", noteToResponse(note))
}

// ListNotes handles GET /api/notes.
func (h *NoteHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUser(w, r)
	if !ok {
		return
	}

	notes, err := h.noteService.ListNotes(r.Context(), userID)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	responses := make([]NoteResponse, 0, len(notes))
	for i := range notes {
		responses = append(responses, noteToResponse(&notes[i]))
	}
	shared.RespondWithSuccess(w, r, http.StatusOK, "Notes retrieved", responses)
}

// GetNote handles GET /api/notes/{id}.
func (h *NoteHandler) GetNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUser(w, r)
	if !ok {
		return
	}

	noteID, ok := noteIDFromURL(w, r)
	if !ok {
		return
	}

	note, err := h.noteService.GetNote(r.Context(), userID, noteID)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "Note retrieved", noteToResponse(note))
}

// UpdateNote handles PUT /api/notes/{id}.
func (h *NoteHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUser(w, r)
	if !ok {
		return
	}

	noteID, ok := noteIDFromURL(w, r)
	if !ok {
		return
	}

	var req UpdateNoteRequest
	if fieldErrors := validation.DecodeAndValidate(r, &req); fieldErrors != nil {
		RespondWithError(w, r, BadRequest("Invalid request data", fieldErrors...))
		return
	}

	note, err := h.noteService.UpdateNote(r.Context(), userID, noteID, req.Title, req.Content)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "Note updated", noteToResponse(note))
}

// DeleteNote handles DELETE /api/notes/{id}.
func (h *NoteHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := authenticatedUser(w, r)
	if !ok {
		return
	}

	noteID, ok := noteIDFromURL(w, r)
	if !ok {
		return
	}

	if err := h.noteService.DeleteNote(r.Context(), userID, noteID); err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, "Note deleted", map[string]string{
		"id": noteID.String(),
	})
}

// respondServiceError coerces a service error to a taxonomy kind and
// writes it, logging the cause when it was unexpected.
func (h *NoteHandler) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	kind := CoerceError(err)
	if kind.Code() == CodeInternalServerError {
		RespondWithErrorAndLog(w, r, kind, err)
		return
	}
	RespondWithError(w, r, kind)
}

// authenticatedUser pulls the guard-attached user ID out of the
// context, rejecting the request if the guard did not run.
func authenticatedUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		RespondWithError(w, r, Unauthorized("Authentication required"))
		return uuid.Nil, false
	}
	return userID, true
}

// noteIDFromURL parses the {id} URL parameter.
func noteIDFromURL(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	noteID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		RespondWithError(w, r, BadRequest("Invalid note ID",
			shared.FieldError{Field: "id", Message: "must be a valid UUID"}))
		return uuid.Nil, false
	}
	return noteID, true
}
