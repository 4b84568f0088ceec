// Package notes performs all remote note operations and provides the
// debounced search used by interactive callers. The repository holds no note
// state of its own: the collection belongs to the caller, and every operation
// returns a fresh server snapshot.
package notes

import (
	"context"
	"sort"

	"holocron/internal/client/api"
	"holocron/internal/client/models"
)

// Repository mediates note reads and writes against the remote store.
type Repository struct {
	api api.Client
}

func NewRepository(apiClient api.Client) *Repository {
	return &Repository{api: apiClient}
}

// List fetches the notes, optionally filtered server-side by a free-text
// term. The notes come back in server order; use SortByUpdatedDesc for
// display. Safe to retry.
func (r *Repository) List(ctx context.Context, term string) ([]models.Note, error) {
	return r.api.ListNotes(ctx, term)
}

// Save creates the note when its ID is empty and updates it otherwise,
// returning the server's canonical snapshot. A note with empty title and
// content is rejected locally, before any network call.
func (r *Repository) Save(ctx context.Context, note models.Note) (*models.Note, error) {
	if note.IsEmpty() {
		return nil, api.NewValidationError("Note must have a title or content")
	}
	if note.ID == "" {
		return r.api.CreateNote(ctx, note.Title, note.Content)
	}
	return r.api.UpdateNote(ctx, note.ID, note.Title, note.Content)
}

// Delete removes a note by id. Deleting an already-deleted id fails
// server-side; callers treat the note as gone either way.
func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.api.DeleteNote(ctx, id)
}

// Get fetches a single note by id.
func (r *Repository) Get(ctx context.Context, id string) (*models.Note, error) {
	return r.api.GetNote(ctx, id)
}

// SortByUpdatedDesc orders notes for display: most recently updated first.
// The sort is stable, so ties keep their relative order.
func SortByUpdatedDesc(notes []models.Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
	})
}
