package repository

import (
	"context"

	"holocron/internal/server/domain"
)

// NoteRepository defines persistence operations for Note entities.
// List returns the owner's notes ordered by last update, newest first;
// a non-empty search term filters on title and content, case-insensitively.
type NoteRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, note *domain.Note) error
	List(ctx context.Context, userID, search string) ([]domain.Note, error)
	GetByID(ctx context.Context, userID, id string) (*domain.Note, error)
	Update(ctx context.Context, note *domain.Note) error
	Delete(ctx context.Context, userID, id string) (bool, error)
}
