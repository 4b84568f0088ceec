package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"holocron/internal/server/domain"
	"holocron/internal/server/repository"
)

var (
	// ErrNoteNotFound is returned for ids that do not exist or belong to another user.
	ErrNoteNotFound = errors.New("Note not found")
	// ErrEmptyNote rejects notes with neither a title nor content.
	ErrEmptyNote = errors.New("Note must have a title or content")
)

// NoteService describes note lifecycle operations scoped to an owning user.
type NoteService interface {
	Create(ctx context.Context, userID, title, content string) (*domain.Note, error)
	List(ctx context.Context, userID, search string) ([]domain.Note, error)
	Get(ctx context.Context, userID, id string) (*domain.Note, error)
	Update(ctx context.Context, userID, id, title, content string) (*domain.Note, error)
	Delete(ctx context.Context, userID, id string) error
}

type noteService struct {
	notes repository.NoteRepository
}

func NewNoteService(notes repository.NoteRepository) NoteService {
	return &noteService{notes: notes}
}

func (s *noteService) Create(ctx context.Context, userID, title, content string) (*domain.Note, error) {
	if isEmptyNote(title, content) {
		return nil, ErrEmptyNote
	}

	note := &domain.Note{
		ID:      uuid.NewString(),
		UserID:  userID,
		Title:   title,
		Content: content,
	}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *noteService) List(ctx context.Context, userID, search string) ([]domain.Note, error) {
	return s.notes.List(ctx, userID, search)
}

func (s *noteService) Get(ctx context.Context, userID, id string) (*domain.Note, error) {
	note, err := s.notes.GetByID(ctx, userID, id)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "not found") {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}
	return note, nil
}

func (s *noteService) Update(ctx context.Context, userID, id, title, content string) (*domain.Note, error) {
	if isEmptyNote(title, content) {
		return nil, ErrEmptyNote
	}

	note := &domain.Note{
		ID:      id,
		UserID:  userID,
		Title:   title,
		Content: content,
	}
	if err := s.notes.Update(ctx, note); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "not found") {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}

	return s.notes.GetByID(ctx, userID, id)
}

func (s *noteService) Delete(ctx context.Context, userID, id string) error {
	deleted, err := s.notes.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNoteNotFound
	}
	return nil
}

func isEmptyNote(title, content string) bool {
	return strings.TrimSpace(title) == "" && strings.TrimSpace(content) == ""
}
