package api

import (
	"context"

	"holocron/internal/client/models"
)

// Client is the transport-agnostic contract for talking to the Holocron
// backend. All methods honor context cancellation and return errors from the
// taxonomy in errors.go.
type Client interface {
	// Register creates a new account. The server does not log the user in;
	// callers follow up with Login.
	Register(ctx context.Context, email, password string) error

	// Login exchanges credentials for a bearer token. The token is returned
	// to the caller (the session layer decides whether to persist it).
	Login(ctx context.Context, email, password string) (string, error)

	// CurrentUser fetches the identity behind the current credential.
	CurrentUser(ctx context.Context) (*models.User, error)

	// ListNotes fetches the user's notes, optionally filtered server-side by
	// a free-text term. An empty term means no filter.
	ListNotes(ctx context.Context, search string) ([]models.Note, error)

	CreateNote(ctx context.Context, title, content string) (*models.Note, error)
	UpdateNote(ctx context.Context, id, title, content string) (*models.Note, error)
	DeleteNote(ctx context.Context, id string) error
	GetNote(ctx context.Context, id string) (*models.Note, error)

	// CreateCheckoutSession asks the server for a subscription checkout URL
	// for the given price lookup key.
	CreateCheckoutSession(ctx context.Context, lookupKey string) (string, error)
}

// CredentialSource supplies the bearer credential for outbound requests and
// discards it when the server reports it invalid. The durable credential
// store satisfies this interface.
type CredentialSource interface {
	// Token returns the current credential, or an empty string when
	// unauthenticated.
	Token(ctx context.Context) (string, error)

	// Discard removes the persisted credential.
	Discard(ctx context.Context) error
}
