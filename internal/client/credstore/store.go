// Package credstore persists the session credential across process restarts.
//
// The store holds exactly one durable key/value entry: the bearer token under
// a fixed key. Absence of the entry means the user is unauthenticated. The
// store implements api.CredentialSource, so the request layer reads and
// discards the credential through the same object the session layer writes.
package credstore

import "context"

// tokenKey is the fixed storage key for the bearer credential.
const tokenKey = "auth_token"

// Store is durable storage for the session credential.
type Store interface {
	// Token returns the persisted credential, or "" when absent.
	Token(ctx context.Context) (string, error)

	// Save persists the credential, replacing any previous value.
	Save(ctx context.Context, token string) error

	// Discard removes the persisted credential. Discarding an absent
	// credential is not an error.
	Discard(ctx context.Context) error
}
