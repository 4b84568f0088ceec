// Package api contains the wire-level building blocks of the Holocron client.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) to talk
//     to the notes backend: Register/Login/CurrentUser, note CRUD and
//     search, and checkout-session creation.
//  2. A concrete HTTP implementation (see HTTPClient) that injects the
//     bearer credential from a CredentialSource on every request, classifies
//     responses, and on a credential rejection (HTTP 401) discards the
//     persisted credential and notifies the session layer through a callback.
//     Rejected operations fail with ErrAuthenticationRequired and are never
//     retried by this layer.
//
// # Error Handling
//
// Failures map to a small taxonomy callers can match with errors.Is/As:
// ErrAuthenticationRequired (sentinel), *ValidationError (local, pre-network),
// *RemoteError (non-success response, message sourced from the server when
// available), and *NetworkError (transport failure).
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept a
// context.Context and honor cancellation/timeouts.
package api
