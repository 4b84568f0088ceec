package api

import (
	"errors"
	"fmt"
)

// ErrAuthenticationRequired is returned when the server rejects the bearer
// credential (HTTP 401). The shared request path has already discarded the
// persisted credential by the time callers see this error; the only recovery
// is a fresh login. Match with errors.Is.
var ErrAuthenticationRequired = errors.New("authentication required")

// ValidationError reports input rejected locally, before any network call.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NewValidationError builds a ValidationError with the given display message.
func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

// IsValidation reports whether err is a locally detected validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// RemoteError is a non-success response from the server other than a
// credential rejection. Message is the server-supplied reason when the body
// carried one, otherwise a generic per-operation message.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string { return e.Message }

// NetworkError means the request could not complete at the transport level.
// It is displayed like a RemoteError but kept distinguishable for future
// retry policies.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("network unavailable: %v", e.Err) }

func (e *NetworkError) Unwrap() error { return e.Err }
