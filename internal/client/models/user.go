package models

import "time"

// User is the identity of the authenticated account, fetched from the server
// whenever a session is established. It is never mutated after fetch; a new
// session produces a fresh value.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
