// Package models contains the in-memory data model used by the Holocron
// client: notes and the authenticated user. The JSON tags describe the wire
// representation of the remote API.
package models

import (
	"strings"
	"time"
)

// Note is a user-owned text document. The ID is assigned by the server; a
// Note with an empty ID has not been created remotely yet. Title and content
// are independently optional, but a note with both empty is invalid.
// UpdatedAt is authoritative from the server and is the sole ordering key
// for display.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsEmpty reports whether both title and content are empty after trimming
// whitespace. Empty notes must never reach the server.
func (n Note) IsEmpty() bool {
	return strings.TrimSpace(n.Title) == "" && strings.TrimSpace(n.Content) == ""
}

// DisplayTitle returns the title, or a placeholder for untitled notes.
func (n Note) DisplayTitle() string {
	if strings.TrimSpace(n.Title) == "" {
		return "Untitled"
	}
	return n.Title
}
