package session

import "github.com/google/uuid"

// NewID mints a fresh session identifier for clients that did not supply one.
// UUIDv4 strings are URL safe and collision free for this purpose.
func NewID() string {
	return uuid.NewString()
}
