package util

import "github.com/google/uuid"

// NewID returns a random identifier for conversations and task runs.
func NewID() string {
	return uuid.NewString()
}
