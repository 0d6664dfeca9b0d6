package uid

import "github.com/google/uuid"

// NewMatchID returns a time-ordered identifier for a match, so IDs sort in
// the order the matches were started.
func NewMatchID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// NewConnectionID names one browser socket in logs.
func NewConnectionID() string {
	return uuid.NewString()
}
