package sessions

import "errors"

var (
	ErrNotFound     = errors.New("session not found")
	ErrInvalidInput = errors.New("invalid input")

	// ErrSessionReplaced means a newer upload replaced the session a result was computed for.
	ErrSessionReplaced = errors.New("session replaced")
)
