package util

import "errors"

var (
	// ErrSessionNotFound carries the exact message surfaced in 404 bodies.
	ErrSessionNotFound = errors.New("Session not found")
	ErrInvalidAnswer   = errors.New("invalid answer")
)
