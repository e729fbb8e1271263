package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Session errors
	ErrMsgSessionStopped = "session is stopped"

	// Ingest errors
	ErrMsgInvalidEntityKind = "invalid entity kind"
	ErrMsgUnknownMessage    = "unknown session message"

	// History errors
	ErrMsgFightNotFound = "fight not found"

	// Settings errors
	ErrMsgInvalidSettings = "invalid tracker settings"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrSessionStopped = errors.New(ErrMsgSessionStopped)

	ErrInvalidEntityKind = errors.New(ErrMsgInvalidEntityKind)
	ErrUnknownMessage    = errors.New(ErrMsgUnknownMessage)

	ErrFightNotFound = errors.New(ErrMsgFightNotFound)

	ErrInvalidSettings = errors.New(ErrMsgInvalidSettings)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
