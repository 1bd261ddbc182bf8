package shortcut

import "errors"

var (
	// ErrNoKeys is returned when a combination is registered with an
	// empty key set.
	ErrNoKeys = errors.New("combination needs at least one key")

	// ErrTimeout is returned when a succession is registered with a
	// zero or negative timeout.
	ErrTimeout = errors.New("succession timeout must be positive")

	// ErrNilAction is returned when a shortcut is registered without an
	// action.
	ErrNilAction = errors.New("shortcut action must not be nil")

	// ErrAlreadyStarted is returned by Start on an engine that is
	// already listening (or was stopped; engines are single-use).
	ErrAlreadyStarted = errors.New("engine already started")
)
