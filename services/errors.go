package services

import "errors"

// Error taxonomy surfaced to handlers. Every rejection or cancellation also
// persists a human-readable reason on the reservation itself.
var (
	// ErrValidation covers malformed input: empty request text, inverted or
	// entirely-past time windows. Never retried automatically.
	ErrValidation = errors.New("validation error")

	// ErrServerUnavailable means the hinted server is missing or inactive,
	// or no active server exists at all.
	ErrServerUnavailable = errors.New("server unavailable")

	// ErrInvalidState means a transition was attempted from a state that
	// does not permit it. The client view is stale; refetch.
	ErrInvalidState = errors.New("invalid reservation state")

	// ErrConcurrencyConflict surfaces only after the internal retry against
	// fresh state has failed as well.
	ErrConcurrencyConflict = errors.New("concurrent reservation conflict")

	ErrNotFound = errors.New("not found")

	ErrUsernameTaken       = errors.New("username already taken")
	ErrPasswordHashFailure = errors.New("failed to hash password")
	ErrInvalidCredentials  = errors.New("invalid username or password")
)
