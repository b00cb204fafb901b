package models

import "errors"

// Domain errors surfaced to callers. Repositories translate driver errors
// into these; handlers map them onto HTTP status codes with errors.Is.
var (
	// ErrNotFound means a referenced profile, post or notification is absent.
	ErrNotFound = errors.New("record not found")

	// ErrSelfRelation means a friend operation was attempted with a == b.
	ErrSelfRelation = errors.New("cannot friend yourself")

	// ErrAlreadyFriends is informational: the friend edge already exists in
	// both directions.
	ErrAlreadyFriends = errors.New("users are already friends")

	// ErrValidation means a required field is missing or malformed.
	ErrValidation = errors.New("validation failed")

	// ErrTransientStorage means a storage call timed out or the connection
	// dropped; the operation is safe to retry with backoff.
	ErrTransientStorage = errors.New("transient storage error")
)
