package domain

import "errors"

var (
	// ErrNotFound indicates that a referenced user, entry, weight record or
	// favorite does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict indicates that a write would violate a uniqueness rule,
	// such as registering a user name that is already taken.
	ErrConflict = errors.New("conflict")
	// ErrInvalid indicates malformed caller input.
	ErrInvalid = errors.New("invalid input")
)
