package core

import "errors"

// Sentinel errors returned by the core services. Callers branch with
// errors.Is; adapters map them onto exit codes / HTTP statuses.
var (
	// ErrNotFound means a referenced location or item does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput means the caller supplied an unusable value: a
	// non-positive quantity, an empty item description, or a transfer
	// whose source and destination are the same location.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInsufficientStock is returned only when the ledger was built
	// with AllowNegativeStock disabled and an adjustment would drive a
	// balance below zero.
	ErrInsufficientStock = errors.New("insufficient stock")
)
