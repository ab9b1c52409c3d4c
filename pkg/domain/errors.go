package domain

import "errors"

// Common domain errors. Every error returned by the services wraps exactly one of these,
// so callers can classify failures with errors.Is.
var (
	// ErrNotFound is returned when a requested resource is not found
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists is returned when trying to create a resource that already exists
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrInvalidInput is returned when request data is malformed or out of range
	ErrInvalidInput = errors.New("invalid input")
	// ErrInsufficientFunds is returned when a debit exceeds the available balance
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrUnauthorized is returned when credential verification fails
	ErrUnauthorized = errors.New("unauthorized")
	// ErrStore is returned when the persistent store fails for reasons other than the above
	ErrStore = errors.New("store error")
)
