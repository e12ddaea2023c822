package domain

import "errors"

var (
	// ErrNotFound: the requested id has no valid record in the loaded set.
	ErrNotFound = errors.New("not found")

	// ErrValidation: caller input or a state transition broke a business rule.
	ErrValidation = errors.New("validation failed")

	// ErrPersistence: an I/O failure a caller chose to surface. The store
	// itself degrades to diagnostics and never returns this kind.
	ErrPersistence = errors.New("persistence failure")
)
