package usecase

import "errors"

// Errors returned by the services. Transports map them to status codes.
var (
	// ErrInvalidInput is a malformed filter or parameter.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is a player missing from the season roster.
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidDataset wraps a load that failed on bad sheet or table content.
	ErrInvalidDataset = errors.New("invalid dataset")
	// ErrDependencyUnavailable wraps any other data source failure.
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
