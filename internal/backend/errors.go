package backend

import "errors"

var (
	// ErrNotFound is returned when a library item does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is returned when the backend rejects the credentials.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUnsupported is returned by adapters for operations their product
	// does not offer.
	ErrUnsupported = errors.New("operation not supported by backend")
)
