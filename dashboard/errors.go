package dashboard

import "errors"

// Common errors returned by the dashboard client.
var (
	// ErrInvalidConfig indicates the client could not be constructed.
	ErrInvalidConfig = errors.New("invalid dashboard client configuration")

	// ErrInvalidParams indicates an argument was rejected before any request was made.
	ErrInvalidParams = errors.New("invalid dashboard request parameters")
)
