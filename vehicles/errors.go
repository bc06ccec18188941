package vehicles

import "errors"

// Common errors returned by the vehicles client.
var (
	// ErrInvalidConfig indicates the client could not be constructed.
	ErrInvalidConfig = errors.New("invalid vehicles client configuration")

	// ErrInvalidParams indicates an argument was rejected before any request was made.
	ErrInvalidParams = errors.New("invalid vehicles request parameters")
)
