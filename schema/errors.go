package schema

import "fmt"

// UpstreamError is reported when the service answers with isSuccess=false
type UpstreamError struct {
	Message string
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return "upstream reported failure"
	}
	return fmt.Sprintf("upstream reported failure: %s", e.Message)
}

// ValidationError describes a field that violates a documented invariant
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// APIError is returned when the service answers with a non-2xx status
type APIError struct {
	StatusCode int
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("API request failed with status %d", e.StatusCode)
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsServerError checks if the service failed rather than rejecting the request
func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500
}
