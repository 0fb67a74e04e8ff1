package apim

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a 404 from the backend so gateways can map it to an
// absent result instead of a fault
var ErrNotFound = errors.New("backend resource not found")

// BackendError is a non-success management API response
type BackendError struct {
	StatusCode int
	Method     string
	Path       string
	Body       string
}

// Error implements the error interface
func (e *BackendError) Error() string {
	return fmt.Sprintf("backend %s %s returned status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// IsNotFound reports whether err represents an absent backend resource
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
