package domain

import "errors"

// Sentinel errors distinguishing "nothing to do" conditions from backend
// faults. Callers match with errors.Is.
var (
	// ErrProductNotFound is returned when the configured product does not
	// exist in the backend or lacks an identifier.
	ErrProductNotFound = errors.New("product not found")

	// ErrMissingUserName is returned when a group operation is attempted
	// for a user without an internal reference.
	ErrMissingUserName = errors.New("user has no internal reference")
)
