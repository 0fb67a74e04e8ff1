package domain

import (
	"fmt"
	"net/mail"
)

// DirectoryUser represents a user record in the API-management backend's
// user directory. ID is the backend's full resource reference, Name the
// short internal reference used when addressing the user in group and
// subscription operations.
type DirectoryUser struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	FirstName  string            `json:"first_name,omitempty"`
	LastName   string            `json:"last_name,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// Resolved reports whether the record carries at least one usable reference.
// Backend search results missing both are treated as not found.
func (u DirectoryUser) Resolved() bool {
	return u.ID != "" || u.Name != ""
}

// Clone returns an independent copy so cached entries are never shared
// for mutation.
func (u DirectoryUser) Clone() DirectoryUser {
	out := u
	if u.Attributes != nil {
		out.Attributes = make(map[string]string, len(u.Attributes))
		for k, v := range u.Attributes {
			out.Attributes[k] = v
		}
	}
	return out
}

// ValidateEmail checks that an email address is usable as a directory
// lookup key
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email format: %w", err)
	}
	return nil
}
