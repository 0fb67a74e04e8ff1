package port

//go:generate mockgen -source=directory_port.go -destination=../mocks/mock_directory_port.go

import (
	"context"

	"provisioning-service/app/domain"
)

// DirectoryGateway exposes the backend's user directory and group
// membership operations
type DirectoryGateway interface {
	// FindUsersByEmail queries the directory with an exact email-equality
	// filter
	FindUsersByEmail(ctx context.Context, email string) ([]domain.DirectoryUser, error)

	// ListGroupsForUser returns the names of the groups the user currently
	// belongs to
	ListGroupsForUser(ctx context.Context, userRef string) ([]string, error)

	// AddUserToGroup adds the user to a single group
	AddUserToGroup(ctx context.Context, groupName, userRef string) error
}

// DirectoryResolver resolves directory users by email with caching.
// The boolean is false when no matching user exists.
type DirectoryResolver interface {
	Resolve(ctx context.Context, email string) (domain.DirectoryUser, bool, error)

	// Clear drops every cached entry
	Clear()
}

// GroupReconciler applies a desired group set to a user, adding missing
// memberships only
type GroupReconciler interface {
	AddUserToGroups(ctx context.Context, user domain.DirectoryUser, desired []string) ([]string, error)
}
