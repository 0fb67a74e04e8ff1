package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"provisioning-service/app/domain"
	"provisioning-service/app/driver/apim"
)

// DirectoryClient is the driver-side contract for directory and group
// operations
type DirectoryClient interface {
	FindUsersByEmail(ctx context.Context, email string) ([]apim.UserResource, error)
	ListGroupsForUser(ctx context.Context, userRef string) ([]apim.GroupResource, error)
	AddUserToGroup(ctx context.Context, groupName, userRef string) error
}

// DirectoryGateway implements port.DirectoryGateway. It acts as an
// anti-corruption layer between the domain and the backend's wire
// representation.
type DirectoryGateway struct {
	client DirectoryClient
	logger *slog.Logger
}

// NewDirectoryGateway creates a new DirectoryGateway instance
func NewDirectoryGateway(client DirectoryClient, logger *slog.Logger) *DirectoryGateway {
	return &DirectoryGateway{
		client: client,
		logger: logger.With("component", "directory_gateway"),
	}
}

// FindUsersByEmail queries the directory with an exact email filter
func (g *DirectoryGateway) FindUsersByEmail(ctx context.Context, email string) ([]domain.DirectoryUser, error) {
	resources, err := g.client.FindUsersByEmail(ctx, email)
	if err != nil {
		g.logger.Error("directory query failed", "email", email, "error", err)
		return nil, fmt.Errorf("directory query for %s: %w", email, err)
	}

	users := make([]domain.DirectoryUser, 0, len(resources))
	for _, res := range resources {
		users = append(users, toDirectoryUser(res))
	}
	return users, nil
}

// ListGroupsForUser returns the names of the user's current groups
func (g *DirectoryGateway) ListGroupsForUser(ctx context.Context, userRef string) ([]string, error) {
	resources, err := g.client.ListGroupsForUser(ctx, userRef)
	if err != nil {
		g.logger.Error("group listing failed", "user", userRef, "error", err)
		return nil, fmt.Errorf("group listing for %s: %w", userRef, err)
	}

	names := make([]string, 0, len(resources))
	for _, res := range resources {
		names = append(names, res.Name)
	}
	return names, nil
}

// AddUserToGroup adds the user to a single group
func (g *DirectoryGateway) AddUserToGroup(ctx context.Context, groupName, userRef string) error {
	if err := g.client.AddUserToGroup(ctx, groupName, userRef); err != nil {
		g.logger.Error("group assignment failed",
			"group", groupName,
			"user", userRef,
			"error", err)
		return fmt.Errorf("group assignment %s -> %s: %w", userRef, groupName, err)
	}
	return nil
}

func toDirectoryUser(res apim.UserResource) domain.DirectoryUser {
	return domain.DirectoryUser{
		ID:         res.ID,
		Name:       res.Name,
		Email:      res.Properties.Email,
		FirstName:  res.Properties.FirstName,
		LastName:   res.Properties.LastName,
		Attributes: res.Properties.Extra,
	}
}
