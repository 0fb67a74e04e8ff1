package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"provisioning-service/app/domain"
	"provisioning-service/app/port"
)

// GroupReconcilerUsecase implements port.GroupReconciler. Reconciliation
// only ever adds memberships; the backend remains the source of truth for
// the current set.
type GroupReconcilerUsecase struct {
	directoryGateway port.DirectoryGateway
	logger           *slog.Logger
}

// NewGroupReconciler creates a new group reconciler
func NewGroupReconciler(directoryGateway port.DirectoryGateway, logger *slog.Logger) *GroupReconcilerUsecase {
	return &GroupReconcilerUsecase{
		directoryGateway: directoryGateway,
		logger:           logger.With("component", "group_reconciler"),
	}
}

// AddUserToGroups adds the user to every desired group it is not already a
// member of and returns the names actually added, in the order applied.
// An already-satisfied desired set issues zero create calls, so repeated
// invocations after the first success are no-ops.
func (r *GroupReconcilerUsecase) AddUserToGroups(ctx context.Context, user domain.DirectoryUser, desired []string) ([]string, error) {
	if user.Name == "" {
		return nil, domain.ErrMissingUserName
	}

	current, err := r.directoryGateway.ListGroupsForUser(ctx, user.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups for user %s: %w", user.Name, err)
	}

	member := make(map[string]struct{}, len(current))
	for _, g := range current {
		member[g] = struct{}{}
	}

	missing := make([]string, 0, len(desired))
	seen := make(map[string]struct{}, len(desired))
	for _, g := range desired {
		if _, dup := seen[g]; dup {
			continue
		}
		seen[g] = struct{}{}
		if _, ok := member[g]; !ok {
			missing = append(missing, g)
		}
	}

	if len(missing) == 0 {
		return []string{}, nil
	}

	// Strictly one call at a time: concurrent group assignment has shown
	// consistency issues in the backend.
	added := make([]string, 0, len(missing))
	for _, g := range missing {
		if err := r.directoryGateway.AddUserToGroup(ctx, g, user.Name); err != nil {
			return added, fmt.Errorf("failed to add user %s to group %s: %w", user.Name, g, err)
		}
		added = append(added, g)
		r.logger.Info("group membership added", "user", user.Name, "group", g)
	}

	return added, nil
}
