package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"provisioning-service/app/domain"
)

// IdentityProvisioner is the driver-side contract for synthetic identity
// creation
type IdentityProvisioner interface {
	CreateSyntheticIdentity(ctx context.Context, email string) (string, error)
}

// PortalClient is the driver-side contract for the service registry and
// messaging endpoints
type PortalClient interface {
	UpsertServiceRecord(ctx context.Context, record domain.ServiceRecord) error
	SendMessage(ctx context.Context, recipientID, subject, content string) error
}

// DownstreamGateway implements port.DownstreamGateway, fronting the
// notification-side collaborators. None of these calls is idempotent on
// retry; duplicate identities or messages are possible if a caller re-runs
// a partially failed onboarding.
type DownstreamGateway struct {
	identities IdentityProvisioner
	portal     PortalClient
	logger     *slog.Logger
}

// NewDownstreamGateway creates a new DownstreamGateway instance
func NewDownstreamGateway(identities IdentityProvisioner, portal PortalClient, logger *slog.Logger) *DownstreamGateway {
	return &DownstreamGateway{
		identities: identities,
		portal:     portal,
		logger:     logger.With("component", "downstream_gateway"),
	}
}

// CreateSyntheticIdentity registers a correlation identity for the email
func (g *DownstreamGateway) CreateSyntheticIdentity(ctx context.Context, email string) (string, error) {
	id, err := g.identities.CreateSyntheticIdentity(ctx, email)
	if err != nil {
		return "", fmt.Errorf("synthetic identity provisioning: %w", err)
	}
	g.logger.Info("synthetic identity provisioned", "synthetic_id", id)
	return id, nil
}

// UpsertServiceRecord registers the service record keyed by subscription id
func (g *DownstreamGateway) UpsertServiceRecord(ctx context.Context, record domain.ServiceRecord) error {
	if record.SubscriptionID == "" {
		return fmt.Errorf("service record requires a subscription id")
	}
	if err := g.portal.UpsertServiceRecord(ctx, record); err != nil {
		return fmt.Errorf("service record registration: %w", err)
	}
	return nil
}

// SendMessage delivers a message to the synthetic identity
func (g *DownstreamGateway) SendMessage(ctx context.Context, recipientID, subject, content string) error {
	if err := g.portal.SendMessage(ctx, recipientID, subject, content); err != nil {
		return fmt.Errorf("message delivery: %w", err)
	}
	return nil
}
