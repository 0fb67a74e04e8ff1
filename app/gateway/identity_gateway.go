package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"provisioning-service/app/domain"
)

// IdentityClient is the driver-side contract for the identity provider
type IdentityClient interface {
	Login(ctx context.Context) (string, error)
	FetchToken(ctx context.Context, managementKey string) (string, time.Time, error)
}

// IdentityGateway implements port.IdentityGateway over the identity driver
type IdentityGateway struct {
	client IdentityClient
	logger *slog.Logger
}

// NewIdentityGateway creates a new IdentityGateway instance
func NewIdentityGateway(client IdentityClient, logger *slog.Logger) *IdentityGateway {
	return &IdentityGateway{
		client: client,
		logger: logger.With("component", "identity_gateway"),
	}
}

// Login obtains the long-lived management key
func (g *IdentityGateway) Login(ctx context.Context) (string, error) {
	key, err := g.client.Login(ctx)
	if err != nil {
		g.logger.Error("login failed", "error", err)
		return "", fmt.Errorf("identity provider login: %w", err)
	}
	g.logger.Info("login succeeded")
	return key, nil
}

// FetchToken exchanges the management key for an access token
func (g *IdentityGateway) FetchToken(ctx context.Context, managementKey string) (domain.TokenResponse, error) {
	token, expiresOn, err := g.client.FetchToken(ctx, managementKey)
	if err != nil {
		g.logger.Error("token fetch failed", "error", err)
		return domain.TokenResponse{}, fmt.Errorf("identity provider token fetch: %w", err)
	}
	return domain.TokenResponse{
		AccessToken: token,
		ExpiresOn:   expiresOn,
	}, nil
}
