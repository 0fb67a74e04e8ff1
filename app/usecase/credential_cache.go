package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"provisioning-service/app/domain"
	"provisioning-service/app/port"
)

// CredentialCache implements port.CredentialSource. It holds the current
// backend credential process-wide and refreshes it with a fresh login +
// token fetch once the fixed client-side TTL has elapsed. The backend's own
// expiry is not trusted.
type CredentialCache struct {
	identityGateway port.IdentityGateway
	ttl             time.Duration
	now             func() time.Time
	logger          *slog.Logger

	mu      sync.Mutex
	current domain.Credential
}

// NewCredentialCache creates a credential cache. The clock is injectable so
// tests can control expiry without waiting.
func NewCredentialCache(identityGateway port.IdentityGateway, ttl time.Duration, now func() time.Time, logger *slog.Logger) *CredentialCache {
	if ttl <= 0 {
		ttl = domain.DefaultCredentialTTL
	}
	if now == nil {
		now = time.Now
	}
	return &CredentialCache{
		identityGateway: identityGateway,
		ttl:             ttl,
		now:             now,
		logger:          logger.With("component", "credential_cache"),
	}
}

// Ensure returns the cached credential unchanged while it is still valid.
// An absent or expired credential triggers exactly one login + token fetch;
// failures propagate to the caller without retry.
func (c *CredentialCache) Ensure(ctx context.Context) (domain.Credential, error) {
	c.mu.Lock()
	current := c.current
	c.mu.Unlock()

	if !current.Expired(c.now()) {
		return current, nil
	}

	// The lock is not held across the remote calls: concurrent callers over
	// an expired credential may each log in, which the backend tolerates.
	managementKey, err := c.identityGateway.Login(ctx)
	if err != nil {
		return domain.Credential{}, fmt.Errorf("login failed: %w", err)
	}

	token, err := c.identityGateway.FetchToken(ctx, managementKey)
	if err != nil {
		return domain.Credential{}, fmt.Errorf("token fetch failed: %w", err)
	}

	cred, err := domain.NewCredential(managementKey, token.AccessToken, c.now(), c.ttl)
	if err != nil {
		return domain.Credential{}, fmt.Errorf("invalid token response: %w", err)
	}

	// Replaced wholesale; last write wins under concurrent refresh.
	c.mu.Lock()
	c.current = cred
	c.mu.Unlock()

	c.logger.Info("credential refreshed", "expires_at", cred.ExpiresAt)
	return cred, nil
}
