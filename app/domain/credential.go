package domain

import (
	"fmt"
	"time"
)

// DefaultCredentialTTL is the client-side lifetime of a backend credential.
// The backend reports its own expiry, but the token it hands out lives
// longer than it honors it, so a fixed one-hour window is enforced here
// instead.
const DefaultCredentialTTL = time.Hour

// Credential is the pair of secrets needed to talk to the backend's
// management plane: the long-lived management key from login and the
// short-lived access token derived from it.
type Credential struct {
	ManagementKey string
	AccessToken   string
	ExpiresAt     time.Time
}

// TokenResponse is the identity provider's answer to a token fetch.
// ExpiresOn is informational only and may be zero when the provider's
// expiry string could not be parsed.
type TokenResponse struct {
	AccessToken string
	ExpiresOn   time.Time
}

// NewCredential builds a credential whose expiry is now + ttl, ignoring
// whatever lifetime the backend claims
func NewCredential(managementKey, accessToken string, now time.Time, ttl time.Duration) (Credential, error) {
	if managementKey == "" {
		return Credential{}, fmt.Errorf("management key is empty")
	}
	if accessToken == "" {
		return Credential{}, fmt.Errorf("access token is empty")
	}
	if ttl <= 0 {
		ttl = DefaultCredentialTTL
	}
	return Credential{
		ManagementKey: managementKey,
		AccessToken:   accessToken,
		ExpiresAt:     now.Add(ttl),
	}, nil
}

// IsZero reports whether the credential has never been populated
func (c Credential) IsZero() bool {
	return c.AccessToken == "" && c.ManagementKey == ""
}

// Expired reports whether the credential must be refreshed before use.
// A zero credential is always expired.
func (c Credential) Expired(now time.Time) bool {
	if c.IsZero() {
		return true
	}
	return !c.ExpiresAt.After(now)
}
