package port

//go:generate mockgen -source=identity_port.go -destination=../mocks/mock_identity_port.go

import (
	"context"

	"provisioning-service/app/domain"
)

// IdentityGateway performs the login/token exchange against the identity
// provider fronting the API-management backend
type IdentityGateway interface {
	// Login obtains the long-lived management key
	Login(ctx context.Context) (string, error)

	// FetchToken exchanges the management key for a short-lived access token
	FetchToken(ctx context.Context, managementKey string) (domain.TokenResponse, error)
}

// CredentialSource yields a credential that is valid at call time,
// refreshing it transparently when the cached one has expired
type CredentialSource interface {
	Ensure(ctx context.Context) (domain.Credential, error)
}
