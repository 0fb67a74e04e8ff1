package port

//go:generate mockgen -source=provisioning_port.go -destination=../mocks/mock_provisioning_port.go

import (
	"context"

	"provisioning-service/app/domain"
)

// DownstreamGateway groups the notification-side collaborators: synthetic
// identity provisioning, the service-record registry and welcome messaging.
// None of these calls is guaranteed idempotent on retry.
type DownstreamGateway interface {
	// CreateSyntheticIdentity registers a correlation identity for the email
	// and returns its identifier
	CreateSyntheticIdentity(ctx context.Context, email string) (string, error)

	// UpsertServiceRecord registers the service record keyed by the
	// subscription identifier
	UpsertServiceRecord(ctx context.Context, record domain.ServiceRecord) error

	// SendMessage delivers a message to the synthetic identity
	SendMessage(ctx context.Context, recipientID, subject, content string) error
}

// AuditRepository persists onboarding attempt records
type AuditRepository interface {
	Record(ctx context.Context, audit *domain.OnboardingAudit) error
}

// ProvisioningUsecase runs the end-to-end onboarding pipeline for one
// authenticated user
type ProvisioningUsecase interface {
	Onboard(ctx context.Context, req domain.OnboardingRequest) (domain.OnboardingResult, error)
}
