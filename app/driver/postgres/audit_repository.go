package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"provisioning-service/app/domain"
	"provisioning-service/app/port"
)

// AuditRepository implements port.AuditRepository for PostgreSQL. One row
// per onboarding attempt; rows are append-only.
type AuditRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewAuditRepository creates a new PostgreSQL audit repository
func NewAuditRepository(db DatabaseIface, logger *slog.Logger) port.AuditRepository {
	return &AuditRepository{
		db:     db,
		logger: logger.With("component", "audit_repository"),
	}
}

// Record stores an onboarding attempt
func (r *AuditRepository) Record(ctx context.Context, audit *domain.OnboardingAudit) error {
	query := `
		INSERT INTO onboarding_audits (
			id, user_id, email, subscription_id, added_groups,
			synthetic_id, step, succeeded, error, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)`

	createdAt := audit.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := r.db.Exec(ctx, query,
		audit.ID,
		audit.UserID,
		audit.Email,
		nullable(audit.SubscriptionID),
		audit.AddedGroups,
		nullable(audit.SyntheticID),
		string(audit.Step),
		audit.Succeeded,
		nullable(audit.Error),
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert onboarding audit: %w", err)
	}

	r.logger.Debug("onboarding audit recorded",
		"audit_id", audit.ID,
		"user_id", audit.UserID,
		"succeeded", audit.Succeeded)
	return nil
}

// nullable maps empty strings to NULL columns
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
