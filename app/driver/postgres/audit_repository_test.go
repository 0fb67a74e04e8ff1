package postgres

import (
	"context"
	"testing"
	"time"

	"provisioning-service/app/domain"
	"provisioning-service/app/utils/logger"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAuditRepository(t *testing.T) (*AuditRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	repo := NewAuditRepository(mockDB, testLogger).(*AuditRepository)

	return repo, mockDB
}

func createTestAudit(t *testing.T) *domain.OnboardingAudit {
	t.Helper()

	return domain.NewOnboardingAudit(domain.OnboardingResult{
		UserID:         "u1",
		Email:          "alice@example.com",
		SubscriptionID: "sub-1",
		AddedGroups:    []string{"readers", "writers"},
		SyntheticID:    "identity-1",
		Step:           domain.StepDone,
		Completed:      true,
	}, nil, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
}

func TestAuditRepository_Record(t *testing.T) {
	tests := []struct {
		name    string
		audit   *domain.OnboardingAudit
		setupDB func(pgxmock.PgxPoolIface, *domain.OnboardingAudit)
		wantErr bool
	}{
		{
			name:  "successful insert",
			audit: createTestAudit(t),
			setupDB: func(db pgxmock.PgxPoolIface, audit *domain.OnboardingAudit) {
				db.ExpectExec("INSERT INTO onboarding_audits").
					WithArgs(
						audit.ID,
						audit.UserID,
						audit.Email,
						pgxmock.AnyArg(),
						audit.AddedGroups,
						pgxmock.AnyArg(),
						string(audit.Step),
						audit.Succeeded,
						pgxmock.AnyArg(),
						audit.CreatedAt,
					).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "failed attempt row stores the error",
			audit: domain.NewOnboardingAudit(domain.OnboardingResult{
				UserID:      "u1",
				Email:       "alice@example.com",
				AddedGroups: []string{},
				Step:        domain.StepGroups,
			}, assert.AnError, time.Now()),
			setupDB: func(db pgxmock.PgxPoolIface, audit *domain.OnboardingAudit) {
				db.ExpectExec("INSERT INTO onboarding_audits").
					WithArgs(
						audit.ID,
						audit.UserID,
						audit.Email,
						pgxmock.AnyArg(),
						audit.AddedGroups,
						pgxmock.AnyArg(),
						string(domain.StepGroups),
						false,
						pgxmock.AnyArg(),
						pgxmock.AnyArg(),
					).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name:  "database error",
			audit: createTestAudit(t),
			setupDB: func(db pgxmock.PgxPoolIface, audit *domain.OnboardingAudit) {
				db.ExpectExec("INSERT INTO onboarding_audits").
					WithArgs(
						audit.ID,
						audit.UserID,
						audit.Email,
						pgxmock.AnyArg(),
						audit.AddedGroups,
						pgxmock.AnyArg(),
						string(audit.Step),
						audit.Succeeded,
						pgxmock.AnyArg(),
						audit.CreatedAt,
					).
					WillReturnError(assert.AnError)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestAuditRepository(t)
			defer mockDB.Close()

			tt.setupDB(mockDB, tt.audit)

			err := repo.Record(context.Background(), tt.audit)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestAuditRepository_Record_FillsZeroCreatedAt(t *testing.T) {
	repo, mockDB := createTestAuditRepository(t)
	defer mockDB.Close()

	audit := &domain.OnboardingAudit{
		ID:          uuid.New(),
		UserID:      "u1",
		Email:       "alice@example.com",
		AddedGroups: []string{},
		Step:        domain.StepCredential,
	}

	mockDB.ExpectExec("INSERT INTO onboarding_audits").
		WithArgs(
			audit.ID,
			audit.UserID,
			audit.Email,
			pgxmock.AnyArg(),
			audit.AddedGroups,
			pgxmock.AnyArg(),
			string(audit.Step),
			false,
			pgxmock.AnyArg(),
			pgxmock.AnyArg(),
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Record(context.Background(), audit)
	assert.NoError(t, err)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}
