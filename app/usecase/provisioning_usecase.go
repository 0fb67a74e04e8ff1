package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"provisioning-service/app/domain"
	"provisioning-service/app/port"
)

// ProvisioningConfig is the immutable provisioning surface for the process
// lifetime
type ProvisioningConfig struct {
	ProductName    string
	DesiredGroups  []string
	WelcomeSubject string
	WelcomeBody    string
}

// ProvisioningUsecase implements the onboarding pipeline: a strictly
// sequential state machine that short-circuits on the first failure. No
// step is retried and applied steps are never rolled back; re-invocation is
// expected to be safe because group reconciliation is idempotent and the
// subscription create-or-update absorbs duplicates.
type ProvisioningUsecase struct {
	credentials  port.CredentialSource
	directory    port.DirectoryResolver
	groups       port.GroupReconciler
	subscription port.SubscriptionUsecase
	downstream   port.DownstreamGateway
	audit        port.AuditRepository
	cfg          ProvisioningConfig
	now          func() time.Time
	logger       *slog.Logger
}

// NewProvisioningUsecase creates a new ProvisioningUsecase instance. The
// audit repository may be nil when auditing is disabled.
func NewProvisioningUsecase(
	credentials port.CredentialSource,
	directory port.DirectoryResolver,
	groups port.GroupReconciler,
	subscription port.SubscriptionUsecase,
	downstream port.DownstreamGateway,
	audit port.AuditRepository,
	cfg ProvisioningConfig,
	logger *slog.Logger,
) *ProvisioningUsecase {
	return &ProvisioningUsecase{
		credentials:  credentials,
		directory:    directory,
		groups:       groups,
		subscription: subscription,
		downstream:   downstream,
		audit:        audit,
		cfg:          cfg,
		now:          time.Now,
		logger:       logger.With("component", "provisioning_usecase"),
	}
}

// Onboard provisions access for one authenticated portal user end-to-end
func (uc *ProvisioningUsecase) Onboard(ctx context.Context, req domain.OnboardingRequest) (domain.OnboardingResult, error) {
	result := domain.OnboardingResult{
		UserID:      req.UserID,
		Email:       req.Email,
		AddedGroups: []string{},
	}

	if err := req.Validate(); err != nil {
		return result, fmt.Errorf("invalid onboarding request: %w", err)
	}

	uc.logger.Info("onboarding started", "user_id", req.UserID, "email", req.Email)

	err := uc.run(ctx, req, &result)
	uc.recordAudit(ctx, result, err)

	if err != nil {
		uc.logger.Error("onboarding failed",
			"user_id", req.UserID,
			"step", result.Step,
			"error", err)
		return result, err
	}

	uc.logger.Info("onboarding finished",
		"user_id", req.UserID,
		"subscription_id", result.SubscriptionID,
		"added_groups", result.AddedGroups)
	return result, nil
}

func (uc *ProvisioningUsecase) run(ctx context.Context, req domain.OnboardingRequest, result *domain.OnboardingResult) error {
	result.Step = domain.StepCredential
	if _, err := uc.credentials.Ensure(ctx); err != nil {
		return err
	}

	result.Step = domain.StepResolveUser
	resolved, found, err := uc.directory.Resolve(ctx, req.Email)
	if err != nil {
		return err
	}
	if found {
		// Informational only: group and subscription operations key off the
		// authenticated user id, not the directory record.
		result.ResolvedUser = &resolved
	}

	result.Step = domain.StepVerifyProduct
	if _, found, err := uc.subscription.LookupProduct(ctx, uc.cfg.ProductName); err != nil {
		return err
	} else if !found {
		return fmt.Errorf("%w: %s", domain.ErrProductNotFound, uc.cfg.ProductName)
	}

	result.Step = domain.StepGroups
	added, err := uc.groups.AddUserToGroups(ctx, req.Principal(), uc.cfg.DesiredGroups)
	if added != nil {
		result.AddedGroups = added
	}
	if err != nil {
		return err
	}

	result.Step = domain.StepSubscription
	subscription, err := uc.subscription.AddUserSubscriptionToProduct(ctx, req.UserID, uc.cfg.ProductName)
	if err != nil {
		return err
	}
	if subscription.ID == "" {
		// Nothing to provision downstream; not an error.
		uc.logger.Warn("subscription has no identifier, skipping downstream provisioning",
			"user_id", req.UserID)
		result.Completed = true
		return nil
	}
	result.SubscriptionID = subscription.ID

	result.Step = domain.StepIdentity
	syntheticID, err := uc.downstream.CreateSyntheticIdentity(ctx, req.Email)
	if err != nil {
		return err
	}
	result.SyntheticID = syntheticID

	result.Step = domain.StepServiceRecord
	if err := uc.downstream.UpsertServiceRecord(ctx, domain.ServiceRecord{
		SubscriptionID: subscription.ID,
		UserID:         req.UserID,
		Email:          req.Email,
		ProductID:      subscription.ProductID,
	}); err != nil {
		return err
	}

	result.Step = domain.StepMessage
	if err := uc.downstream.SendMessage(ctx, syntheticID, uc.cfg.WelcomeSubject, uc.cfg.WelcomeBody); err != nil {
		return err
	}

	result.Step = domain.StepDone
	result.Completed = true
	return nil
}

// recordAudit persists the attempt outcome. Audit failures are logged and
// never fail the onboarding itself.
func (uc *ProvisioningUsecase) recordAudit(ctx context.Context, result domain.OnboardingResult, attemptErr error) {
	if uc.audit == nil {
		return
	}
	audit := domain.NewOnboardingAudit(result, attemptErr, uc.now())
	if err := uc.audit.Record(ctx, audit); err != nil {
		uc.logger.Warn("failed to record onboarding audit",
			"user_id", result.UserID,
			"error", err)
	}
}
