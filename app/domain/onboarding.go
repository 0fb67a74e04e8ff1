package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OnboardingStep identifies where an onboarding attempt is in the pipeline.
// Steps run strictly in declaration order and short-circuit on failure.
type OnboardingStep string

const (
	StepCredential    OnboardingStep = "credential"
	StepResolveUser   OnboardingStep = "resolve_user"
	StepVerifyProduct OnboardingStep = "verify_product"
	StepGroups        OnboardingStep = "groups"
	StepSubscription  OnboardingStep = "subscription"
	StepIdentity      OnboardingStep = "synthetic_identity"
	StepServiceRecord OnboardingStep = "service_record"
	StepMessage       OnboardingStep = "welcome_message"
	StepDone          OnboardingStep = "done"
)

// OnboardingRequest carries the already-authenticated portal principal.
// UserID is the backend's user reference extracted from the verified token;
// bearer verification itself happens upstream of this service.
type OnboardingRequest struct {
	UserID    string `json:"user_id" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// Validate checks the request invariants
func (r OnboardingRequest) Validate() error {
	if r.UserID == "" {
		return fmt.Errorf("user id is required")
	}
	return ValidateEmail(r.Email)
}

// Principal returns the request's identity as a DirectoryUser suitable for
// group operations, which key off the authenticated user id directly rather
// than the directory lookup result.
func (r OnboardingRequest) Principal() DirectoryUser {
	return DirectoryUser{
		ID:        r.UserID,
		Name:      r.UserID,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}

// OnboardingResult reports what a single onboarding attempt applied.
// Already-applied changes are never rolled back; a failed attempt surfaces
// the failing step alongside whatever was provisioned before it.
type OnboardingResult struct {
	UserID         string         `json:"user_id"`
	Email          string         `json:"email"`
	ResolvedUser   *DirectoryUser `json:"resolved_user,omitempty"`
	AddedGroups    []string       `json:"added_groups"`
	SubscriptionID string         `json:"subscription_id,omitempty"`
	SyntheticID    string         `json:"synthetic_id,omitempty"`
	Step           OnboardingStep `json:"step"`
	Completed      bool           `json:"completed"`
}

// ServiceRecord is the downstream registry entry keyed by the subscription
// identifier
type ServiceRecord struct {
	SubscriptionID string `json:"subscription_id"`
	UserID         string `json:"user_id"`
	Email          string `json:"email"`
	ProductID      string `json:"product_id"`
}

// OnboardingAudit is one persisted row per onboarding attempt
type OnboardingAudit struct {
	ID             uuid.UUID      `json:"id"`
	UserID         string         `json:"user_id"`
	Email          string         `json:"email"`
	SubscriptionID string         `json:"subscription_id,omitempty"`
	AddedGroups    []string       `json:"added_groups"`
	SyntheticID    string         `json:"synthetic_id,omitempty"`
	Step           OnboardingStep `json:"step"`
	Succeeded      bool           `json:"succeeded"`
	Error          string         `json:"error,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

// NewOnboardingAudit builds an audit row from an attempt's outcome
func NewOnboardingAudit(result OnboardingResult, attemptErr error, now time.Time) *OnboardingAudit {
	audit := &OnboardingAudit{
		ID:             uuid.New(),
		UserID:         result.UserID,
		Email:          result.Email,
		SubscriptionID: result.SubscriptionID,
		AddedGroups:    result.AddedGroups,
		SyntheticID:    result.SyntheticID,
		Step:           result.Step,
		Succeeded:      attemptErr == nil && result.Completed,
		CreatedAt:      now,
	}
	if attemptErr != nil {
		audit.Error = attemptErr.Error()
	}
	return audit
}
