package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"provisioning-service/app/domain"
	"provisioning-service/app/port"
)

// SubscriptionUsecase implements port.SubscriptionUsecase
type SubscriptionUsecase struct {
	subscriptionGateway port.SubscriptionGateway
	logger              *slog.Logger
}

// NewSubscriptionUsecase creates a new SubscriptionUsecase instance
func NewSubscriptionUsecase(subscriptionGateway port.SubscriptionGateway, logger *slog.Logger) *SubscriptionUsecase {
	return &SubscriptionUsecase{
		subscriptionGateway: subscriptionGateway,
		logger:              logger.With("component", "subscription_usecase"),
	}
}

// LookupProduct resolves the named product in the backend
func (uc *SubscriptionUsecase) LookupProduct(ctx context.Context, productName string) (domain.Product, bool, error) {
	product, found, err := uc.subscriptionGateway.GetProduct(ctx, productName)
	if err != nil {
		return domain.Product{}, false, fmt.Errorf("failed to look up product %s: %w", productName, err)
	}
	if !found || product.ID == "" {
		return domain.Product{}, false, nil
	}
	return product, true, nil
}

// AddUserSubscriptionToProduct provisions an active subscription for the
// user against the named product. The create-or-update is deliberately
// unconditional under a freshly generated identifier: a previously canceled
// subscription can be reactivated this way, and repeated onboarding may
// create additional subscriptions rather than reuse an active one.
func (uc *SubscriptionUsecase) AddUserSubscriptionToProduct(ctx context.Context, userID, productName string) (domain.Subscription, error) {
	product, found, err := uc.LookupProduct(ctx, productName)
	if err != nil {
		return domain.Subscription{}, err
	}
	if !found {
		return domain.Subscription{}, fmt.Errorf("%w: %s", domain.ErrProductNotFound, productName)
	}

	subscriptionID, err := domain.NewSubscriptionID()
	if err != nil {
		return domain.Subscription{}, err
	}

	subscription, err := uc.subscriptionGateway.CreateOrUpdateSubscription(ctx, subscriptionID, domain.SubscriptionRequest{
		ProductID: product.ID,
		UserID:    userID,
		State:     domain.SubscriptionStateActive,
	})
	if err != nil {
		return domain.Subscription{}, fmt.Errorf("failed to create subscription for user %s: %w", userID, err)
	}

	uc.logger.Info("subscription provisioned",
		"subscription_id", subscription.ID,
		"user_id", userID,
		"product_id", product.ID)

	return subscription, nil
}

// RegeneratePrimaryKey rotates the subscription's primary key after
// verifying ownership
func (uc *SubscriptionUsecase) RegeneratePrimaryKey(ctx context.Context, subscriptionID, userID string) (domain.Subscription, bool, error) {
	return uc.regenerateKey(ctx, subscriptionID, userID, uc.subscriptionGateway.RegeneratePrimaryKey)
}

// RegenerateSecondaryKey rotates the subscription's secondary key after
// verifying ownership
func (uc *SubscriptionUsecase) RegenerateSecondaryKey(ctx context.Context, subscriptionID, userID string) (domain.Subscription, bool, error) {
	return uc.regenerateKey(ctx, subscriptionID, userID, uc.subscriptionGateway.RegenerateSecondaryKey)
}

// regenerateKey is the shared rotation path. Ownership mismatch is an
// authorization condition, not a not-found: it resolves to absent without
// ever issuing the regenerate call. The mutation's immediate response is
// not trusted, so the subscription is re-fetched afterwards.
func (uc *SubscriptionUsecase) regenerateKey(ctx context.Context, subscriptionID, userID string, regenerate func(context.Context, string) error) (domain.Subscription, bool, error) {
	subscription, found, err := uc.subscriptionGateway.GetSubscription(ctx, subscriptionID)
	if err != nil {
		return domain.Subscription{}, false, fmt.Errorf("failed to get subscription %s: %w", subscriptionID, err)
	}
	if !found || !subscription.OwnedBy(userID) {
		uc.logger.Warn("key regeneration refused",
			"subscription_id", subscriptionID,
			"user_id", userID,
			"found", found)
		return domain.Subscription{}, false, nil
	}

	if err := regenerate(ctx, subscriptionID); err != nil {
		return domain.Subscription{}, false, fmt.Errorf("failed to regenerate key for subscription %s: %w", subscriptionID, err)
	}

	updated, found, err := uc.subscriptionGateway.GetSubscription(ctx, subscriptionID)
	if err != nil {
		return domain.Subscription{}, false, fmt.Errorf("failed to re-fetch subscription %s: %w", subscriptionID, err)
	}
	if !found {
		return domain.Subscription{}, false, nil
	}

	uc.logger.Info("subscription key regenerated", "subscription_id", subscriptionID)
	return updated, true, nil
}
