package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"provisioning-service/app/domain"
	"provisioning-service/app/driver/apim"
)

// SubscriptionClient is the driver-side contract for product and
// subscription operations
type SubscriptionClient interface {
	GetProduct(ctx context.Context, productName string) (apim.ProductResource, error)
	CreateOrUpdateSubscription(ctx context.Context, subscriptionID string, body apim.SubscriptionRequestResource) (apim.SubscriptionResource, error)
	GetSubscription(ctx context.Context, subscriptionID string) (apim.SubscriptionResource, error)
	RegeneratePrimaryKey(ctx context.Context, subscriptionID string) error
	RegenerateSecondaryKey(ctx context.Context, subscriptionID string) error
}

// SubscriptionGateway implements port.SubscriptionGateway, translating the
// driver's not-found errors into absent results so callers keep the
// nothing-there / backend-broken distinction.
type SubscriptionGateway struct {
	client SubscriptionClient
	logger *slog.Logger
}

// NewSubscriptionGateway creates a new SubscriptionGateway instance
func NewSubscriptionGateway(client SubscriptionClient, logger *slog.Logger) *SubscriptionGateway {
	return &SubscriptionGateway{
		client: client,
		logger: logger.With("component", "subscription_gateway"),
	}
}

// GetProduct resolves a product by name; false when the backend has no such
// product
func (g *SubscriptionGateway) GetProduct(ctx context.Context, productName string) (domain.Product, bool, error) {
	res, err := g.client.GetProduct(ctx, productName)
	if apim.IsNotFound(err) {
		return domain.Product{}, false, nil
	}
	if err != nil {
		g.logger.Error("product lookup failed", "product", productName, "error", err)
		return domain.Product{}, false, fmt.Errorf("product lookup for %s: %w", productName, err)
	}

	return domain.Product{
		ID:          res.ID,
		Name:        res.Name,
		DisplayName: res.Properties.DisplayName,
	}, true, nil
}

// CreateOrUpdateSubscription upserts the subscription under the given id
func (g *SubscriptionGateway) CreateOrUpdateSubscription(ctx context.Context, subscriptionID string, req domain.SubscriptionRequest) (domain.Subscription, error) {
	res, err := g.client.CreateOrUpdateSubscription(ctx, subscriptionID, apim.SubscriptionRequestResource{
		Scope:   req.ProductID,
		OwnerID: req.UserID,
		State:   string(req.State),
	})
	if err != nil {
		g.logger.Error("subscription upsert failed",
			"subscription_id", subscriptionID,
			"error", err)
		return domain.Subscription{}, fmt.Errorf("subscription upsert %s: %w", subscriptionID, err)
	}
	return toSubscription(res), nil
}

// GetSubscription fetches a subscription by id; false when absent
func (g *SubscriptionGateway) GetSubscription(ctx context.Context, subscriptionID string) (domain.Subscription, bool, error) {
	res, err := g.client.GetSubscription(ctx, subscriptionID)
	if apim.IsNotFound(err) {
		return domain.Subscription{}, false, nil
	}
	if err != nil {
		g.logger.Error("subscription fetch failed",
			"subscription_id", subscriptionID,
			"error", err)
		return domain.Subscription{}, false, fmt.Errorf("subscription fetch %s: %w", subscriptionID, err)
	}
	return toSubscription(res), true, nil
}

// RegeneratePrimaryKey rotates the primary key
func (g *SubscriptionGateway) RegeneratePrimaryKey(ctx context.Context, subscriptionID string) error {
	if err := g.client.RegeneratePrimaryKey(ctx, subscriptionID); err != nil {
		return fmt.Errorf("primary key regeneration %s: %w", subscriptionID, err)
	}
	return nil
}

// RegenerateSecondaryKey rotates the secondary key
func (g *SubscriptionGateway) RegenerateSecondaryKey(ctx context.Context, subscriptionID string) error {
	if err := g.client.RegenerateSecondaryKey(ctx, subscriptionID); err != nil {
		return fmt.Errorf("secondary key regeneration %s: %w", subscriptionID, err)
	}
	return nil
}

func toSubscription(res apim.SubscriptionResource) domain.Subscription {
	return domain.Subscription{
		ID:           res.Name,
		ProductID:    res.Properties.Scope,
		UserID:       res.Properties.OwnerID,
		State:        domain.SubscriptionState(res.Properties.State),
		PrimaryKey:   res.Properties.PrimaryKey,
		SecondaryKey: res.Properties.SecondaryKey,
	}
}
