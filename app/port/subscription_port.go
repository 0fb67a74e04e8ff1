package port

//go:generate mockgen -source=subscription_port.go -destination=../mocks/mock_subscription_port.go

import (
	"context"

	"provisioning-service/app/domain"
)

// SubscriptionGateway exposes the backend's product and subscription
// operations. Lookups report absence with a false boolean rather than an
// error so callers can tell "nothing there" from "backend broken".
type SubscriptionGateway interface {
	GetProduct(ctx context.Context, productName string) (domain.Product, bool, error)
	CreateOrUpdateSubscription(ctx context.Context, subscriptionID string, req domain.SubscriptionRequest) (domain.Subscription, error)
	GetSubscription(ctx context.Context, subscriptionID string) (domain.Subscription, bool, error)
	RegeneratePrimaryKey(ctx context.Context, subscriptionID string) error
	RegenerateSecondaryKey(ctx context.Context, subscriptionID string) error
}

// SubscriptionUsecase defines subscription business logic
type SubscriptionUsecase interface {
	// AddUserSubscriptionToProduct provisions an active subscription for the
	// user against the named product under a freshly generated identifier
	AddUserSubscriptionToProduct(ctx context.Context, userID, productName string) (domain.Subscription, error)

	// LookupProduct resolves the named product; false when absent
	LookupProduct(ctx context.Context, productName string) (domain.Product, bool, error)

	// Key rotation. The boolean is false when the subscription does not
	// exist or is not owned by userID; no regenerate call is issued then.
	RegeneratePrimaryKey(ctx context.Context, subscriptionID, userID string) (domain.Subscription, bool, error)
	RegenerateSecondaryKey(ctx context.Context, subscriptionID, userID string) (domain.Subscription, bool, error)
}
