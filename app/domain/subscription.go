package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// SubscriptionState represents the lifecycle state of a subscription.
// Transitions are driven by the backend; this service only ever requests
// the active state.
type SubscriptionState string

const (
	SubscriptionStateActive   SubscriptionState = "active"
	SubscriptionStateCanceled SubscriptionState = "canceled"
)

// Product is a named bundle of API access that a subscription grants
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name,omitempty"`
}

// Subscription links a directory user to a product, carrying the API keys
// issued by the backend
type Subscription struct {
	ID           string            `json:"id"`
	ProductID    string            `json:"product_id"`
	UserID       string            `json:"user_id"`
	State        SubscriptionState `json:"state"`
	PrimaryKey   string            `json:"primary_key,omitempty"`
	SecondaryKey string            `json:"secondary_key,omitempty"`
}

// SubscriptionRequest is the payload for a create-or-update call against
// the backend
type SubscriptionRequest struct {
	ProductID string
	UserID    string
	State     SubscriptionState
}

// NewSubscriptionID generates a collision-resistant, lexicographically
// sortable identifier for a subscription. UUIDv7 is time-ordered, so listing
// subscriptions by id yields creation order.
func NewSubscriptionID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate subscription id: %w", err)
	}
	return id.String(), nil
}

// OwnedBy reports whether the subscription belongs to the given user.
// The backend stores the owner as a full resource reference, so a suffix
// match on the short reference is accepted as well.
func (s Subscription) OwnedBy(userID string) bool {
	if userID == "" || s.UserID == "" {
		return false
	}
	if s.UserID == userID {
		return true
	}
	return lastPathSegment(s.UserID) == userID
}

func lastPathSegment(ref string) string {
	for i := len(ref) - 1; i >= 0; i-- {
		if ref[i] == '/' {
			return ref[i+1:]
		}
	}
	return ref
}
