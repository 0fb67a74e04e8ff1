package apim

// Wire representations of backend resources. The management API wraps
// mutable fields in a properties envelope and addresses resources by a full
// id plus a short name.

// UserResource is a directory user as returned by the backend
type UserResource struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Properties UserProperties `json:"properties"`
}

// UserProperties holds the user fields nested under properties
type UserProperties struct {
	Email     string            `json:"email"`
	FirstName string            `json:"firstName,omitempty"`
	LastName  string            `json:"lastName,omitempty"`
	Note      string            `json:"note,omitempty"`
	Extra     map[string]string `json:"extra,omitempty"`
}

type userListResponse struct {
	Value []UserResource `json:"value"`
}

// GroupResource is a group as returned by the backend
type GroupResource struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Properties GroupProperties `json:"properties"`
}

// GroupProperties holds the group fields nested under properties
type GroupProperties struct {
	DisplayName string `json:"displayName,omitempty"`
}

type groupListResponse struct {
	Value []GroupResource `json:"value"`
}

// ProductResource is a product as returned by the backend
type ProductResource struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Properties ProductProperties `json:"properties"`
}

// ProductProperties holds the product fields nested under properties
type ProductProperties struct {
	DisplayName string `json:"displayName,omitempty"`
	State       string `json:"state,omitempty"`
}

// SubscriptionResource is a subscription as returned by the backend
type SubscriptionResource struct {
	ID         string                 `json:"id"`
	Name       string                 `json:"name"`
	Properties SubscriptionProperties `json:"properties"`
}

// SubscriptionProperties holds the subscription fields nested under
// properties
type SubscriptionProperties struct {
	Scope        string `json:"scope"`
	OwnerID      string `json:"ownerId"`
	State        string `json:"state"`
	PrimaryKey   string `json:"primaryKey,omitempty"`
	SecondaryKey string `json:"secondaryKey,omitempty"`
}

// SubscriptionRequestResource is the upsert payload for a subscription
type SubscriptionRequestResource struct {
	Scope   string `json:"scope"`
	OwnerID string `json:"ownerId"`
	State   string `json:"state"`
}

type subscriptionEnvelope struct {
	Properties SubscriptionRequestResource `json:"properties"`
}
