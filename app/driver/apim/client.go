package apim

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"provisioning-service/app/config"
	"provisioning-service/app/port"
)

// Client is an HTTP client for the API-management backend's management
// surface. Every call carries a bearer token obtained from the credential
// source, so token refresh is transparent to callers.
type Client struct {
	baseURL    string
	apiVersion string
	creds      port.CredentialSource
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a management client scoped to the configured resource
// group and backend instance
func NewClient(cfg *config.Config, creds port.CredentialSource, logger *slog.Logger) (*Client, error) {
	if !isValidURL(cfg.BackendURL) {
		return nil, fmt.Errorf("invalid backend URL: %s", cfg.BackendURL)
	}

	base := fmt.Sprintf("%s/resource-groups/%s/services/%s",
		strings.TrimRight(cfg.BackendURL, "/"),
		url.PathEscape(cfg.ResourceGroup),
		url.PathEscape(cfg.ServiceName))

	return &Client{
		baseURL:    base,
		apiVersion: cfg.BackendAPIVersion,
		creds:      creds,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger.With("component", "apim_client"),
	}, nil
}

// FindUsersByEmail queries the user directory with an exact email filter
func (c *Client) FindUsersByEmail(ctx context.Context, email string) ([]UserResource, error) {
	query := url.Values{}
	query.Set("$filter", fmt.Sprintf("email eq '%s'", email))

	var out userListResponse
	if err := c.do(ctx, http.MethodGet, "/users", query, nil, &out); err != nil {
		return nil, err
	}
	return out.Value, nil
}

// ListGroupsForUser returns the groups the user currently belongs to
func (c *Client) ListGroupsForUser(ctx context.Context, userRef string) ([]GroupResource, error) {
	var out groupListResponse
	path := fmt.Sprintf("/users/%s/groups", url.PathEscape(userRef))
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Value, nil
}

// AddUserToGroup adds the user to a group; the call is idempotent on the
// backend side
func (c *Client) AddUserToGroup(ctx context.Context, groupName, userRef string) error {
	path := fmt.Sprintf("/groups/%s/users/%s", url.PathEscape(groupName), url.PathEscape(userRef))
	return c.do(ctx, http.MethodPut, path, nil, nil, nil)
}

// GetProduct fetches a product by name; absence is reported via ErrNotFound
func (c *Client) GetProduct(ctx context.Context, productName string) (ProductResource, error) {
	var out ProductResource
	path := fmt.Sprintf("/products/%s", url.PathEscape(productName))
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return ProductResource{}, err
	}
	return out, nil
}

// CreateOrUpdateSubscription issues an unconditional upsert for the
// subscription id
func (c *Client) CreateOrUpdateSubscription(ctx context.Context, subscriptionID string, body SubscriptionRequestResource) (SubscriptionResource, error) {
	var out SubscriptionResource
	path := fmt.Sprintf("/subscriptions/%s", url.PathEscape(subscriptionID))
	if err := c.do(ctx, http.MethodPut, path, nil, subscriptionEnvelope{Properties: body}, &out); err != nil {
		return SubscriptionResource{}, err
	}
	return out, nil
}

// GetSubscription fetches a subscription by id; absence is reported via
// ErrNotFound
func (c *Client) GetSubscription(ctx context.Context, subscriptionID string) (SubscriptionResource, error) {
	var out SubscriptionResource
	path := fmt.Sprintf("/subscriptions/%s", url.PathEscape(subscriptionID))
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return SubscriptionResource{}, err
	}
	return out, nil
}

// RegeneratePrimaryKey rotates the subscription's primary key
func (c *Client) RegeneratePrimaryKey(ctx context.Context, subscriptionID string) error {
	path := fmt.Sprintf("/subscriptions/%s/regeneratePrimaryKey", url.PathEscape(subscriptionID))
	return c.do(ctx, http.MethodPost, path, nil, nil, nil)
}

// RegenerateSecondaryKey rotates the subscription's secondary key
func (c *Client) RegenerateSecondaryKey(ctx context.Context, subscriptionID string) error {
	path := fmt.Sprintf("/subscriptions/%s/regenerateSecondaryKey", url.PathEscape(subscriptionID))
	return c.do(ctx, http.MethodPost, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	cred, err := c.creds.Ensure(ctx)
	if err != nil {
		return fmt.Errorf("failed to obtain backend credential: %w", err)
	}

	if query == nil {
		query = url.Values{}
	}
	if c.apiVersion != "" {
		query.Set("api-version", c.apiVersion)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+cred.AccessToken)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error("backend request failed",
			"method", method,
			"path", path,
			"status", resp.StatusCode)
		return &BackendError{
			StatusCode: resp.StatusCode,
			Method:     method,
			Path:       path,
			Body:       string(snippet),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}

func isValidURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
