package apim

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"provisioning-service/app/config"
)

// IdentityClient talks to the identity provider that fronts the management
// surface: a login that yields the long-lived management key, and a token
// exchange that yields short-lived access tokens. It needs no credential
// source of its own.
type IdentityClient struct {
	baseURL      string
	clientID     string
	clientSecret string
	httpClient   *http.Client
	logger       *slog.Logger
}

// NewIdentityClient creates a new identity provider client
func NewIdentityClient(cfg *config.Config, logger *slog.Logger) (*IdentityClient, error) {
	if !isValidURL(cfg.IdentityURL) {
		return nil, fmt.Errorf("invalid identity URL: %s", cfg.IdentityURL)
	}

	return &IdentityClient{
		baseURL:      strings.TrimRight(cfg.IdentityURL, "/"),
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		logger:       logger.With("component", "identity_client"),
	}, nil
}

type loginRequest struct {
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
}

type loginResponse struct {
	ManagementKey string `json:"managementKey"`
}

type tokenResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresOn   string `json:"expiresOn"`
}

// Login performs a fresh login and returns the management key
func (c *IdentityClient) Login(ctx context.Context) (string, error) {
	var out loginResponse
	err := c.post(ctx, "/login", loginRequest{ClientID: c.clientID, ClientSecret: c.clientSecret}, "", &out)
	if err != nil {
		return "", fmt.Errorf("identity login failed: %w", err)
	}
	if out.ManagementKey == "" {
		return "", fmt.Errorf("identity login returned an empty management key")
	}
	return out.ManagementKey, nil
}

// FetchToken exchanges the management key for an access token. The returned
// expiry is informational; callers apply their own TTL because this field
// has been unreliable.
func (c *IdentityClient) FetchToken(ctx context.Context, managementKey string) (string, time.Time, error) {
	var out tokenResponse
	if err := c.post(ctx, "/token", nil, managementKey, &out); err != nil {
		return "", time.Time{}, fmt.Errorf("token fetch failed: %w", err)
	}
	if out.AccessToken == "" {
		return "", time.Time{}, fmt.Errorf("token fetch returned an empty access token")
	}

	expiresOn, err := time.Parse(time.RFC3339, out.ExpiresOn)
	if err != nil {
		c.logger.Warn("token response carried an unparsable expiry", "expires_on", out.ExpiresOn)
		expiresOn = time.Time{}
	}
	return out.AccessToken, expiresOn, nil
}

func (c *IdentityClient) post(ctx context.Context, path string, body interface{}, managementKey string, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if managementKey != "" {
		req.Header.Set("Authorization", "SharedAccessSignature "+managementKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("identity request %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &BackendError{
			StatusCode: resp.StatusCode,
			Method:     http.MethodPost,
			Path:       path,
			Body:       string(snippet),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}
