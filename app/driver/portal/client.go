package portal

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
	"provisioning-service/app/domain"
)

// Client talks to the downstream portal services: the service-record
// registry and the messaging endpoint. Every call authenticates with the
// admin API key.
type Client struct {
	baseURL     string
	adminAPIKey string
	httpClient  *http.Client
	logger      *slog.Logger
}

// NewClient creates a new portal services client
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	u, err := url.Parse(cfg.PortalURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid portal URL: %s", cfg.PortalURL)
	}

	return &Client{
		baseURL:     strings.TrimRight(cfg.PortalURL, "/"),
		adminAPIKey: cfg.AdminAPIKey,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		logger:      logger.With("component", "portal_client"),
	}, nil
}

// UpsertServiceRecord registers the record keyed by its subscription id.
// Repeated upserts for the same key overwrite; a retried onboarding with a
// fresh subscription id creates a second record.
func (c *Client) UpsertServiceRecord(ctx context.Context, record domain.ServiceRecord) error {
	path := "/service-records/" + url.PathEscape(record.SubscriptionID)
	if err := c.send(ctx, http.MethodPut, path, record); err != nil {
		return fmt.Errorf("failed to upsert service record %s: %w", record.SubscriptionID, err)
	}
	c.logger.Info("service record registered",
		"subscription_id", record.SubscriptionID,
		"user_id", record.UserID)
	return nil
}

type messageRequest struct {
	RecipientID string `json:"recipientId"`
	Subject     string `json:"subject"`
	Content     string `json:"content"`
}

// SendMessage delivers a message to the given recipient identity
func (c *Client) SendMessage(ctx context.Context, recipientID, subject, content string) error {
	body := messageRequest{
		RecipientID: recipientID,
		Subject:     subject,
		Content:     content,
	}
	if err := c.send(ctx, http.MethodPost, "/messages", body); err != nil {
		return fmt.Errorf("failed to send message to %s: %w", recipientID, err)
	}
	c.logger.Info("message sent", "recipient_id", recipientID, "subject", subject)
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, body interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", c.adminAPIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("portal request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("portal %s %s returned status %d: %s", method, path, resp.StatusCode, string(snippet))
	}
	return nil
}
