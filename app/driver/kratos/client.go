package kratos

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	kratosclient "github.com/ory/kratos-client-go"

	"provisioning-service/app/config"
)

// Client wraps the Kratos admin API used to provision synthetic
// notification identities. Only the admin surface is needed here; portal
// sessions are handled upstream of this service.
type Client struct {
	adminAPI *kratosclient.APIClient
	adminURL string
	schemaID string
	logger   *slog.Logger
}

// NewClient creates a new Kratos admin client
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	if !isValidURL(cfg.KratosAdminURL) {
		return nil, fmt.Errorf("invalid Kratos admin URL: %s", cfg.KratosAdminURL)
	}

	adminConfig := kratosclient.NewConfiguration()
	adminConfig.Servers = []kratosclient.ServerConfiguration{
		{
			URL: cfg.KratosAdminURL,
		},
	}
	adminConfig.HTTPClient = &http.Client{
		Timeout: 30 * time.Second,
	}
	if adminConfig.DefaultHeader == nil {
		adminConfig.DefaultHeader = make(map[string]string)
	}
	adminConfig.DefaultHeader["Accept"] = "application/json"
	if cfg.AdminAPIKey != "" {
		adminConfig.DefaultHeader["Authorization"] = "Bearer " + cfg.AdminAPIKey
	}

	logger.Info("Kratos admin client initialized", "admin_url", cfg.KratosAdminURL)

	return &Client{
		adminAPI: kratosclient.NewAPIClient(adminConfig),
		adminURL: cfg.KratosAdminURL,
		schemaID: cfg.IdentitySchemaID,
		logger:   logger.With("component", "kratos_client"),
	}, nil
}

// CreateSyntheticIdentity registers an identity carrying only the email
// trait and returns its identifier. The identifier is a pure correlation
// handle, unrelated to the directory user's real identity.
func (c *Client) CreateSyntheticIdentity(ctx context.Context, email string) (string, error) {
	body := kratosclient.NewCreateIdentityBody(c.schemaID, map[string]interface{}{
		"email": email,
	})

	identity, resp, err := c.adminAPI.IdentityAPI.CreateIdentity(ctx).CreateIdentityBody(*body).Execute()
	if err != nil {
		c.logger.Error("synthetic identity creation failed",
			"error", err,
			"http_status", getHTTPStatus(resp))
		return "", fmt.Errorf("failed to create synthetic identity: %w", err)
	}

	c.logger.Info("synthetic identity created", "identity_id", identity.Id)
	return identity.Id, nil
}

// DeleteSyntheticIdentity removes a previously created identity. Used by
// operators to clean up after failed onboardings; the pipeline itself never
// compensates.
func (c *Client) DeleteSyntheticIdentity(ctx context.Context, identityID string) error {
	resp, err := c.adminAPI.IdentityAPI.DeleteIdentity(ctx, identityID).Execute()
	if err != nil {
		return fmt.Errorf("failed to delete synthetic identity %s: %w", identityID, err)
	}
	if resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("identity deletion returned status %d", resp.StatusCode)
	}
	return nil
}

// HealthCheck checks if the Kratos admin API is reachable
func (c *Client) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, resp, err := c.adminAPI.MetadataAPI.GetVersion(ctx).Execute()
	if err != nil {
		return fmt.Errorf("failed to connect to Kratos admin API: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("Kratos admin API returned status %d", resp.StatusCode)
	}
	return nil
}

func getHTTPStatus(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}

func isValidURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
