package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the provisioning service. Values are
// read once at process start and are immutable for the process lifetime.
type Config struct {
	// Server
	Port     string `env:"PORT" default:"9600"`
	Host     string `env:"HOST" default:"0.0.0.0"`
	LogLevel string `env:"LOG_LEVEL" default:"info"`

	// API-management backend
	BackendURL        string `env:"BACKEND_URL" required:"true"`
	BackendAPIVersion string `env:"BACKEND_API_VERSION" default:"2024-05-01"`
	ResourceGroup     string `env:"RESOURCE_GROUP" required:"true"`
	ServiceName       string `env:"SERVICE_NAME" required:"true"`

	// Identity provider fronting the backend
	IdentityURL  string `env:"IDENTITY_URL" required:"true"`
	ClientID     string `env:"CLIENT_ID" required:"true"`
	ClientSecret string `env:"CLIENT_SECRET" required:"true"`

	// Provisioning
	ProductName    string        `env:"PRODUCT_NAME" required:"true"`
	Groups         []string      `env:"GROUPS"`
	GroupsFile     string        `env:"GROUPS_FILE"`
	CredentialTTL  time.Duration `env:"CREDENTIAL_TTL" default:"1h"`
	CacheFlush     time.Duration `env:"DIRECTORY_CACHE_FLUSH" default:"600s"`
	WelcomeSubject string        `env:"WELCOME_SUBJECT" default:"Welcome to the developer portal"`
	WelcomeBody    string        `env:"WELCOME_BODY" default:"Your API access has been provisioned."`

	// Downstream services
	KratosAdminURL   string `env:"KRATOS_ADMIN_URL" required:"true"`
	IdentitySchemaID string `env:"IDENTITY_SCHEMA_ID" default:"default"`
	PortalURL        string `env:"PORTAL_URL" required:"true"`
	AdminAPIKey      string `env:"ADMIN_API_KEY" required:"true"`

	// Audit database
	DatabaseURL string `env:"DATABASE_URL"`
	EnableAudit bool   `env:"ENABLE_AUDIT" default:"true"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", "9600")
	config.Host = getEnvOrDefault("HOST", "0.0.0.0")
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")

	// Backend configuration
	var err error
	if config.BackendURL, err = requireEnv("BACKEND_URL"); err != nil {
		return nil, err
	}
	config.BackendAPIVersion = getEnvOrDefault("BACKEND_API_VERSION", "2024-05-01")
	if config.ResourceGroup, err = requireEnv("RESOURCE_GROUP"); err != nil {
		return nil, err
	}
	if config.ServiceName, err = requireEnv("SERVICE_NAME"); err != nil {
		return nil, err
	}

	// Identity provider configuration
	if config.IdentityURL, err = requireEnv("IDENTITY_URL"); err != nil {
		return nil, err
	}
	if config.ClientID, err = requireEnv("CLIENT_ID"); err != nil {
		return nil, err
	}
	if config.ClientSecret, err = requireEnv("CLIENT_SECRET"); err != nil {
		return nil, err
	}

	// Provisioning configuration
	if config.ProductName, err = requireEnv("PRODUCT_NAME"); err != nil {
		return nil, err
	}
	config.GroupsFile = os.Getenv("GROUPS_FILE")
	config.Groups, err = loadGroups(os.Getenv("GROUPS"), config.GroupsFile)
	if err != nil {
		return nil, err
	}

	config.CredentialTTL, err = getDurationEnv("CREDENTIAL_TTL", time.Hour)
	if err != nil {
		return nil, err
	}
	config.CacheFlush, err = getDurationEnv("DIRECTORY_CACHE_FLUSH", 600*time.Second)
	if err != nil {
		return nil, err
	}
	config.WelcomeSubject = getEnvOrDefault("WELCOME_SUBJECT", "Welcome to the developer portal")
	config.WelcomeBody = getEnvOrDefault("WELCOME_BODY", "Your API access has been provisioned.")

	// Downstream configuration
	if config.KratosAdminURL, err = requireEnv("KRATOS_ADMIN_URL"); err != nil {
		return nil, err
	}
	config.IdentitySchemaID = getEnvOrDefault("IDENTITY_SCHEMA_ID", "default")
	if config.PortalURL, err = requireEnv("PORTAL_URL"); err != nil {
		return nil, err
	}
	if config.AdminAPIKey, err = requireEnv("ADMIN_API_KEY"); err != nil {
		return nil, err
	}

	// Audit configuration
	config.EnableAudit = getBoolEnv("ENABLE_AUDIT", true)
	config.DatabaseURL = os.Getenv("DATABASE_URL")
	if config.EnableAudit && config.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required when ENABLE_AUDIT is true")
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	if len(c.Groups) == 0 {
		return fmt.Errorf("at least one group must be configured (GROUPS or GROUPS_FILE)")
	}

	if c.CredentialTTL < time.Minute {
		return fmt.Errorf("credential TTL must be at least 1 minute, got: %v", c.CredentialTTL)
	}

	if c.CacheFlush < time.Second {
		return fmt.Errorf("directory cache flush interval must be at least 1 second, got: %v", c.CacheFlush)
	}

	return nil
}

// groupsFile is the YAML shape accepted via GROUPS_FILE
type groupsFile struct {
	Groups []string `yaml:"groups"`
}

// loadGroups merges the comma-separated GROUPS value with an optional YAML
// group file; order is preserved, file entries after env entries,
// duplicates dropped
func loadGroups(csv, file string) ([]string, error) {
	var groups []string
	seen := make(map[string]struct{})

	appendGroup := func(g string) {
		g = strings.TrimSpace(g)
		if g == "" {
			return
		}
		if _, dup := seen[g]; dup {
			return
		}
		seen[g] = struct{}{}
		groups = append(groups, g)
	}

	for _, g := range strings.Split(csv, ",") {
		appendGroup(g)
	}

	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read groups file %s: %w", file, err)
		}
		var parsed groupsFile
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return nil, fmt.Errorf("failed to parse groups file %s: %w", file, err)
		}
		for _, g := range parsed.Groups {
			appendGroup(g)
		}
	}

	return groups, nil
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return value, nil
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
