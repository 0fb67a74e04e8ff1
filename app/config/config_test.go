package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("BACKEND_URL", "https://management.example.com")
	t.Setenv("RESOURCE_GROUP", "rg-portal")
	t.Setenv("SERVICE_NAME", "apim-portal")
	t.Setenv("IDENTITY_URL", "https://identity.example.com")
	t.Setenv("CLIENT_ID", "client-id")
	t.Setenv("CLIENT_SECRET", "client-secret")
	t.Setenv("PRODUCT_NAME", "starter")
	t.Setenv("GROUPS", "developers")
	t.Setenv("KRATOS_ADMIN_URL", "http://kratos:4434")
	t.Setenv("PORTAL_URL", "https://portal.example.com")
	t.Setenv("ADMIN_API_KEY", "admin-key")
	t.Setenv("DATABASE_URL", "postgres://localhost/provisioning")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9600", cfg.Port)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "2024-05-01", cfg.BackendAPIVersion)
	assert.Equal(t, time.Hour, cfg.CredentialTTL)
	assert.Equal(t, 600*time.Second, cfg.CacheFlush)
	assert.Equal(t, "default", cfg.IdentitySchemaID)
	assert.True(t, cfg.EnableAudit)
	assert.Equal(t, []string{"developers"}, cfg.Groups)
}

func TestLoad_MissingRequired(t *testing.T) {
	required := []string{
		"BACKEND_URL", "RESOURCE_GROUP", "SERVICE_NAME",
		"IDENTITY_URL", "CLIENT_ID", "CLIENT_SECRET",
		"PRODUCT_NAME", "KRATOS_ADMIN_URL", "PORTAL_URL", "ADMIN_API_KEY",
	}

	for _, key := range required {
		t.Run(key, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(key, "")

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestLoad_GroupsFromFile(t *testing.T) {
	setRequiredEnv(t)

	path := filepath.Join(t.TempDir(), "groups.yaml")
	require.NoError(t, os.WriteFile(path, []byte("groups:\n  - developers\n  - partners\n  - internal\n"), 0o600))

	t.Setenv("GROUPS", "developers,beta")
	t.Setenv("GROUPS_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)

	// Env entries first, file entries after, duplicates dropped.
	assert.Equal(t, []string{"developers", "beta", "partners", "internal"}, cfg.Groups)
}

func TestLoad_GroupsFileUnreadable(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GROUPS_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_NoGroups(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GROUPS", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "group")
}

func TestLoad_AuditRequiresDatabaseURL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoad_AuditDisabledSkipsDatabaseURL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DATABASE_URL", "")
	t.Setenv("ENABLE_AUDIT", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.EnableAudit)
}

func TestLoad_InvalidDuration(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CREDENTIAL_TTL", "not-a-duration")

	_, err := Load()
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:          "9600",
			LogLevel:      "info",
			Groups:        []string{"developers"},
			CredentialTTL: time.Hour,
			CacheFlush:    600 * time.Second,
		}
	}

	tests := []struct {
		name      string
		mutate    func(*Config)
		expectErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{
			name:      "non-numeric port",
			mutate:    func(c *Config) { c.Port = "abc" },
			expectErr: "invalid port",
		},
		{
			name:      "port out of range",
			mutate:    func(c *Config) { c.Port = "70000" },
			expectErr: "between 1 and 65535",
		},
		{
			name:      "bad log level",
			mutate:    func(c *Config) { c.LogLevel = "verbose" },
			expectErr: "invalid log level",
		},
		{
			name:      "credential ttl too short",
			mutate:    func(c *Config) { c.CredentialTTL = 30 * time.Second },
			expectErr: "credential TTL",
		},
		{
			name:      "flush interval too short",
			mutate:    func(c *Config) { c.CacheFlush = 100 * time.Millisecond },
			expectErr: "flush interval",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.expectErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectErr)
			}
		})
	}
}
