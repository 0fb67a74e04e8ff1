package logger

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantError bool
	}{
		{name: "debug level", level: "debug"},
		{name: "info level", level: "info"},
		{name: "warn level", level: "warn"},
		{name: "error level", level: "error"},
		{name: "uppercase is accepted", level: "INFO"},
		{name: "unknown level", level: "verbose", wantError: true},
		{name: "empty level", level: "", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.level)

			if tt.wantError {
				assert.Error(t, err)
				assert.Nil(t, logger)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, logger)
			}
		})
	}
}

func TestNewWithWriter(t *testing.T) {
	t.Setenv("GO_ENV", "development")
	var buf bytes.Buffer

	logger, err := NewWithWriter("info", &buf)
	require.NoError(t, err)

	logger.Info("onboarding started", "user_id", "u1")

	out := buf.String()
	assert.Contains(t, out, "onboarding started")
	assert.Contains(t, out, "user_id=u1")
	assert.Contains(t, out, "service=provisioning-service")
}

func TestNewWithWriter_LevelFilter(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewWithWriter("warn", &buf)
	require.NoError(t, err)

	logger.Info("should be suppressed")
	logger.Warn("should appear")

	out := buf.String()
	assert.NotContains(t, out, "should be suppressed")
	assert.Contains(t, out, "should appear")
}

func TestWithComponent(t *testing.T) {
	t.Setenv("GO_ENV", "development")
	var buf bytes.Buffer

	logger, err := NewWithWriter("info", &buf)
	require.NoError(t, err)

	WithComponent(logger, "credential_cache").Info("refreshed")
	assert.Contains(t, buf.String(), "component=credential_cache")
}

func TestLogError(t *testing.T) {
	t.Setenv("GO_ENV", "development")
	var buf bytes.Buffer

	logger, err := NewWithWriter("info", &buf)
	require.NoError(t, err)

	LogError(logger, errors.New("boom"), "operation failed", "user_id", "u1")

	out := buf.String()
	assert.Contains(t, out, "operation failed")
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "user_id=u1")
}

func TestLogDuration(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewWithWriter("info", &buf)
	require.NoError(t, err)

	LogDuration(logger, time.Now().Add(-10*time.Millisecond), "onboard")

	out := buf.String()
	assert.Contains(t, out, "onboard")
	assert.Contains(t, out, "duration")
}
