package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "GIN_MODE", "PORTFOLIO_DB", "PORTFOLIO_CONTENT", "VISITOR_RETENTION",
		"SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASS", "TO_EMAIL",
		"ADMIN_USERNAME", "ADMIN_PASSWORD",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "debug", cfg.Mode)
	assert.Equal(t, "data/portfolio.db", cfg.DBPath)
	assert.Empty(t, cfg.ContentPath)
	assert.Equal(t, 8760*time.Hour, cfg.VisitorRetention)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTP.Host)
	assert.Equal(t, "587", cfg.SMTP.Port)
	assert.False(t, cfg.SMTP.Configured())
	assert.True(t, cfg.Admin.UsesDefaults())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("PORTFOLIO_CONTENT", "content.json")
	t.Setenv("VISITOR_RETENTION", "720h")
	t.Setenv("SMTP_USER", "site@example.com")
	t.Setenv("SMTP_PASS", "secret")
	t.Setenv("TO_EMAIL", "me@example.com")
	t.Setenv("ADMIN_USERNAME", "owner")
	t.Setenv("ADMIN_PASSWORD", "long-passphrase")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, "content.json", cfg.ContentPath)
	assert.Equal(t, 720*time.Hour, cfg.VisitorRetention)
	assert.True(t, cfg.SMTP.Configured())
	assert.False(t, cfg.Admin.UsesDefaults())
}

func TestLoad_InvalidRetention(t *testing.T) {
	clearEnv(t)
	t.Setenv("VISITOR_RETENTION", "soon")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("VISITOR_RETENTION", "-1h")
	_, err = Load()
	assert.Error(t, err)
}
