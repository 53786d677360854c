package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:9999")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "30s")
	t.Setenv("STORAGE_DB_ENGINE", "sqlite")
	t.Setenv("STORAGE_DB_DATABASE_URI", "accounts.db")
	t.Setenv("APP_BCRYPT_COST", "12")
	t.Setenv("APP_SESSION_TTL", "1h")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "127.0.0.1:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "sqlite", cfg.Storage.DB.Engine)
	assert.Equal(t, "accounts.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 12, cfg.App.BcryptCost)
	assert.Equal(t, time.Hour, cfg.App.SessionTTL)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("SERVER_REQUEST_TIMEOUT", "not-a-duration")

	cfg := &StructuredConfig{}
	require.Error(t, parseEnv(cfg))
}

func TestParseEnv_EmptyEnvironment(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Storage.DB.DSN)
}
