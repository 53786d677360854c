package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {"bcrypt_cost": 12, "session_ttl": "2h"},
		"storage": {"db": {"engine": "postgres", "dsn": "postgres://localhost/accounts"}},
		"server": {"http_address": ":4000", "request_timeout": "20s"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.App.BcryptCost)
	assert.Equal(t, 2*time.Hour, cfg.App.SessionTTL)
	assert.Equal(t, "postgres", cfg.Storage.DB.Engine)
	assert.Equal(t, "postgres://localhost/accounts", cfg.Storage.DB.DSN)
	assert.Equal(t, ":4000", cfg.Server.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	path := writeTempJSON(t, `{"server": {"request_timeout": 15000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")
	require.Error(t, err)
}

func TestParseJSON_MalformedContent(t *testing.T) {
	path := writeTempJSON(t, `{not json`)
	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestNetAddress_SetAndString(t *testing.T) {
	var a NetAddress
	require.NoError(t, a.Set("localhost:3000"))
	assert.Equal(t, "localhost:3000", a.String())

	var empty NetAddress
	assert.Equal(t, "", empty.String())

	var bad NetAddress
	assert.Error(t, bad.Set("no-port"))
	assert.Error(t, bad.Set("localhost:0"))
	assert.Error(t, bad.Set("not-an-ip:80"))
}
