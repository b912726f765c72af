package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
port = "9000"

[storage]
bucket = "vision-media.appspot.com"

[watch]
poll_interval = "500ms"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "vision-media.appspot.com", cfg.Storage.Bucket)
	// untouched sections keep their defaults
	assert.Equal(t, "bolt://localhost:7687", cfg.Memgraph.URI)
	assert.Equal(t, "X-Forwarded-User", cfg.Auth.UserHeader)

	d, err := cfg.PollInterval()
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, d)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "[server\nport ="))
	assert.ErrorContains(t, err, "failed to parse TOML")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("PORT", "7000")
	t.Setenv("MEMGRAPH_URI", "bolt://db:7687")
	t.Setenv("STORAGE_BUCKET", "bucket-from-env")
	t.Setenv("LOG_LEVEL", "")

	cfg := Default()
	cfg.ApplyEnv()

	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, "bolt://db:7687", cfg.Memgraph.URI)
	assert.Equal(t, "bucket-from-env", cfg.Storage.Bucket)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestPollInterval_Invalid(t *testing.T) {
	cfg := Default()

	cfg.Watch.PollInterval = "soon"
	_, err := cfg.PollInterval()
	assert.Error(t, err)

	cfg.Watch.PollInterval = "0s"
	_, err = cfg.PollInterval()
	assert.Error(t, err)
}
