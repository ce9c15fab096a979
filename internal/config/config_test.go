package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agora/internal/latency"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 500, cfg.Latency.SessionRestoreMS)
	assert.Equal(t, 1000, cfg.Latency.SignInMS)
	assert.Equal(t, 1000, cfg.Latency.SignUpMS)
	assert.Equal(t, 1000, cfg.Latency.FeedLoadMS)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Addr, cfg.Addr)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agora.yaml")
	data := []byte("addr: \":9090\"\nlog_level: debug\nlatency:\n  sign_in_ms: 0\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 0, cfg.Latency.SignInMS)
	// Unset fields keep their defaults.
	assert.Equal(t, 1000, cfg.Latency.FeedLoadMS)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestPortEnvOverride(t *testing.T) {
	t.Setenv("PORT", ":7070")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Addr)
}

func TestProfile(t *testing.T) {
	cfg := Default()
	p := cfg.Profile()
	assert.Equal(t, latency.Fixed(500*time.Millisecond), p.SessionRestore)
	assert.Equal(t, latency.Fixed(time.Second), p.SignIn)
	assert.Equal(t, latency.Fixed(time.Second), p.SignUp)
	assert.Equal(t, latency.Fixed(time.Second), p.FeedLoad)
}
