package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	assert.NoError(t, err)
	assert.Equal(t, ":8930", cfg.Server.Addr)
	assert.Equal(t, time.Second, cfg.Auth.GetLoginDelay())
	assert.Equal(t, 15.0, cfg.RateLimit.RequestsPerSecond)
}

func TestLoadLayersFileOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("server:\n  addr: \":9000\"\nauth:\n  login_delay: 250ms\n")
	assert.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, 250*time.Millisecond, cfg.Auth.GetLoginDelay())
	// Untouched sections keep their defaults.
	assert.Equal(t, 30, cfg.RateLimit.Burst)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load("/does/not/exist.yaml")
	assert.Error(t, err)
}

func TestGetLoginDelayFallsBackOnGarbage(t *testing.T) {
	a := AuthConfig{LoginDelay: "not-a-duration"}
	assert.Equal(t, time.Second, a.GetLoginDelay())
}
