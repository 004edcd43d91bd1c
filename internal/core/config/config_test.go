package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearCacheEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"APP_ENV", "LOG_LEVEL", "SERVER_PORT", "CACHE_BACKEND", "CACHE_DIR", "REDIS_URL"} {
		os.Unsetenv(key)
	}
}

// TestLoad_Defaults verifies that default values are used when env vars are missing.
func TestLoad_Defaults(t *testing.T) {
	clearCacheEnv(t)

	cfg, err := Load(".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, BackendMemory, cfg.Cache.Backend)
	assert.Equal(t, "./cache", cfg.Cache.Dir)
}

// TestLoad_EnvVars verifies that environment variables override defaults.
func TestLoad_EnvVars(t *testing.T) {
	clearCacheEnv(t)
	os.Setenv("APP_ENV", "production")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("CACHE_BACKEND", "redis")
	os.Setenv("REDIS_URL", "redis://localhost:6379/0")
	defer clearCacheEnv(t)

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, BackendRedis, cfg.Cache.Backend)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Cache.RedisURL)
}

// TestLoad_File verifies that values are loaded from a .env file.
func TestLoad_File(t *testing.T) {
	clearCacheEnv(t)
	content := []byte(`
APP_ENV=staging
LOG_LEVEL=warn
SERVER_PORT=7070
CACHE_BACKEND=json
CACHE_DIR=/var/cache/kvcache
`)
	err := os.WriteFile(".env", content, 0644)
	require.NoError(t, err)
	defer os.Remove(".env")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 7070, cfg.ServerPort)
	assert.Equal(t, BackendJSON, cfg.Cache.Backend)
	assert.Equal(t, "/var/cache/kvcache", cfg.Cache.Dir)
}

// TestLoad_ValidationFailure verifies backend-specific required settings.
func TestLoad_ValidationFailure(t *testing.T) {
	t.Run("RedisWithoutURL", func(t *testing.T) {
		clearCacheEnv(t)
		os.Setenv("CACHE_BACKEND", "redis")
		defer clearCacheEnv(t)

		cfg, err := Load(".")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "missing required configuration: REDIS_URL")
	})

	t.Run("UnknownBackend", func(t *testing.T) {
		clearCacheEnv(t)
		os.Setenv("CACHE_BACKEND", "etcd")
		defer clearCacheEnv(t)

		cfg, err := Load(".")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "unknown cache backend")
	})
}
