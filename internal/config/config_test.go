package config

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		viper.Reset()
		chdir(t, t.TempDir())

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, 8000, cfg.AppPort)
		assert.Equal(t, StoreBackendSQLite, cfg.StoreBackend)
		assert.Equal(t, 5, cfg.ContextWindow)
		assert.Equal(t, 5*time.Minute, cfg.StreamTimeout)
		assert.Equal(t, 1024, cfg.EmbeddingDimensions)
	})

	t.Run("Environment overrides", func(t *testing.T) {
		viper.Reset()
		chdir(t, t.TempDir())
		t.Setenv("STORE_BACKEND", "redis")
		t.Setenv("CONTEXT_WINDOW", "3")
		t.Setenv("STREAM_TIMEOUT", "30s")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, StoreBackendRedis, cfg.StoreBackend)
		assert.Equal(t, 3, cfg.ContextWindow)
		assert.Equal(t, 30*time.Second, cfg.StreamTimeout)
	})

	t.Run("Unknown backend is rejected", func(t *testing.T) {
		viper.Reset()
		chdir(t, t.TempDir())
		t.Setenv("STORE_BACKEND", "mongo")

		_, err := LoadConfig()
		assert.ErrorContains(t, err, "STORE_BACKEND")
	})

	t.Run("Negative embedding dimensions are rejected", func(t *testing.T) {
		viper.Reset()
		chdir(t, t.TempDir())
		t.Setenv("EMBEDDING_DIMENSIONS", "-1")

		_, err := LoadConfig()
		assert.ErrorContains(t, err, "EMBEDDING_DIMENSIONS")
	})
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(prev)) })
}
