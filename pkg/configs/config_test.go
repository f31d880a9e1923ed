package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "4101", cfg.HTTPPort)
		assert.Equal(t, "memory", cfg.Store)
		assert.Equal(t, "local", cfg.Locker)
		assert.Equal(t, 5000, cfg.Redis.LockTTL)
	})

	t.Run("Environment wins", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "9999")
		t.Setenv("STORE", "postgres")
		t.Setenv("DB_NAME", "tapas")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "9999", cfg.HTTPPort)
		assert.Equal(t, "postgres", cfg.Store)
		assert.Equal(t, "tapas", cfg.Postgres.Database)
	})
}
