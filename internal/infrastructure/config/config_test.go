package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/trip-report-backend/internal/infrastructure/config"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DB_USER", "trip")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "trips")
	t.Setenv("JWT_SECRET_KEY", "jwt-secret")
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		setRequired(t)

		cfg, err := config.Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenTTL)
		assert.Equal(t, "gpt-3.5-turbo", cfg.AI.Model)
		assert.Equal(t, 500, cfg.AI.MaxTokens)
		assert.Equal(t, "/metrics", cfg.Metrics.Path)
		assert.False(t, cfg.S3.Enabled())
		assert.Equal(t, "host=localhost port=5432 user=trip password=secret dbname=trips sslmode=disable", cfg.Database.DSN())
		assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
	})

	t.Run("reads overrides", func(t *testing.T) {
		setRequired(t)
		t.Setenv("S3_BUCKET", "reports-archive")
		t.Setenv("OPENAI_API_KEY", "sk-test")
		t.Setenv("RATE_LIMIT_REQUESTS_PER_MIN", "5")

		cfg, err := config.Load()

		require.NoError(t, err)
		assert.True(t, cfg.S3.Enabled())
		assert.Equal(t, "sk-test", cfg.AI.APIKey)
		assert.Equal(t, 5, cfg.RateLimit.RequestsPerMin)
	})

	t.Run("fails without required values", func(t *testing.T) {
		for _, key := range []string{"DB_USER", "DB_PASSWORD", "DB_NAME", "JWT_SECRET_KEY"} {
			t.Setenv(key, "")
			require.NoError(t, os.Unsetenv(key))
		}

		_, err := config.Load()

		assert.Error(t, err)
	})
}
