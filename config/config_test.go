package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestLoad_Defaults tests configuration defaults with a clean environment.
func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 100, cfg.Server.RateLimit)
	assert.Equal(t, time.Minute, cfg.Server.RateWindow)
	assert.True(t, cfg.Server.EnableIdempotency)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "America/Toronto", cfg.Schedule.Timezone)

	assert.False(t, cfg.Auth.APIKeyEnabled)
	assert.Nil(t, cfg.Auth.APIKeys)
	assert.Empty(t, cfg.Auth.StaffJWTSecret)

	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
	assert.Equal(t, "fulfillment_service", cfg.Database.DatabaseName)
	assert.Equal(t, 5, cfg.Database.CircuitBreakerFailureThreshold)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Pretty)
}

// TestLoad_Overrides tests environment variable overrides.
func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("RATE_LIMIT", "25")
	t.Setenv("RATE_WINDOW", "30s")
	t.Setenv("SCHEDULE_TIMEZONE", "America/Montreal")
	t.Setenv("API_KEY_AUTH_ENABLED", "true")
	t.Setenv("API_KEYS", "key-a, key-b,")
	t.Setenv("STAFF_JWT_SECRET", "secret")
	t.Setenv("MONGODB_ENABLED", "true")
	t.Setenv("MONGODB_DATABASE", "orders_test")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_PRETTY", "true")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 25, cfg.Server.RateLimit)
	assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
	assert.Equal(t, "America/Montreal", cfg.Schedule.Timezone)
	assert.True(t, cfg.Auth.APIKeyEnabled)
	assert.Equal(t, map[string]bool{"key-a": true, "key-b": true}, cfg.Auth.APIKeys)
	assert.Equal(t, "secret", cfg.Auth.StaffJWTSecret)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, "orders_test", cfg.Database.DatabaseName)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Pretty)
}

// TestLoad_InvalidValuesFallBack tests that malformed values keep defaults.
func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT", "not-a-number")
	t.Setenv("RATE_WINDOW", "soon")
	t.Setenv("MONGODB_ENABLED", "maybe")

	cfg := Load()

	assert.Equal(t, 100, cfg.Server.RateLimit)
	assert.Equal(t, time.Minute, cfg.Server.RateWindow)
	assert.False(t, cfg.Database.Enabled)
}

// TestParseCORSOrigins tests origin list parsing.
func TestParseCORSOrigins(t *testing.T) {
	t.Run("empty keeps local defaults", func(t *testing.T) {
		origins := parseCORSOrigins("")
		assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, origins)
	})

	t.Run("configured origins are appended", func(t *testing.T) {
		origins := parseCORSOrigins("https://lavalbakery.example, https://staff.lavalbakery.example")
		assert.Contains(t, origins, "https://lavalbakery.example")
		assert.Contains(t, origins, "https://staff.lavalbakery.example")
		assert.Contains(t, origins, "http://localhost:3000")
	})
}
