package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_USER", "testuser")
		t.Setenv("DB_PASSWORD", "testpass")
		t.Setenv("DB_NAME", "testdb")
		t.Setenv("DB_PORT", "5432")
		t.Setenv("APP_PORT", "4444")
		t.Setenv("APP_ENV", "test")
		t.Setenv("APP_SECRET", "supersecret")
		t.Setenv("FRONTEND_URL", "http://localhost:7777")
		t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")

		cfg := LoadConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, "testuser", cfg.DBUser)
		assert.Equal(t, "testpass", cfg.DBPassword)
		assert.Equal(t, "testdb", cfg.DBName)
		assert.Equal(t, "5432", cfg.DBPort)
		assert.Equal(t, "4444", cfg.AppPort)
		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, "supersecret", cfg.AppSecret)
		assert.Equal(t, "http://localhost:7777", cfg.FrontendURL)
		assert.Equal(t, "sk_test_123", cfg.StripeSecretKey)
	})
}
