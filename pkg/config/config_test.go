package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWTAccessExpiry)
	assert.Equal(t, "587", cfg.SMTPPort)
	assert.NotEmpty(t, cfg.DashboardURL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_ACCESS_EXPIRY", "30m")
	t.Setenv("GOOGLE_AI_API_KEY", "env-key")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.JWTAccessExpiry)
	assert.Equal(t, "env-key", cfg.GoogleAIAPIKey)
}

func TestLoad_BadExpiryFallsBack(t *testing.T) {
	t.Setenv("JWT_ACCESS_EXPIRY", "soon")

	cfg := Load()
	assert.Equal(t, 24*time.Hour, cfg.JWTAccessExpiry)
}
