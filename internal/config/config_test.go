package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthConfigValidate(t *testing.T) {
	valid := AuthConfig{JWTSecret: "secret", TokenTTLMillis: 86400000}
	assert.NoError(t, valid.Validate())

	missing := AuthConfig{TokenTTLMillis: 1000}
	assert.Error(t, missing.Validate())

	for _, ttl := range []int64{0, -1} {
		bad := AuthConfig{JWTSecret: "secret", TokenTTLMillis: ttl}
		assert.Error(t, bad.Validate())
	}
}

func TestAuthConfigTokenTTL(t *testing.T) {
	cfg := AuthConfig{TokenTTLMillis: 86400000}
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL())
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(86400000), cfg.Auth.TokenTTLMillis)
	assert.Equal(t, "record_shop_token", cfg.Auth.CookieName)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL())
}

func TestLoadRejectsBadTTL(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")
	t.Setenv("AUTH_TOKEN_TTL_MILLIS", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsNonPositiveTTL(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")
	t.Setenv("AUTH_TOKEN_TTL_MILLIS", "0")

	_, err := Load()
	assert.Error(t, err)
}
