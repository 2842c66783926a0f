package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredSecrets(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-jwt-secret")
	t.Setenv("EMAIL_VERIFICATION_SECRET", "test-email-secret")
	t.Setenv("ADMIN_SECRET", "test-admin-secret")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredSecrets(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "token", cfg.AuthCookieName)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, "user-account-service", cfg.JWTIssuer)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.False(t, cfg.IsProduction)
}

func TestLoadConfig_MissingSecrets(t *testing.T) {
	cases := []struct {
		name    string
		missing string
	}{
		{"jwt secret", "JWT_SECRET"},
		{"email verification secret", "EMAIL_VERIFICATION_SECRET"},
		{"admin secret", "ADMIN_SECRET"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			setRequiredSecrets(t)
			t.Setenv(tc.missing, "")

			_, err := LoadConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.missing)
		})
	}
}

func TestEmailTokenIssuer(t *testing.T) {
	cfg := &Config{JWTIssuer: "user-account-service"}
	assert.Equal(t, "user-account-service/email-verification", cfg.EmailTokenIssuer())
}

func TestLoadConfig_InvalidExpiryFallsBack(t *testing.T) {
	setRequiredSecrets(t)
	t.Setenv("JWT_EXPIRY_DURATION", "not-a-duration")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiryDuration)
}
