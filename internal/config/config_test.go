package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GIN_MODE", "")
	t.Setenv("PORT", "")
	t.Setenv("TOKEN_TTL", "")
	t.Setenv("DB_MAX_OPEN_CONNS", "")
	t.Setenv("DB_CONN_MAX_LIFETIME", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "fitdesk_session", cfg.CookieName)
	assert.Equal(t, 7*24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 5, cfg.LoginRateBurst)
	assert.Equal(t, 20, cfg.DBMaxOpenConns)
	assert.Equal(t, 30*time.Minute, cfg.DBConnMaxLifetime)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("TOKEN_TTL", "12h")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("LOGIN_RATE_RPS", "2.5")
	t.Setenv("TWILIO_PHONE_NUMBER", "+15550001111")
	t.Setenv("ADMIN_EMAIL", "root@fitdesk.me")
	t.Setenv("CRON_SCHEDULE", "30 2 * * *")
	t.Setenv("DB_MAX_OPEN_CONNS", "50")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 12*time.Hour, cfg.TokenTTL)
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, 2.5, cfg.LoginRateRPS)
	assert.Equal(t, "+15550001111", cfg.TwilioPhoneNumber)
	assert.Equal(t, "root@fitdesk.me", cfg.AdminEmail)
	assert.Equal(t, "Platform Admin", cfg.AdminName)
	assert.Equal(t, "30 2 * * *", cfg.CronSchedule)
	assert.Equal(t, 50, cfg.DBMaxOpenConns)
}

func TestLoad_ReleaseRequiresSecret(t *testing.T) {
	t.Setenv("GIN_MODE", "release")
	t.Setenv("JWT_SECRET", "")

	cfg, err := Load()
	assert.ErrorIs(t, err, ErrInsecureJWTSecret)
	assert.Nil(t, cfg)

	t.Setenv("JWT_SECRET", "a-real-secret")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "a-real-secret", cfg.JWTSecret)
}

func TestGetEnv_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("LOGIN_RATE_BURST", "many")
	assert.Equal(t, 5, getInt("LOGIN_RATE_BURST", 5))

	t.Setenv("TOKEN_TTL", "forever")
	assert.Equal(t, time.Hour, getDuration("TOKEN_TTL", time.Hour))
}
