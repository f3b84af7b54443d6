package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PGSQL_URL", "postgres://localhost/hhdcash")
	t.Setenv("JWT_EXPIRY_DURATION", "")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/hhdcash", cfg.DatabaseURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, "5-M", cfg.LoginRateLimit)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.SMTP.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_EXPIRY_DURATION", "2h")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://cash.example.com, ,https://admin.example.com")
	t.Setenv("TELEGRAM_CHAT_ID", "-100123")
	t.Setenv("SMTP_ENABLED", "true")
	t.Setenv("SMTP_HOST", "")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 2*time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, []string{"https://cash.example.com", "https://admin.example.com"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, int64(-100123), cfg.Telegram.ChatID)
	assert.False(t, cfg.SMTP.Enabled, "SMTP without a host must stay disabled")
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("JWT_SECRET", "")

	_, err := Load(nil)
	assert.Error(t, err)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("PGSQL_URL", "postgres://env/hhdcash")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("db", "", "")
	flags.String("session-file", "", "")
	require.NoError(t, flags.Parse([]string{"--db=postgres://flag/hhdcash", "--session-file=/tmp/s.json"}))

	cfg, err := Load(flags)
	require.NoError(t, err)
	assert.Equal(t, "postgres://flag/hhdcash", cfg.DatabaseURL)
	assert.Equal(t, "/tmp/s.json", cfg.SessionFile)
}
