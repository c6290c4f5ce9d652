package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKeys = []string{
	"PORT", "PUBLIC_BASE_URL", "ERROR_PAGE_URL", "TRUST_PROXY", "ADMIN_TOKEN", "REQUEST_TIMEOUT",
	"DB_URL", "DB_MAX_OPEN_CONNS", "SELECT_LOCK_TIMEOUT",
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "GROUP_CACHE_TTL",
	"CLICK_QUEUE_SIZE", "CLICK_BATCH_SIZE", "CLICK_FLUSH_INTERVAL",
	"GEOIP_DB_PATH",
	"CLICKHOUSE_ADDR", "CLICKHOUSE_USER", "CLICKHOUSE_PASSWORD", "CLICKHOUSE_DB",
	"TELEGRAM_API_TOKEN", "TELEGRAM_ALERT_CHAT_ID", "ALERT_COOLDOWN",
	"LOG_LEVEL", "LOG_FILE", "LOG_MAX_SIZE_MB", "LOG_MAX_BACKUPS", "LOG_MAX_AGE_DAYS",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_URL", "postgres://u:p@localhost:5432/db?sslmode=disable")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "http://localhost:8080", cfg.Server.PublicBaseURL)
	assert.Equal(t, "/error", cfg.Server.ErrorPageURL)
	assert.False(t, cfg.Server.TrustProxy)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 2*time.Second, cfg.Database.SelectLockTimeout)
	assert.Equal(t, 1000, cfg.Clicks.QueueSize)
	assert.Equal(t, 100, cfg.Clicks.BatchSize)
	assert.Equal(t, 5*time.Second, cfg.Clicks.FlushInterval)
	assert.Equal(t, "info", cfg.Log.Level)

	assert.False(t, cfg.Redis.Enabled)
	assert.False(t, cfg.GeoIP.Enabled)
	assert.False(t, cfg.ClickHouse.Enabled)
	assert.False(t, cfg.Telegram.Enabled)
}

func TestLoad_MissingDBURL(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	require.ErrorIs(t, err, ErrMissingEnv)
}

func TestLoad_OptionalBackends(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_URL", "postgres://localhost/db")
	t.Setenv("PUBLIC_BASE_URL", "https://go.example.com/")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("GROUP_CACHE_TTL", "45")
	t.Setenv("CLICKHOUSE_ADDR", "localhost:9000")
	t.Setenv("GEOIP_DB_PATH", "/data/GeoLite2-City.mmdb")
	t.Setenv("TELEGRAM_API_TOKEN", "token")
	t.Setenv("TELEGRAM_ALERT_CHAT_ID", "-100123")
	t.Setenv("ALERT_COOLDOWN", "1m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://go.example.com", cfg.Server.PublicBaseURL)

	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, 45*time.Second, cfg.Redis.GroupTTL)

	assert.True(t, cfg.ClickHouse.Enabled)
	assert.Equal(t, "default", cfg.ClickHouse.User)
	assert.Equal(t, "default", cfg.ClickHouse.Database)

	assert.True(t, cfg.GeoIP.Enabled)

	assert.True(t, cfg.Telegram.Enabled)
	assert.Equal(t, int64(-100123), cfg.Telegram.ChatID)
	assert.Equal(t, time.Minute, cfg.Telegram.Cooldown)
}

func TestLoad_InvalidTelegramChat(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_URL", "postgres://localhost/db")
	t.Setenv("TELEGRAM_API_TOKEN", "token")
	t.Setenv("TELEGRAM_ALERT_CHAT_ID", "ops-channel")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TELEGRAM_ALERT_CHAT_ID")
}

func TestLoad_RejectsNonPositiveQueue(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_URL", "postgres://localhost/db")
	t.Setenv("CLICK_QUEUE_SIZE", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CLICK_QUEUE_SIZE")
}

func TestGetEnvDuration(t *testing.T) {
	cases := []struct {
		raw  string
		want time.Duration
	}{
		{"", 7 * time.Second},
		{"1500ms", 1500 * time.Millisecond},
		{"3", 3 * time.Second},
		{"soon", 7 * time.Second},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			t.Setenv("X_DURATION", tc.raw)
			assert.Equal(t, tc.want, getEnvDuration("X_DURATION", 7*time.Second))
		})
	}
}

func TestGetEnvIntFallsBackOnGarbage(t *testing.T) {
	t.Setenv("X_INT", "abc")
	assert.Equal(t, 9, getEnvInt("X_INT", 9))
}
