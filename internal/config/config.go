package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Clicks     ClicksConfig
	GeoIP      GeoIPConfig
	ClickHouse ClickHouseConfig
	Telegram   TelegramConfig
	Log        LogConfig
}

type ServerConfig struct {
	Port           string
	PublicBaseURL  string
	ErrorPageURL   string
	TrustProxy     bool
	AdminToken     string
	RequestTimeout time.Duration
}

type DatabaseConfig struct {
	PostgresURL       string
	MaxOpenConns      int
	SelectLockTimeout time.Duration
}

type RedisConfig struct {
	Enabled  bool
	Address  string
	Password string
	DB       int
	GroupTTL time.Duration
}

type ClicksConfig struct {
	QueueSize     int
	BatchSize     int
	FlushInterval time.Duration
}

type GeoIPConfig struct {
	Enabled bool
	Path    string
}

type ClickHouseConfig struct {
	Enabled  bool
	Address  string
	User     string
	Password string
	Database string
}

type TelegramConfig struct {
	Enabled  bool
	Token    string
	ChatID   int64
	Cooldown time.Duration
}

type LogConfig struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

var ErrMissingEnv = errors.New("missing required env var")

// Load reads the configuration from the environment. Call godotenv.Load
// before it when a .env file should be honoured.
func Load() (*Config, error) {
	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("%w: DB_URL", ErrMissingEnv)
	}

	port := getEnv("PORT", "8080")
	cfg := &Config{
		Server: ServerConfig{
			Port:           port,
			PublicBaseURL:  strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:"+port), "/"),
			ErrorPageURL:   getEnv("ERROR_PAGE_URL", "/error"),
			TrustProxy:     getEnvBool("TRUST_PROXY", false),
			AdminToken:     os.Getenv("ADMIN_TOKEN"),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 5*time.Second),
		},
		Database: DatabaseConfig{
			PostgresURL:       dbURL,
			MaxOpenConns:      getEnvInt("DB_MAX_OPEN_CONNS", 25),
			SelectLockTimeout: getEnvDuration("SELECT_LOCK_TIMEOUT", 2*time.Second),
		},
		Redis: loadRedisConfig(),
		Clicks: ClicksConfig{
			QueueSize:     getEnvInt("CLICK_QUEUE_SIZE", 1000),
			BatchSize:     getEnvInt("CLICK_BATCH_SIZE", 100),
			FlushInterval: getEnvDuration("CLICK_FLUSH_INTERVAL", 5*time.Second),
		},
		GeoIP: GeoIPConfig{
			Path:    os.Getenv("GEOIP_DB_PATH"),
			Enabled: os.Getenv("GEOIP_DB_PATH") != "",
		},
		ClickHouse: loadClickHouseConfig(),
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			File:       os.Getenv("LOG_FILE"),
			MaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 100),
			MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 5),
			MaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 28),
		},
	}

	tg, err := loadTelegramConfig()
	if err != nil {
		return nil, err
	}
	cfg.Telegram = tg

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadRedisConfig() RedisConfig {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return RedisConfig{Enabled: false}
	}
	return RedisConfig{
		Enabled:  true,
		Address:  addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       getEnvInt("REDIS_DB", 0),
		GroupTTL: getEnvDuration("GROUP_CACHE_TTL", 30*time.Second),
	}
}

func loadClickHouseConfig() ClickHouseConfig {
	addr := os.Getenv("CLICKHOUSE_ADDR")
	if addr == "" {
		return ClickHouseConfig{Enabled: false}
	}
	return ClickHouseConfig{
		Enabled:  true,
		Address:  addr,
		User:     getEnv("CLICKHOUSE_USER", "default"),
		Password: os.Getenv("CLICKHOUSE_PASSWORD"),
		Database: getEnv("CLICKHOUSE_DB", "default"),
	}
}

func loadTelegramConfig() (TelegramConfig, error) {
	token := os.Getenv("TELEGRAM_API_TOKEN")
	rawChat := os.Getenv("TELEGRAM_ALERT_CHAT_ID")
	if token == "" || rawChat == "" {
		return TelegramConfig{Enabled: false}, nil
	}
	chatID, err := strconv.ParseInt(rawChat, 10, 64)
	if err != nil {
		return TelegramConfig{}, fmt.Errorf("invalid int for env TELEGRAM_ALERT_CHAT_ID: %s", rawChat)
	}
	return TelegramConfig{
		Enabled:  true,
		Token:    token,
		ChatID:   chatID,
		Cooldown: getEnvDuration("ALERT_COOLDOWN", 15*time.Minute),
	}, nil
}

func validate(cfg *Config) error {
	if cfg.Clicks.QueueSize <= 0 {
		return errors.New("CLICK_QUEUE_SIZE must be > 0")
	}
	if cfg.Clicks.BatchSize <= 0 {
		return errors.New("CLICK_BATCH_SIZE must be > 0")
	}
	if cfg.Clicks.FlushInterval <= 0 {
		return errors.New("CLICK_FLUSH_INTERVAL must be > 0")
	}
	if cfg.Database.SelectLockTimeout <= 0 {
		return errors.New("SELECT_LOCK_TIMEOUT must be > 0")
	}
	if cfg.Server.RequestTimeout <= 0 {
		return errors.New("REQUEST_TIMEOUT must be > 0")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvInt, getEnvBool and getEnvDuration fall back to the default on
// malformed values rather than refusing to start.
func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// getEnvDuration accepts Go durations ("1500ms", "2m") or plain seconds.
func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	return def
}
