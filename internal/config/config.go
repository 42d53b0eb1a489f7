// Package config loads wallet configuration from the environment and an
// optional .env file.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// Config holds application configuration shared by the CLI, the API server
// and the migration runner.
type Config struct {
	Env      string
	LogLevel zapcore.Level

	// Wallet data layer
	APIBaseURL     string
	APIKey         string
	ForceMock      bool
	FallbackDelay  time.Duration
	RequestTimeout time.Duration
	SeedFile       string

	// Server
	Port string

	// Database
	DBDriver   string
	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
}

// Load reads the .env file if present, then environment variables, and
// validates the result.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from the given lookup function. Load uses
// os.Getenv; tests pass a map-backed lookup.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, defaultValue string) string {
		if value := getenv(key); value != "" {
			return value
		}
		return defaultValue
	}

	cfg := &Config{
		Env:        get("ENV", "development"),
		APIBaseURL: strings.TrimRight(get("WALLET_API_BASE_URL", "http://localhost:8080/api/v1"), "/"),
		APIKey:     getenv("WALLET_API_KEY"),
		SeedFile:   getenv("WALLET_SEED_FILE"),

		Port: get("PORT", "8080"),

		DBDriver:   strings.ToLower(get("DB_DRIVER", "sqlite")),
		DBPath:     get("DB_PATH", "wallet.db"),
		DBHost:     get("DB_HOST", "localhost"),
		DBPort:     get("DB_PORT", "5432"),
		DBUser:     get("DB_USER", "wallet"),
		DBPassword: get("DB_PASSWORD", "wallet"),
		DBName:     get("DB_NAME", "wallet"),
		DBSSLMode:  get("DB_SSLMODE", "disable"),
	}

	level, err := parseLogLevel(getenv("LOG_LEVEL"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	if _, err := url.ParseRequestURI(cfg.APIBaseURL); err != nil {
		return nil, fmt.Errorf("invalid WALLET_API_BASE_URL %q: %w", cfg.APIBaseURL, err)
	}

	forceMock, err := parseBool(getenv("WALLET_FORCE_MOCK"), false)
	if err != nil {
		return nil, fmt.Errorf("invalid WALLET_FORCE_MOCK value: %w", err)
	}
	cfg.ForceMock = forceMock

	delay, err := parseDuration("WALLET_FALLBACK_DELAY", getenv("WALLET_FALLBACK_DELAY"), 500*time.Millisecond, true)
	if err != nil {
		return nil, err
	}
	cfg.FallbackDelay = delay

	timeout, err := parseDuration("REQUEST_TIMEOUT", getenv("REQUEST_TIMEOUT"), 10*time.Second, false)
	if err != nil {
		return nil, err
	}
	cfg.RequestTimeout = timeout

	switch cfg.DBDriver {
	case "sqlite", "postgres":
	default:
		return nil, fmt.Errorf("invalid DB_DRIVER %q: must be sqlite or postgres", cfg.DBDriver)
	}

	return cfg, nil
}

// PostgresDSN returns the gorm-style key/value PostgreSQL connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// PostgresURL returns the URL form of the PostgreSQL connection, as expected
// by golang-migrate.
func (c *Config) PostgresURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.DBSSLMode),
	}
	return u.String()
}

func parseLogLevel(s string) (zapcore.Level, error) {
	if s == "" {
		return zapcore.InfoLevel, nil
	}
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q: must be debug, info, warn, or error", s)
	}
}

func parseDuration(name, s string, defaultVal time.Duration, allowZero bool) (time.Duration, error) {
	if s == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s must not be negative, got %v", name, d)
	}
	if d == 0 && !allowZero {
		return 0, fmt.Errorf("%s must be positive, got %v", name, d)
	}
	return d, nil
}

func parseBool(s string, defaultVal bool) (bool, error) {
	if s == "" {
		return defaultVal, nil
	}
	switch strings.ToLower(s) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("must be true, false, 1, or 0, got %q", s)
	}
}
