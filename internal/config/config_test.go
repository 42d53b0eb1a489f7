package config

import (
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"
)

func envFrom(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envFrom(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.APIBaseURL != "http://localhost:8080/api/v1" {
		t.Errorf("expected default base URL, got %q", cfg.APIBaseURL)
	}
	if cfg.ForceMock {
		t.Error("expected ForceMock to default to false")
	}
	if cfg.FallbackDelay != 500*time.Millisecond {
		t.Errorf("expected 500ms fallback delay, got %v", cfg.FallbackDelay)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Errorf("expected 10s request timeout, got %v", cfg.RequestTimeout)
	}
	if cfg.LogLevel != zapcore.InfoLevel {
		t.Errorf("expected info level, got %v", cfg.LogLevel)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %q", cfg.Port)
	}
	if cfg.DBDriver != "sqlite" || cfg.DBPath != "wallet.db" {
		t.Errorf("expected sqlite wallet.db, got %s %s", cfg.DBDriver, cfg.DBPath)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(envFrom(map[string]string{
		"WALLET_API_BASE_URL":   "https://mock.example.com/api/v1/",
		"WALLET_API_KEY":        "secret",
		"WALLET_FORCE_MOCK":     "1",
		"WALLET_FALLBACK_DELAY": "0s",
		"REQUEST_TIMEOUT":       "2s",
		"LOG_LEVEL":             "DEBUG",
		"DB_DRIVER":             "Postgres",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.APIBaseURL != "https://mock.example.com/api/v1" {
		t.Errorf("expected trailing slash trimmed, got %q", cfg.APIBaseURL)
	}
	if cfg.APIKey != "secret" {
		t.Errorf("expected api key, got %q", cfg.APIKey)
	}
	if !cfg.ForceMock {
		t.Error("expected ForceMock true")
	}
	if cfg.FallbackDelay != 0 {
		t.Errorf("expected zero delay, got %v", cfg.FallbackDelay)
	}
	if cfg.RequestTimeout != 2*time.Second {
		t.Errorf("expected 2s timeout, got %v", cfg.RequestTimeout)
	}
	if cfg.LogLevel != zapcore.DebugLevel {
		t.Errorf("expected debug level, got %v", cfg.LogLevel)
	}
	if cfg.DBDriver != "postgres" {
		t.Errorf("expected postgres driver, got %q", cfg.DBDriver)
	}
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"bad log level", map[string]string{"LOG_LEVEL": "loud"}, "LOG_LEVEL"},
		{"bad force mock", map[string]string{"WALLET_FORCE_MOCK": "maybe"}, "WALLET_FORCE_MOCK"},
		{"negative delay", map[string]string{"WALLET_FALLBACK_DELAY": "-1s"}, "must not be negative"},
		{"zero timeout", map[string]string{"REQUEST_TIMEOUT": "0s"}, "must be positive"},
		{"unparseable timeout", map[string]string{"REQUEST_TIMEOUT": "soon"}, "REQUEST_TIMEOUT"},
		{"relative base url", map[string]string{"WALLET_API_BASE_URL": "not a url"}, "WALLET_API_BASE_URL"},
		{"unknown driver", map[string]string{"DB_DRIVER": "mysql"}, "DB_DRIVER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromEnv(envFrom(tt.env))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestPostgresURL(t *testing.T) {
	cfg := &Config{DBUser: "wallet", DBPassword: "p@ss", DBHost: "db", DBPort: "5432", DBName: "wallet", DBSSLMode: "disable"}
	got := cfg.PostgresURL()
	want := "postgres://wallet:p%40ss@db:5432/wallet?sslmode=disable"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
