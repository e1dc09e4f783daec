package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.HTTP.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.HTTP.Port)
	}
	if cfg.Database.Name != "ngo_website" {
		t.Fatalf("expected default db name, got %q", cfg.Database.Name)
	}
	if cfg.JWT.SessionTTL != 24*time.Hour {
		t.Fatalf("expected default session TTL 24h, got %v", cfg.JWT.SessionTTL)
	}
	if cfg.Outbox.SyncInterval != 30*time.Second {
		t.Fatalf("expected default outbox interval 30s, got %v", cfg.Outbox.SyncInterval)
	}
	if !cfg.Migrations.Enabled {
		t.Fatalf("expected migrations enabled by default")
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_NAME", "ngo_test")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("MAIL_ENABLED", "false")
	t.Setenv("OUTBOX_MAX_RETRY", "7")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if got := cfg.Address(); got != "127.0.0.1:9090" {
		t.Fatalf("expected address 127.0.0.1:9090, got %q", got)
	}
	if cfg.Database.Name != "ngo_test" {
		t.Fatalf("expected db name override, got %q", cfg.Database.Name)
	}
	if cfg.JWT.SessionTTL != time.Hour {
		t.Fatalf("expected session TTL 1h, got %v", cfg.JWT.SessionTTL)
	}
	if cfg.Mail.Enabled {
		t.Fatalf("expected mail disabled")
	}
	if cfg.Outbox.MaxRetry != 7 {
		t.Fatalf("expected max retry 7, got %d", cfg.Outbox.MaxRetry)
	}
}

func TestLoadBuildsPostgresURL(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_NAME", "ngo")
	t.Setenv("DB_USER", "svc")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_SSLMODE", "require")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	want := "postgres://svc:pw@db.internal:5433/ngo?sslmode=require"
	if cfg.Database.URL != want {
		t.Fatalf("expected %q, got %q", want, cfg.Database.URL)
	}
}

func TestLoadExplicitDatabaseURLWins(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@elsewhere:5432/other")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Database.URL != "postgres://u:p@elsewhere:5432/other" {
		t.Fatalf("expected explicit DATABASE_URL kept, got %q", cfg.Database.URL)
	}
}

func TestGetDurationAcceptsBareSeconds(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "12")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Context.RequestTimeout != 12*time.Second {
		t.Fatalf("expected 12s, got %v", cfg.Context.RequestTimeout)
	}
}
