package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.JWT.AccessTTL != 30*time.Minute {
		t.Fatalf("expected 30m access TTL, got %s", cfg.JWT.AccessTTL)
	}
	if cfg.JWT.RefreshTTL != 24*time.Hour {
		t.Fatalf("expected 24h refresh TTL, got %s", cfg.JWT.RefreshTTL)
	}
	if cfg.Postgres.MigrationsDir != "migrations" {
		t.Fatalf("expected default migrations dir, got %s", cfg.Postgres.MigrationsDir)
	}
	if cfg.MediaBaseURL != "/media" {
		t.Fatalf("expected default media base url, got %s", cfg.MediaBaseURL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("JWT_ACCESS_TTL", "15m")
	t.Setenv("REDIS_ADDR", "redis:6380")
	t.Setenv("BCRYPT_COST", "12")

	cfg := Load()

	if cfg.Port != "9999" {
		t.Fatalf("expected port override, got %s", cfg.Port)
	}
	if cfg.JWT.AccessTTL != 15*time.Minute {
		t.Fatalf("expected 15m access TTL, got %s", cfg.JWT.AccessTTL)
	}
	if cfg.Redis.Addr != "redis:6380" {
		t.Fatalf("expected redis addr override, got %s", cfg.Redis.Addr)
	}
	if cfg.Password.BcryptCost != 12 {
		t.Fatalf("expected bcrypt cost override, got %d", cfg.Password.BcryptCost)
	}
}
