package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env, got %s", cfg.Env)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level, got %s", cfg.LogLevel)
	}
	if cfg.DatabaseURL != "" {
		t.Fatalf("expected empty database url, got %s", cfg.DatabaseURL)
	}
	if cfg.CORSAllowedOrigins != nil {
		t.Fatalf("expected no CORS origins, got %v", cfg.CORSAllowedOrigins)
	}
	if cfg.DashboardCacheTTL != 30*time.Second {
		t.Fatalf("expected default cache ttl, got %s", cfg.DashboardCacheTTL)
	}
	if cfg.RateLimitRPS != 0 {
		t.Fatalf("expected rate limiting off by default, got %v", cfg.RateLimitRPS)
	}
	if cfg.RateLimitBurst != 20 {
		t.Fatalf("expected default burst, got %d", cfg.RateLimitBurst)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DATABASE_URL", "postgres://user@host/clinic")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_TLS", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.clinic.test, https://staging.clinic.test")
	t.Setenv("DASHBOARD_CACHE_TTL", "2m")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "5")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected overridden port, got %s", cfg.Port)
	}
	if cfg.Env != "production" {
		t.Fatalf("expected overridden env, got %s", cfg.Env)
	}
	if cfg.DatabaseURL != "postgres://user@host/clinic" {
		t.Fatalf("unexpected database url %s", cfg.DatabaseURL)
	}
	if !cfg.RedisTLS {
		t.Fatalf("expected redis tls enabled")
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://staging.clinic.test" {
		t.Fatalf("unexpected CORS origins %v", cfg.CORSAllowedOrigins)
	}
	if cfg.DashboardCacheTTL != 2*time.Minute {
		t.Fatalf("expected 2m cache ttl, got %s", cfg.DashboardCacheTTL)
	}
	if cfg.RateLimitRPS != 2.5 {
		t.Fatalf("expected 2.5 rps, got %v", cfg.RateLimitRPS)
	}
	if cfg.RateLimitBurst != 5 {
		t.Fatalf("expected burst 5, got %d", cfg.RateLimitBurst)
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("REDIS_TLS", "not-a-bool")
	t.Setenv("DASHBOARD_CACHE_TTL", "soon")
	t.Setenv("RATE_LIMIT_RPS", "plenty")
	cfg := Load()
	if cfg.RedisTLS {
		t.Fatalf("expected invalid bool to fall back to false")
	}
	if cfg.DashboardCacheTTL != 30*time.Second {
		t.Fatalf("expected invalid duration to fall back, got %s", cfg.DashboardCacheTTL)
	}
	if cfg.RateLimitRPS != 0 {
		t.Fatalf("expected invalid rps to fall back, got %v", cfg.RateLimitRPS)
	}
}
