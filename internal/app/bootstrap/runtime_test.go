package bootstrap

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"

	appconfig "github.com/clinicpulse/outcomes-dashboard/internal/config"
	"github.com/clinicpulse/outcomes-dashboard/pkg/logging"
)

func TestBuildRedisClient_DisabledWithoutAddr(t *testing.T) {
	cfg := &appconfig.Config{}
	if client := BuildRedisClient(context.Background(), cfg, logging.Default(), false); client != nil {
		t.Fatalf("expected nil client without addr")
	}
	if client := BuildRedisClient(context.Background(), nil, nil, false); client != nil {
		t.Fatalf("expected nil client for nil config")
	}
}

func TestBuildRedisClient_VerifyPing(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := &appconfig.Config{RedisAddr: mr.Addr()}
	client := BuildRedisClient(context.Background(), cfg, logging.Default(), true)
	if client == nil {
		t.Fatalf("expected client for reachable redis")
	}

	addr := mr.Addr()
	mr.Close()
	cfg = &appconfig.Config{RedisAddr: addr}
	if client := BuildRedisClient(context.Background(), cfg, logging.Default(), true); client != nil {
		t.Fatalf("expected nil client when ping fails")
	}
}

func TestBuildRepositories_InMemoryFallback(t *testing.T) {
	repos, err := BuildRepositories(context.Background(), &appconfig.Config{}, logging.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer repos.Close()

	if repos.Outcomes == nil || repos.Doctors == nil {
		t.Fatalf("expected in-memory repositories")
	}
	if repos.Pool != nil {
		t.Fatalf("expected nil pool for in-memory stores")
	}
}
