package config

import (
	"context"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.Store != StoreMemory {
		t.Fatalf("expected memory store, got %s", cfg.Store)
	}
	if !cfg.SeedData {
		t.Fatalf("expected seeding enabled by default")
	}
	if cfg.Auth.Issuer != "LegalApp" || cfg.Auth.Audience != "LegalApp" {
		t.Fatalf("unexpected issuer/audience: %+v", cfg.Auth)
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Fatalf("expected 24h token ttl, got %s", cfg.Auth.TokenTTL)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[0] != "http://localhost:3000" {
		t.Fatalf("unexpected CORS origins: %v", cfg.CORSOrigins)
	}
	if cfg.Redis.Addr != "" {
		t.Fatalf("expected redis disabled by default, got %q", cfg.Redis.Addr)
	}
	if cfg.Redis.PoolSize != 10 || cfg.Redis.ReadTimeout != 500*time.Millisecond || cfg.Redis.DialTimeout != 2*time.Second {
		t.Fatalf("unexpected redis defaults: %+v", cfg.Redis)
	}
	if !cfg.IsDevelopment() {
		t.Fatalf("expected development env by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_DRIVER", "mongo")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("SEED_DATA", "false")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("MONGO_DB", "legal_test")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" || cfg.Store != StoreMongo || cfg.SeedData {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Auth.TokenTTL != 30*time.Minute {
		t.Fatalf("expected TOKEN_TTL 30m, got %s", cfg.Auth.TokenTTL)
	}
	if cfg.Redis.Addr != "redis:6379" || cfg.Mongo.Database != "legal_test" {
		t.Fatalf("unexpected nested config: %+v %+v", cfg.Redis, cfg.Mongo)
	}
}

func TestLoad_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := Load(context.Background()); err == nil {
		t.Fatalf("expected error without JWT_SECRET")
	}
}

func TestLoad_RejectsUnknownStore(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("STORE_DRIVER", "cassandra")
	if _, err := Load(context.Background()); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}
