package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := Default()
	if cfg.ListenAddr() != def.ListenAddr() {
		t.Errorf("expected listen addr %q, got %q", def.ListenAddr(), cfg.ListenAddr())
	}
	if cfg.DraftTTL != def.DraftTTL {
		t.Errorf("expected draft ttl %s, got %s", def.DraftTTL, cfg.DraftTTL)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "livectl-lintd.yaml", `
address: 0.0.0.0
port: "9000"
redis_address: redis:6379
redis_db: 2
draft_ttl: 90m
rate_limit_rps: 5
rate_limit_burst: 10
batch_concurrency: 3
strict_enums: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ListenAddr() != "0.0.0.0:9000" {
		t.Errorf("expected 0.0.0.0:9000, got %q", cfg.ListenAddr())
	}
	if cfg.RedisAddr != "redis:6379" || cfg.RedisDB != 2 {
		t.Errorf("unexpected redis settings %q/%d", cfg.RedisAddr, cfg.RedisDB)
	}
	if cfg.DraftTTL != 90*time.Minute {
		t.Errorf("expected 90m, got %s", cfg.DraftTTL)
	}
	if cfg.BatchConcurrency != 3 || !cfg.StrictEnums {
		t.Errorf("unexpected batch/strict settings %d/%v", cfg.BatchConcurrency, cfg.StrictEnums)
	}
	// Untouched keys keep their defaults.
	if cfg.MaxConcurrentRequests != Default().MaxConcurrentRequests {
		t.Errorf("expected default max concurrent requests, got %d", cfg.MaxConcurrentRequests)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeFile(t, "livectl-lintd.yaml", "port: \"9000\"\n")
	t.Setenv("LIVECTL_PORT", "9100")
	t.Setenv("LIVECTL_DRAFT_TTL", "2h")
	t.Setenv("LIVECTL_STRICT_ENUMS", "true")
	t.Setenv("LIVECTL_BATCH_CONCURRENCY", "not-a-number")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9100" {
		t.Errorf("expected env port 9100, got %q", cfg.Port)
	}
	if cfg.DraftTTL != 2*time.Hour {
		t.Errorf("expected 2h, got %s", cfg.DraftTTL)
	}
	if !cfg.StrictEnums {
		t.Error("expected strict enums from env")
	}
	if cfg.BatchConcurrency != Default().BatchConcurrency {
		t.Errorf("invalid int should fall back, got %d", cfg.BatchConcurrency)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad yaml", "port: [\n"},
		{"zero ttl", "draft_ttl: 0s\n"},
		{"negative burst", "rate_limit_burst: -1\n"},
		{"zero concurrency", "batch_concurrency: 0\n"},
		{"unknown draft store", "draft_store: etcd\n"},
		{"redis without address", "draft_store: redis\nredis_address: \"\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeFile(t, "c.yaml", tt.body)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("LIVECTL_TEST_FLOAT", "2.5")
	t.Setenv("LIVECTL_TEST_BOOL", "nope")

	if got := GetEnvFloat("LIVECTL_TEST_FLOAT", 1); got != 2.5 {
		t.Errorf("expected 2.5, got %v", got)
	}
	if got := GetEnvBool("LIVECTL_TEST_BOOL", true); !got {
		t.Error("invalid bool should fall back to true")
	}
	if got := GetEnv("LIVECTL_TEST_UNSET", "x"); got != "x" {
		t.Errorf("expected fallback x, got %q", got)
	}
}
