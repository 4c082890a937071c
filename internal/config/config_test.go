package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Fatalf("expected default port 3000, got %d", cfg.Server.Port)
	}
	if cfg.Backend.Timeout != 10*time.Second {
		t.Fatalf("expected default timeout 10s, got %v", cfg.Backend.Timeout)
	}
	if cfg.Ingest.Header != "X-API-KEY" {
		t.Fatalf("expected default ingest header, got %q", cfg.Ingest.Header)
	}
	if cfg.Server.Addr() != "0.0.0.0:3000" {
		t.Fatalf("unexpected addr %s", cfg.Server.Addr())
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  port: 9000
backend:
  base_url: "http://analytics.internal:8080"
  timeout: 3s
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "9100")
	t.Setenv("BREAKER_FAILURES", "2")
	t.Setenv("INGEST_DEDUPE_WINDOW", "90s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 9100 {
		t.Fatalf("env must override file, got port %d", cfg.Server.Port)
	}
	if cfg.Backend.BaseURL != "http://analytics.internal:8080" {
		t.Fatalf("unexpected base url %s", cfg.Backend.BaseURL)
	}
	if cfg.Backend.Timeout != 3*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.Backend.Timeout)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected level %s", cfg.Logging.Level)
	}
	if cfg.Backend.Breaker.ConsecutiveFailures != 2 {
		t.Fatalf("unexpected breaker failures %d", cfg.Backend.Breaker.ConsecutiveFailures)
	}
	if cfg.Ingest.DedupeWindow != 90*time.Second {
		t.Fatalf("unexpected dedupe window %v", cfg.Ingest.DedupeWindow)
	}
	if cfg.Cache.OptionsSize != 256 {
		t.Fatalf("defaults must survive, got %d", cfg.Cache.OptionsSize)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "")
	t.Setenv("BACKEND_BASE_URL", "not a url")
	t.Setenv("LOG_FORMAT", "xml")

	_, err := Load()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !strings.Contains(err.Error(), "BaseURL") || !strings.Contains(err.Error(), "Format") {
		t.Fatalf("expected both failing fields reported, got %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	if got := envTransformFunc("BACKEND_BASE_URL"); got != "backend.base_url" {
		t.Fatalf("unexpected mapping %q", got)
	}
	if got := envTransformFunc("PATH"); got != "" {
		t.Fatalf("unknown variables must be ignored, got %q", got)
	}
}
