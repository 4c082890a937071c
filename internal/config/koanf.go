package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/game-analytics/config.yaml",
}

const ConfigPathEnvVar = "CONFIG_PATH"

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            3000,
			ReadTimeout:     15 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Backend: BackendConfig{
			BaseURL:        "http://localhost:8080",
			Timeout:        10 * time.Second,
			RateLimitRPS:   50,
			RateLimitBurst: 20,
			Breaker: BreakerConfig{
				MaxRequests:         1,
				Interval:            time.Minute,
				Timeout:             30 * time.Second,
				ConsecutiveFailures: 5,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Cache: CacheConfig{
			OptionsTTL:  5 * time.Minute,
			OptionsSize: 256,
		},
		Ingest: IngestConfig{
			Header:       "X-API-KEY",
			DedupeWindow: 10 * time.Minute,
			DedupeSize:   100000,
			Output:       "stdout",
			MaxBulk:      1000,
		},
	}
}

// Load layers defaults, the config file and the environment, then validates.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

var envMappings = map[string]string{
	"http_host":                "server.host",
	"http_port":                "server.port",
	"http_read_timeout":        "server.read_timeout",
	"shutdown_timeout":         "server.shutdown_timeout",
	"backend_base_url":         "backend.base_url",
	"backend_token":            "backend.token",
	"backend_timeout":          "backend.timeout",
	"backend_rate_limit_rps":   "backend.rate_limit_rps",
	"backend_rate_limit_burst": "backend.rate_limit_burst",
	"breaker_max_requests":     "backend.breaker.max_requests",
	"breaker_interval":         "backend.breaker.interval",
	"breaker_timeout":          "backend.breaker.timeout",
	"breaker_failures":         "backend.breaker.consecutive_failures",
	"log_level":                "logging.level",
	"log_format":               "logging.format",
	"log_caller":               "logging.caller",
	"options_cache_ttl":        "cache.options_ttl",
	"options_cache_size":       "cache.options_size",
	"ingest_api_key":           "ingest.api_key",
	"ingest_header":            "ingest.header",
	"ingest_dedupe_window":     "ingest.dedupe_window",
	"ingest_dedupe_size":       "ingest.dedupe_size",
	"ingest_output":            "ingest.output",
	"ingest_max_bulk":          "ingest.max_bulk",
}

// envTransformFunc maps BACKEND_BASE_URL style names onto config paths.
// Unknown variables are ignored.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
