// Package config loads service configuration from struct defaults, an
// optional YAML file and environment variables, in that order.
package config

import (
	"net"
	"strconv"
	"time"
)

type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Backend BackendConfig `koanf:"backend"`
	Logging LoggingConfig `koanf:"logging"`
	Cache   CacheConfig   `koanf:"cache"`
	Ingest  IngestConfig  `koanf:"ingest"`
}

type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gte=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// BackendConfig describes the analytics API the dashboards read from.
type BackendConfig struct {
	BaseURL string        `koanf:"base_url" validate:"required,url"`
	Token   string        `koanf:"token"`
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`
	// RateLimitRPS of 0 disables client-side throttling.
	RateLimitRPS   float64       `koanf:"rate_limit_rps" validate:"gte=0"`
	RateLimitBurst int           `koanf:"rate_limit_burst" validate:"min=1"`
	Breaker        BreakerConfig `koanf:"breaker"`
}

type BreakerConfig struct {
	MaxRequests uint32        `koanf:"max_requests" validate:"min=1"`
	Interval    time.Duration `koanf:"interval" validate:"gte=0"`
	Timeout     time.Duration `koanf:"timeout" validate:"gt=0"`
	// ConsecutiveFailures trips the breaker.
	ConsecutiveFailures uint32 `koanf:"consecutive_failures" validate:"min=1"`
}

type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn warning error fatal panic disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

type CacheConfig struct {
	OptionsTTL  time.Duration `koanf:"options_ttl" validate:"gte=0"`
	OptionsSize int           `koanf:"options_size" validate:"min=1"`
}

// IngestConfig drives the /logEvent endpoints.
type IngestConfig struct {
	// APIKey empty disables the key check.
	APIKey       string        `koanf:"api_key"`
	Header       string        `koanf:"header" validate:"required"`
	DedupeWindow time.Duration `koanf:"dedupe_window" validate:"gt=0"`
	DedupeSize   int           `koanf:"dedupe_size" validate:"min=1"`
	// Output is "stdout", "stderr" or a file path appended to.
	Output  string `koanf:"output" validate:"required"`
	MaxBulk int    `koanf:"max_bulk" validate:"min=1"`
}

// Addr is the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
