// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Config holds all application configuration.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for every setting
//  2. Config File: Optional YAML file (CONFIG_PATH, config.yaml, /etc/flavorlens/config.yaml)
//  3. Environment Variables: Override any mapped setting
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load config")
//	}
//	exec := database.NewExecutor(cfg.Database, resultCache)
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Cache     CacheConfig     `koanf:"cache"`
	Analytics AnalyticsConfig `koanf:"analytics"`
	CORS      CORSConfig      `koanf:"cors"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig holds analytic engine settings. URL is a DuckDB DSN; an "md:"
// prefix selects MotherDuck.
type DatabaseConfig struct {
	URL             string        `koanf:"url"`
	MotherDuckToken string        `koanf:"motherduck_token"`
	Table           string        `koanf:"table"`
	QueryTimeout    time.Duration `koanf:"query_timeout"`
	HTTPTimeoutMS   int           `koanf:"http_timeout_ms"` // MotherDuck http_timeout setting
	HTTPRetries     int           `koanf:"http_retries"`
	Threads         int           `koanf:"threads"` // 0 = engine default
	MaxMemory       string        `koanf:"max_memory"`

	// MaxQueriesPerSecond throttles engine round-trips (0 = unlimited).
	MaxQueriesPerSecond float64 `koanf:"max_queries_per_second"`
	QueryBurst          int     `koanf:"query_burst"`

	Breaker BreakerConfig `koanf:"breaker"`
}

// BreakerConfig configures the circuit breaker in front of the engine.
type BreakerConfig struct {
	MaxRequests  uint32        `koanf:"max_requests"` // trial requests allowed while half-open
	Interval     time.Duration `koanf:"interval"`
	Timeout      time.Duration `koanf:"timeout"` // open -> half-open delay
	MinRequests  uint32        `koanf:"min_requests"`
	FailureRatio float64       `koanf:"failure_ratio"`
}

// IsMotherDuck reports whether the DSN targets MotherDuck.
func (d DatabaseConfig) IsMotherDuck() bool {
	return strings.HasPrefix(d.URL, "md:")
}

// DSN returns the connection string with the MotherDuck token attached when
// one is configured and the URL does not already carry it.
func (d DatabaseConfig) DSN() string {
	if !d.IsMotherDuck() || d.MotherDuckToken == "" || strings.Contains(d.URL, "motherduck_token=") {
		return d.URL
	}
	sep := "?"
	if strings.Contains(d.URL, "?") {
		sep = "&"
	}
	return d.URL + sep + "motherduck_token=" + url.QueryEscape(d.MotherDuckToken)
}

// CacheConfig holds result cache settings
type CacheConfig struct {
	Enabled    bool          `koanf:"enabled"`
	DefaultTTL time.Duration `koanf:"default_ttl"`
	// DefaultTTLMillis overrides DefaultTTL when positive. It carries the
	// DEFAULT_CACHE_TTL environment variable, which is expressed in milliseconds.
	DefaultTTLMillis int64  `koanf:"default_ttl_ms"`
	Backend          string `koanf:"backend"` // memory or badger
}

// TTL returns the effective default time-to-live.
func (c CacheConfig) TTL() time.Duration {
	if c.DefaultTTLMillis > 0 {
		return time.Duration(c.DefaultTTLMillis) * time.Millisecond
	}
	return c.DefaultTTL
}

// AnalyticsConfig holds settings shared by the metric templates.
type AnalyticsConfig struct {
	// ReferenceYear is the "current" year C; the previous year is C-1.
	// Zero means the calendar year at request time.
	ReferenceYear  int `koanf:"reference_year"`
	TrendStartYear int `koanf:"trend_start_year"`
	TrendMaxPoints int `koanf:"trend_max_points"`
}

// CurrentYear resolves ReferenceYear against now.
func (a AnalyticsConfig) CurrentYear(now time.Time) int {
	if a.ReferenceYear > 0 {
		return a.ReferenceYear
	}
	return now.Year()
}

// CORSConfig holds cross-origin settings
type CORSConfig struct {
	Origins          []string `koanf:"origins"`
	AllowCredentials bool     `koanf:"allow_credentials"`
	MaxAge           int      `koanf:"max_age"` // seconds
}

// RateLimitConfig holds per-IP request limits for /api
type RateLimitConfig struct {
	Disabled bool          `koanf:"disabled"`
	Requests int           `koanf:"requests"`
	Window   time.Duration `koanf:"window"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from defaults, an optional YAML file and the
// environment, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
