// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package config

import (
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"empty url", func(c *Config) { c.Database.URL = " " }, "DATABASE_URL"},
		{"table injection", func(c *Config) { c.Database.Table = "t; DROP TABLE x" }, "database.table"},
		{"schema qualified table", func(c *Config) { c.Database.Table = "main.ingredient_details" }, ""},
		{"zero query timeout", func(c *Config) { c.Database.QueryTimeout = 0 }, "query_timeout"},
		{"negative retries", func(c *Config) { c.Database.HTTPRetries = -1 }, "http_retries"},
		{"throttle without burst", func(c *Config) {
			c.Database.MaxQueriesPerSecond = 5
			c.Database.QueryBurst = 0
		}, "query_burst"},
		{"bad failure ratio", func(c *Config) { c.Database.Breaker.FailureRatio = 1.5 }, "failure_ratio"},
		{"unknown backend", func(c *Config) { c.Cache.Backend = "redis" }, "cache.backend"},
		{"reference year too old", func(c *Config) { c.Analytics.ReferenceYear = 1999 }, "reference_year"},
		{"reference year now", func(c *Config) { c.Analytics.ReferenceYear = 0 }, ""},
		{"wildcard with credentials", func(c *Config) { c.CORS.Origins = []string{"*"} }, "cors.origins"},
		{"wildcard without credentials", func(c *Config) {
			c.CORS.Origins = []string{"*"}
			c.CORS.AllowCredentials = false
		}, ""},
		{"origin with path", func(c *Config) { c.CORS.Origins = []string{"https://x.com/app"} }, "path"},
		{"origin bad scheme", func(c *Config) { c.CORS.Origins = []string{"ftp://x.com"} }, "scheme"},
		{"rate limit zero", func(c *Config) { c.RateLimit.Requests = 0 }, "rate_limit.requests"},
		{"rate limit disabled", func(c *Config) {
			c.RateLimit.Disabled = true
			c.RateLimit.Requests = 0
		}, ""},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  DatabaseConfig
		want string
	}{
		{"local file", DatabaseConfig{URL: "data.duckdb", MotherDuckToken: "x"}, "data.duckdb"},
		{"motherduck no token", DatabaseConfig{URL: "md:flavorlens"}, "md:flavorlens"},
		{"motherduck token", DatabaseConfig{URL: "md:flavorlens", MotherDuckToken: "a b"}, "md:flavorlens?motherduck_token=a+b"},
		{"existing query", DatabaseConfig{URL: "md:flavorlens?saas_mode=true", MotherDuckToken: "t"}, "md:flavorlens?saas_mode=true&motherduck_token=t"},
		{"token already present", DatabaseConfig{URL: "md:db?motherduck_token=y", MotherDuckToken: "t"}, "md:db?motherduck_token=y"},
	}
	for _, tt := range tests {
		if got := tt.cfg.DSN(); got != tt.want {
			t.Errorf("%s: DSN() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestAnalyticsConfig_CurrentYear(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if got := (AnalyticsConfig{ReferenceYear: 2024}).CurrentYear(now); got != 2024 {
		t.Errorf("CurrentYear = %d, want 2024", got)
	}
	if got := (AnalyticsConfig{}).CurrentYear(now); got != 2026 {
		t.Errorf("CurrentYear = %d, want 2026", got)
	}
}

func TestServerConfig_Addr(t *testing.T) {
	t.Parallel()

	if got := (ServerConfig{Host: "0.0.0.0", Port: 8000}).Addr(); got != "0.0.0.0:8000" {
		t.Errorf("Addr() = %q", got)
	}
}
