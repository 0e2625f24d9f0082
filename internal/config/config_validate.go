// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tomtom215/flavorlens/internal/logging"
)

// tableNamePattern restricts the source table to a plain (optionally
// schema-qualified) identifier, since it is interpolated into SQL.
var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*$`)

// Validate checks that configuration values are usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateDatabase(); err != nil {
		return err
	}
	if err := c.validateCache(); err != nil {
		return err
	}
	if err := c.validateAnalytics(); err != nil {
		return err
	}
	if err := c.validateCORS(); err != nil {
		return err
	}
	if err := c.validateRateLimit(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 || c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server timeouts must be positive")
	}
	return nil
}

func (c *Config) validateDatabase() error {
	if strings.TrimSpace(c.Database.URL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if !tableNamePattern.MatchString(c.Database.Table) {
		return fmt.Errorf("database.table %q is not a valid identifier", c.Database.Table)
	}
	if c.Database.QueryTimeout <= 0 {
		return fmt.Errorf("database.query_timeout must be positive, got %v", c.Database.QueryTimeout)
	}
	if c.Database.HTTPTimeoutMS <= 0 {
		return fmt.Errorf("database.http_timeout_ms must be positive, got %d", c.Database.HTTPTimeoutMS)
	}
	if c.Database.HTTPRetries < 0 {
		return fmt.Errorf("database.http_retries must not be negative, got %d", c.Database.HTTPRetries)
	}
	if c.Database.MaxQueriesPerSecond < 0 {
		return fmt.Errorf("database.max_queries_per_second must not be negative")
	}
	if c.Database.MaxQueriesPerSecond > 0 && c.Database.QueryBurst < 1 {
		return fmt.Errorf("database.query_burst must be at least 1 when rate limiting is enabled")
	}
	return c.validateBreaker()
}

func (c *Config) validateBreaker() error {
	b := c.Database.Breaker
	if b.Timeout <= 0 {
		return fmt.Errorf("database.breaker.timeout must be positive")
	}
	if b.FailureRatio <= 0 || b.FailureRatio > 1 {
		return fmt.Errorf("database.breaker.failure_ratio must be in (0, 1], got %v", b.FailureRatio)
	}
	return nil
}

func (c *Config) validateCache() error {
	switch c.Cache.Backend {
	case "memory", "badger":
	default:
		return fmt.Errorf("cache.backend must be one of memory, badger; got %q", c.Cache.Backend)
	}
	if c.Cache.TTL() <= 0 {
		return fmt.Errorf("cache default TTL must be positive")
	}
	return nil
}

func (c *Config) validateAnalytics() error {
	a := c.Analytics
	if a.ReferenceYear != 0 && (a.ReferenceYear < 2000 || a.ReferenceYear > 2100) {
		return fmt.Errorf("analytics.reference_year must be 0 or between 2000 and 2100, got %d", a.ReferenceYear)
	}
	if a.TrendMaxPoints < 1 {
		return fmt.Errorf("analytics.trend_max_points must be at least 1")
	}
	if a.TrendStartYear < 1900 {
		return fmt.Errorf("analytics.trend_start_year must be 1900 or later")
	}
	return nil
}

func (c *Config) validateCORS() error {
	for _, origin := range c.CORS.Origins {
		if origin == "*" {
			if c.CORS.AllowCredentials {
				return fmt.Errorf("cors.origins cannot contain * when cors.allow_credentials is true")
			}
			continue
		}
		if err := validateOrigin(origin); err != nil {
			return err
		}
	}
	if c.CORS.MaxAge < 0 {
		return fmt.Errorf("cors.max_age must not be negative")
	}
	return nil
}

func (c *Config) validateRateLimit() error {
	if c.RateLimit.Disabled {
		return nil
	}
	if c.RateLimit.Requests < 1 {
		return fmt.Errorf("rate_limit.requests must be at least 1, got %d", c.RateLimit.Requests)
	}
	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("rate_limit.window must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("logging.level %q is not a valid level", c.Logging.Level)
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
