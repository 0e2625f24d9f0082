// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

/*
Package config provides centralized configuration management for FlavorLens.

Configuration is layered with Koanf v2: built-in defaults, then an optional
YAML file, then environment variables.

# Environment Variables

Server:
  - HTTP_HOST, PORT (or HTTP_PORT): bind address (default 0.0.0.0:8000)
  - READ_TIMEOUT, WRITE_TIMEOUT, SHUTDOWN_TIMEOUT

Analytic engine:
  - DATABASE_URL: DuckDB DSN, "md:" prefix for MotherDuck (default md:flavorlens)
  - MOTHERDUCK_TOKEN: appended to MotherDuck DSNs as motherduck_token
  - DATABASE_TABLE: source table (default ingredient_details)
  - DATABASE_QUERY_TIMEOUT: per-query bound (default 30s)
  - MOTHERDUCK_HTTP_TIMEOUT_MS, MOTHERDUCK_HTTP_RETRIES
  - DATABASE_MAX_QUERIES_PER_SECOND: engine throttle (default 0 = off)

Result cache:
  - ENABLE_CACHING: true/false (default true)
  - DEFAULT_CACHE_TTL: milliseconds (default 3600000)
  - CACHE_BACKEND: memory or badger

Analytics:
  - REFERENCE_YEAR: the "current" year for year-over-year metrics (default 2024, 0 = now)

HTTP edge:
  - CORS_ORIGINS: comma-separated list
  - DISABLE_RATE_LIMIT, RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Example config.yaml

	server:
	  port: 8000
	database:
	  url: "md:flavorlens"
	  query_timeout: 30s
	  breaker:
	    timeout: 2m
	cache:
	  backend: badger
	  default_ttl: 1h
	analytics:
	  reference_year: 2024
*/
package config
