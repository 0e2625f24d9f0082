// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

/*
Package main is the entry point for the FlavorLens API server.

FlavorLens answers read-only analytics questions about a single ingredient
across recipe, menu and social dish data held in a DuckDB or MotherDuck
table: category and geographic distribution, adoption lifecycle, pairings,
seasonality and consumer attributes.

# Application Architecture

The server runs under a Suture v4 supervisor tree:

	RootSupervisor ("flavorlens")
	├── DataSupervisor ("data-layer")
	│   └── Cache stats sampler (when caching is enabled)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Initialization order:

 1. Configuration: Koanf v2 (defaults, optional YAML file, environment)
 2. Logging: zerolog, JSON or console
 3. Result cache: in-memory map or in-memory Badger
 4. Query executor: DuckDB with circuit breaker and query rate limit
 5. Analytics service and Chi router
 6. Supervisor tree and signal handling

# Configuration

Common environment variables:

	DATABASE_URL / MOTHERDUCK_TOKEN     engine location and credential
	DATABASE_TABLE                      dish table name
	HTTP_HOST / PORT                    listen address
	ENABLE_CACHING / DEFAULT_CACHE_TTL  result cache (TTL in milliseconds)
	CORS_ORIGINS                        comma-separated allowed origins
	LOG_LEVEL / LOG_FORMAT              logging

See internal/config for the full list.

# Shutdown

SIGINT or SIGTERM cancels the root context. The HTTP service drains in-flight
requests for up to the configured shutdown timeout, then the executor and
cache are closed.
*/
package main
