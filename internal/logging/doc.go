// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

// Package logging provides centralized zerolog-based structured logging for FlavorLens.
//
// # Overview
//
// The package provides:
//   - Zero-allocation structured logging via zerolog
//   - JSON output for production, console output for development
//   - Request-scoped loggers carrying the HTTP request ID
//   - Query logging helpers that truncate SQL text to a bounded prefix
//   - slog adapter for Suture v4 integration
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Int("port", 8000).Msg("Server starting")
//	logging.Ctx(ctx).Warn().Err(err).Msg("Query failed")
//
// # Configuration
//
// The level, format and caller flags are read from the logging section of the
// application configuration (LOG_LEVEL, LOG_FORMAT, LOG_CALLER).
//
// # Query Logs
//
// Query text is never logged in full. LogQuery and TruncateQuery keep the first
// MaxQueryLogLength characters, which is enough to identify the template. Bound
// args are logged alongside so a failing query can be replayed.
//
// # Thread Safety
//
// The global logger is swapped atomically. Init may be called again at any
// time to reconfigure it.
package logging
