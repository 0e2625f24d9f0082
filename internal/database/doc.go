// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

// Package database executes analytic queries against DuckDB or MotherDuck.
//
// # Overview
//
// The Executor is the single gateway to the analytic engine. Metric templates
// hand it finished SQL with bound arguments and receive a QueryResult whose
// rows are column-keyed maps of plain Go values.
//
// # Architecture
//
//   - executor.go: Execute, Exec, Ping, Close and the per-call pipeline
//   - connection.go: lazy connector, session settings, pool, reset on loss
//   - breaker.go: sony/gobreaker circuit breaker with Prometheus state
//   - normalize.go: driver value normalization (HUGEINT, DECIMAL, LIST, MAP)
//   - result.go: QueryResult, Options and row accessors
//   - errors.go: QueryError and sentinel errors
//
// # Call Pipeline
//
// Each Execute call runs:
//
//	cache lookup (when Options.Cacheable)
//	  -> rate limiter wait (database.max_queries_per_second)
//	  -> circuit breaker
//	  -> context.WithTimeout(database.query_timeout)
//	  -> QueryContext + scan + normalize
//	  -> metrics + query log
//
// Timeouts, breaker rejections and cancelled throttle waits wrap
// ErrUpstreamUnavailable, which the HTTP layer maps to 503. Every other
// failure is a *QueryError mapped to 500.
//
// # Connection Handling
//
// The *sql.DB handle is created on first use from duckdb.NewConnector. For
// "md:" DSNs each new connection runs:
//
//	SET enable_http_metadata_cache=true
//	SET http_timeout=<database.http_timeout_ms>
//	SET http_keep_alive=true
//	SET http_retries=<database.http_retries>
//
// Connection-class errors close and drop the handle so the next call
// reconnects. The failing query is not retried.
//
// # Example
//
//	exec := database.NewExecutor(cfg.Database, cache.NewMemory[*database.QueryResult](), cfg.Cache.TTL())
//	defer exec.Close()
//
//	res, err := exec.Execute(ctx,
//	    `SELECT year, COUNT(DISTINCT dish_id) AS dishes FROM ingredient_details
//	     WHERE ingredient_name ILIKE ? ESCAPE '\' GROUP BY year`,
//	    []any{query.ContainsPattern("matcha")},
//	    database.Options{Template: "trend_years", Cacheable: true})
//	for _, row := range res.Rows {
//	    fmt.Println(database.Int(row, "year"), database.Int64(row, "dishes"))
//	}
package database
