// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/flavorlens/internal/cache"
	"github.com/tomtom215/flavorlens/internal/config"
	"github.com/tomtom215/flavorlens/internal/logging"
	"github.com/tomtom215/flavorlens/internal/metrics"
)

const pingTimeout = 5 * time.Second

// Executor runs parameterized analytic queries against DuckDB or MotherDuck.
// It owns the shared connection handle, the circuit breaker, the optional
// query-rate limiter and the optional result cache. Safe for concurrent use.
type Executor struct {
	cfg config.DatabaseConfig

	mu     sync.Mutex
	db     *sql.DB
	closed bool

	breaker  *gobreaker.CircuitBreaker[*QueryResult]
	limiter  *rate.Limiter
	cache    cache.Cacher[*QueryResult]
	cacheTTL time.Duration
}

// NewExecutor creates an executor. The engine connection is opened lazily on
// the first call. resultCache may be nil to disable caching; ttl applies to
// cacheable calls that do not set their own.
func NewExecutor(cfg config.DatabaseConfig, resultCache cache.Cacher[*QueryResult], ttl time.Duration) *Executor {
	e := &Executor{
		cfg:      cfg,
		breaker:  newBreaker(cfg.Breaker),
		cache:    resultCache,
		cacheTTL: ttl,
	}
	if e.cfg.QueryTimeout <= 0 {
		e.cfg.QueryTimeout = 30 * time.Second
	}
	if e.cacheTTL <= 0 {
		e.cacheTTL = cache.DefaultTTL
	}
	if cfg.MaxQueriesPerSecond > 0 {
		burst := cfg.QueryBurst
		if burst < 1 {
			burst = 1
		}
		e.limiter = rate.NewLimiter(rate.Limit(cfg.MaxQueriesPerSecond), burst)
	}
	return e
}

// Execute runs query with bound args and returns the normalized rows. When
// opts.Cacheable is set and a cache is configured, a fresh cached result is
// returned with Cached=true instead of querying.
func (e *Executor) Execute(ctx context.Context, query string, args []any, opts Options) (*QueryResult, error) {
	if !opts.Cacheable || e.cache == nil {
		return e.run(ctx, query, args, opts.Template)
	}

	ttl := opts.TTL
	if ttl <= 0 {
		ttl = e.cacheTTL
	}
	key := cache.GenerateKey(query, args)

	res, cached, err := cache.GetOrCompute(ctx, e.cache, key, ttl, func(ctx context.Context) (*QueryResult, error) {
		return e.run(ctx, query, args, opts.Template)
	})
	if err != nil {
		return nil, err
	}
	if !cached {
		return res, nil
	}

	hit := *res
	hit.Cached = true
	logging.LogQuery(ctx, logging.QueryEvent{
		Template: opts.Template,
		Query:    query,
		Args:     args,
		Rows:     hit.RowCount,
		Cached:   true,
	})
	return &hit, nil
}

// run executes one engine round-trip and records its timing.
func (e *Executor) run(ctx context.Context, query string, args []any, template string) (*QueryResult, error) {
	start := time.Now()
	res, err := e.guarded(ctx, query, args)
	elapsed := time.Since(start)

	metrics.RecordDBQuery(template, elapsed, err)

	ev := logging.QueryEvent{Template: template, Query: query, Args: args, Duration: elapsed, Err: err}
	if res != nil {
		ev.Rows = res.RowCount
	}
	logging.LogQuery(ctx, ev)

	if err != nil {
		return nil, &QueryError{Op: "execute", Query: logging.TruncateQuery(query), Args: args, Err: err}
	}
	res.Duration = elapsed
	return res, nil
}

// guarded applies rate limiter, breaker and timeout around the query.
func (e *Executor) guarded(ctx context.Context, query string, args []any) (*QueryResult, error) {
	if e.limiter != nil {
		if err := e.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: query throttled: %w", ErrUpstreamUnavailable, err)
		}
	}

	res, err := e.breaker.Execute(func() (*QueryResult, error) {
		qctx, cancel := context.WithTimeout(ctx, e.cfg.QueryTimeout)
		defer cancel()
		return e.queryRows(qctx, query, args)
	})
	recordBreakerResult(err)

	switch {
	case err == nil:
		return res, nil
	case isBreakerRejection(err):
		return nil, fmt.Errorf("%w: %w", ErrCircuitOpen, err)
	case errors.Is(err, context.DeadlineExceeded):
		return nil, fmt.Errorf("%w: query timed out after %s: %w", ErrUpstreamUnavailable, e.cfg.QueryTimeout, err)
	default:
		return nil, err
	}
}

// queryRows runs the query and scans every row into a column-keyed map.
func (e *Executor) queryRows(ctx context.Context, query string, args []any) (*QueryResult, error) {
	db, err := e.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		if isConnectionError(err) {
			e.resetIfCurrent(db)
		}
		return nil, err
	}
	defer closeQuietly(rows)

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	result := &QueryResult{Columns: columns, Rows: make([]map[string]any, 0)}
	values := make([]any, len(columns))
	ptrs := make([]any, len(columns))
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		row := make(map[string]any, len(columns))
		for i, col := range columns {
			row[col] = normalizeValue(values[i])
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		if isConnectionError(err) {
			e.resetIfCurrent(db)
		}
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	result.RowCount = len(result.Rows)
	return result, nil
}

// Exec runs a statement that returns no rows, such as fixture setup or
// maintenance. It bypasses the cache, breaker and limiter.
func (e *Executor) Exec(ctx context.Context, stmt string, args ...any) error {
	db, err := e.conn()
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, stmt, args...); err != nil {
		return &QueryError{Op: "exec", Query: logging.TruncateQuery(stmt), Args: args, Err: err}
	}
	return nil
}

// Ping checks that the engine answers. Used by the readiness check.
func (e *Executor) Ping(ctx context.Context) error {
	db, err := e.conn()
	if err != nil {
		return err
	}
	pctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pctx); err != nil {
		if isConnectionError(err) {
			e.resetIfCurrent(db)
		}
		return fmt.Errorf("ping failed: %w", err)
	}
	return nil
}

// Close releases the engine connection. Later calls return ErrClosed.
func (e *Executor) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.closed = true
	if e.db == nil {
		return nil
	}
	err := e.db.Close()
	e.db = nil
	return err
}

// CacheStats returns result cache statistics, or zero stats when caching is off.
func (e *Executor) CacheStats() cache.Stats {
	if e.cache == nil {
		return cache.Stats{}
	}
	return e.cache.Stats()
}
