// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/flavorlens/internal/logging"
	"github.com/tomtom215/flavorlens/internal/metrics"
)

// conn returns the shared handle, opening it on first use.
func (e *Executor) conn() (*sql.DB, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil, ErrClosed
	}
	if e.db != nil {
		return e.db, nil
	}

	db, err := e.open()
	if err != nil {
		return nil, err
	}
	configureConnectionPool(db)
	e.db = db

	logging.Info().
		Str("dsn", logging.RedactDSN(e.cfg.DSN())).
		Bool("motherduck", e.cfg.IsMotherDuck()).
		Msg("Analytic engine connection opened")
	return db, nil
}

// open creates a connector whose init function applies the session settings
// to every new physical connection.
func (e *Executor) open() (*sql.DB, error) {
	settings := sessionSettings(e.cfg.IsMotherDuck(), e.cfg.HTTPTimeoutMS, e.cfg.HTTPRetries, e.cfg.Threads, e.cfg.MaxMemory)

	connector, err := duckdb.NewConnector(e.cfg.DSN(), func(execer driver.ExecerContext) error {
		for _, stmt := range settings {
			if _, err := execer.ExecContext(context.Background(), stmt, nil); err != nil {
				return fmt.Errorf("failed to apply %q: %w", stmt, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open analytic engine %s: %w", logging.RedactDSN(e.cfg.DSN()), err)
	}
	return sql.OpenDB(connector), nil
}

// sessionSettings lists the SET statements run on each new connection.
// MotherDuck connections get HTTP tuning.
func sessionSettings(motherDuck bool, httpTimeoutMS, httpRetries, threads int, maxMemory string) []string {
	var stmts []string
	if motherDuck {
		stmts = append(stmts,
			"SET enable_http_metadata_cache=true",
			fmt.Sprintf("SET http_timeout=%d", httpTimeoutMS),
			"SET http_keep_alive=true",
			fmt.Sprintf("SET http_retries=%d", httpRetries),
		)
	}
	if threads > 0 {
		stmts = append(stmts, fmt.Sprintf("SET threads=%d", threads))
	}
	if maxMemory != "" {
		stmts = append(stmts, fmt.Sprintf("SET max_memory='%s'", strings.ReplaceAll(maxMemory, "'", "''")))
	}
	return stmts
}

// configureConnectionPool sets connection pool parameters
func configureConnectionPool(db *sql.DB) {
	db.SetMaxOpenConns(runtime.NumCPU())
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)
	db.SetConnMaxIdleTime(5 * time.Minute)
}

// resetIfCurrent drops the shared handle after a connection-class failure so
// the next call reconnects. A handle already replaced by another goroutine is
// left alone.
func (e *Executor) resetIfCurrent(failed *sql.DB) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.db == nil || e.db != failed {
		return
	}
	closeWithLog(e.db, "analytic engine connection")
	e.db = nil
	metrics.DBReconnects.Inc()
	logging.Warn().Msg("Analytic engine connection reset; next query reconnects")
}

// isConnectionError checks if an error indicates database connection loss
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	errMsg := err.Error()
	return strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "broken pipe") ||
		strings.Contains(errMsg, "bad connection") ||
		strings.Contains(errMsg, "database is closed") ||
		strings.Contains(errMsg, "Connection Error")
}
