// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package database

import (
	"errors"
	"fmt"
	"io"

	"github.com/tomtom215/flavorlens/internal/logging"
)

var (
	// ErrUpstreamUnavailable marks retryable engine failures: query timeouts,
	// an open circuit breaker, or a throttled call whose wait was cancelled.
	ErrUpstreamUnavailable = errors.New("analytic engine unavailable")

	// ErrCircuitOpen is returned while the circuit breaker rejects calls.
	// It matches ErrUpstreamUnavailable under errors.Is.
	ErrCircuitOpen = fmt.Errorf("%w: circuit breaker open", ErrUpstreamUnavailable)

	// ErrClosed is returned by calls made after Close.
	ErrClosed = errors.New("executor closed")
)

// QueryError carries the context of a failed query. Query and Args are for
// logs only; Error() never includes them.
type QueryError struct {
	Op    string
	Query string
	Args  []any
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("database %s: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// IsUnavailable reports whether err is a retryable engine failure.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUpstreamUnavailable)
}

// closeWithLog closes a resource and logs any error.
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly closes a resource, ignoring any error.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
