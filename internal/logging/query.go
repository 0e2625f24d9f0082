// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package logging

import (
	"context"
	"strings"
	"time"
)

// MaxQueryLogLength is the number of characters of SQL text kept in log lines.
const MaxQueryLogLength = 100

// TruncateQuery collapses whitespace in query and cuts it to MaxQueryLogLength
// characters.
func TruncateQuery(query string) string {
	q := strings.Join(strings.Fields(query), " ")
	runes := []rune(q)
	if len(runes) <= MaxQueryLogLength {
		return q
	}
	return string(runes[:MaxQueryLogLength])
}

// QueryEvent describes one executed analytic query.
type QueryEvent struct {
	Template string
	Query    string
	Args     []any
	Rows     int
	Duration time.Duration
	Cached   bool
	Err      error
}

// LogQuery writes a debug line for successful queries and an error line for
// failed ones. The SQL text is truncated; bound args are logged as given.
func LogQuery(ctx context.Context, ev QueryEvent) {
	logger := Ctx(ctx)
	if ev.Err != nil {
		logger.Error().
			Err(ev.Err).
			Str("template", ev.Template).
			Str("query", TruncateQuery(ev.Query)).
			Interface("args", ev.Args).
			Dur("duration", ev.Duration).
			Msg("Query failed")
		return
	}
	logger.Debug().
		Str("template", ev.Template).
		Str("query", TruncateQuery(ev.Query)).
		Interface("args", ev.Args).
		Int("rows", ev.Rows).
		Bool("cached", ev.Cached).
		Dur("duration", ev.Duration).
		Msg("Query executed")
}

// RedactDSN hides credentials carried in a connection string, such as
// md:flavorlens?motherduck_token=secret.
func RedactDSN(dsn string) string {
	base, query, found := strings.Cut(dsn, "?")
	if !found {
		return dsn
	}
	parts := strings.Split(query, "&")
	for i, p := range parts {
		key, _, hasValue := strings.Cut(p, "=")
		lower := strings.ToLower(key)
		if hasValue && (strings.Contains(lower, "token") || strings.Contains(lower, "password")) {
			parts[i] = key + "=REDACTED"
		}
	}
	return base + "?" + strings.Join(parts, "&")
}
