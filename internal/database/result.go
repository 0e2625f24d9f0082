// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package database

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

// QueryResult is a normalized row-set. Rows share maps with the result cache
// and must be treated as read-only.
type QueryResult struct {
	Columns  []string         `json:"columns"`
	Rows     []map[string]any `json:"rows"`
	RowCount int              `json:"row_count"`
	Duration time.Duration    `json:"duration"`
	Cached   bool             `json:"-"`
}

// Options controls a single Execute call.
type Options struct {
	// Template names the metric template for metrics and logs.
	Template string
	// Cacheable opts the query into the result cache.
	Cacheable bool
	// TTL overrides the executor's default cache TTL when positive.
	TTL time.Duration
}

// Row accessors tolerate every numeric representation a row may hold: driver
// values after normalization, and float64/json.Number after a cache round-trip.

// Int64 reads col as an integer. Missing or NULL values yield 0.
func Int64(row map[string]any, col string) int64 {
	n, _ := toInt64(row[col])
	return n
}

// Int reads col as an int.
func Int(row map[string]any, col string) int {
	return int(Int64(row, col))
}

// Float64 reads col as a float. Missing or NULL values yield 0.
func Float64(row map[string]any, col string) float64 {
	f, _ := toFloat64(row[col])
	return f
}

// NullFloat64 reads col as a float, preserving NULL as nil.
func NullFloat64(row map[string]any, col string) *float64 {
	f, ok := toFloat64(row[col])
	if !ok {
		return nil
	}
	return &f
}

// String reads col as a string. NULL yields "".
func String(row map[string]any, col string) string {
	switch v := row[col].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// List reads a LIST column.
func List(row map[string]any, col string) []any {
	if v, ok := row[col].([]any); ok {
		return v
	}
	return nil
}

// Structs reads a LIST of STRUCT column as maps; other elements are skipped.
func Structs(row map[string]any, col string) []map[string]any {
	items := List(row, col)
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func toInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int64:
		return x, true
	case int:
		return int64(x), true
	case int32:
		return int64(x), true
	case float64:
		return int64(math.Round(x)), true
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return n, true
		}
		if f, err := x.Float64(); err == nil {
			return int64(math.Round(f)), true
		}
	case string:
		if n, err := strconv.ParseInt(x, 10, 64); err == nil {
			return n, true
		}
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

func toFloat64(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int64:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case float32:
		return float64(x), true
	case json.Number:
		if f, err := x.Float64(); err == nil {
			return f, true
		}
	case string:
		if f, err := strconv.ParseFloat(x, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}
