// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

/*
Package cache provides the process-wide result cache used by the query executor.

Entries are keyed by a hash of the SQL text and its bound parameters and are
read with a caller-supplied time-to-live. Freshness is checked at lookup time:
an entry older than the TTL is deleted by the lookup that found it and counted
as both a miss and an eviction. There is no background sweep and no size bound.

# Backends

  - Memory: a map guarded by sync.RWMutex (default)
  - Badger: an in-memory github.com/dgraph-io/badger/v4 store; values are
    encoded with goccy/go-json, so numbers read back as float64

Both satisfy Cacher[V]:

	c := cache.NewMemory[*database.QueryResult]()
	res, cached, err := cache.GetOrCompute(ctx, c, key, time.Hour, run)

# Concurrency

All methods are safe for concurrent use. GetOrCompute does not coalesce
concurrent misses: two callers missing the same key both compute, and the
later Set overwrites the earlier one with equivalent content.

# Metrics

Hits, misses, evictions and the entry count are exported through
internal/metrics with a backend label.
*/
package cache
