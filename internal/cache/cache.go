// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package cache

import (
	"context"
	"encoding/hex"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/crypto/blake2b"

	"github.com/tomtom215/flavorlens/internal/metrics"
)

// DefaultTTL is the freshness window used when a caller passes zero.
const DefaultTTL = time.Hour

// Cacher is implemented by every result cache backend.
type Cacher[V any] interface {
	// Get returns the value stored under key when it was stored less than
	// ttl ago. A stale entry is removed.
	Get(key string, ttl time.Duration) (V, bool)

	// Set stores value under key, stamped with the current time.
	Set(key string, value V)

	// Delete removes key. Deleting a missing key is a no-op.
	Delete(key string)

	// Clear removes all entries.
	Clear()

	// Len returns the number of stored entries, fresh or not.
	Len() int

	// Stats returns a snapshot of the counters.
	Stats() Stats
}

// Stats tracks cache performance counters.
type Stats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
	Sets      int64 `json:"sets"`
	Entries   int64 `json:"entries"`
}

// HitRate returns hits as a percentage of all lookups.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

// counters is embedded by backends to share stat and metric bookkeeping.
type counters struct {
	backend   string
	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
	sets      atomic.Int64
}

func (c *counters) hit() {
	c.hits.Add(1)
	metrics.RecordCacheLookup(c.backend, true)
}

func (c *counters) miss() {
	c.misses.Add(1)
	metrics.RecordCacheLookup(c.backend, false)
}

func (c *counters) evict() {
	c.evictions.Add(1)
	metrics.CacheEvictions.WithLabelValues(c.backend).Inc()
}

func (c *counters) set() {
	c.sets.Add(1)
}

func (c *counters) snapshot(entries int) Stats {
	metrics.CacheEntries.WithLabelValues(c.backend).Set(float64(entries))
	return Stats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
		Sets:      c.sets.Load(),
		Entries:   int64(entries),
	}
}

// fresh reports whether an entry stored at storedAt is still within ttl.
func fresh(storedAt, now time.Time, ttl time.Duration) bool {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return now.Sub(storedAt) < ttl
}

// GenerateKey derives a deterministic cache key from query text and its
// parameter list. Identical text and parameters always yield the same key.
func GenerateKey(query string, params []any) string {
	encoded, err := json.Marshal(params)
	if err != nil {
		encoded = []byte(fmt.Sprint(params))
	}
	sum := blake2b.Sum256([]byte(query + ":" + string(encoded)))
	return "q:" + hex.EncodeToString(sum[:])[:32]
}

// GetOrCompute returns the cached value for key when fresh, otherwise runs
// compute and stores its result. A nil cache always computes. Errors from
// compute are returned as-is and nothing is stored.
func GetOrCompute[V any](ctx context.Context, c Cacher[V], key string, ttl time.Duration, compute func(context.Context) (V, error)) (V, bool, error) {
	if c != nil {
		if v, ok := c.Get(key, ttl); ok {
			return v, true, nil
		}
	}

	v, err := compute(ctx)
	if err != nil {
		var zero V
		return zero, false, err
	}
	if c != nil {
		c.Set(key, v)
	}
	return v, false, nil
}
