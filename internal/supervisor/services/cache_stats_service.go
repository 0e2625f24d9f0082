// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package services

import (
	"context"
	"time"

	"github.com/tomtom215/flavorlens/internal/cache"
	"github.com/tomtom215/flavorlens/internal/logging"
)

// CacheStatsSource exposes result cache counters. *database.Executor satisfies it.
type CacheStatsSource interface {
	CacheStats() cache.Stats
}

// CacheStatsService samples the result cache on an interval. Each sample
// refreshes the cache entry gauge and writes a debug line.
type CacheStatsService struct {
	source   CacheStatsSource
	interval time.Duration
	samples  func(cache.Stats)
}

// NewCacheStatsService creates the sampler. A non-positive interval uses 30s.
func NewCacheStatsService(source CacheStatsSource, interval time.Duration) *CacheStatsService {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &CacheStatsService{source: source, interval: interval}
}

// Serve implements suture.Service.
func (c *CacheStatsService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			c.sample()
		}
	}
}

func (c *CacheStatsService) sample() {
	stats := c.source.CacheStats()
	logging.Debug().
		Int64("entries", stats.Entries).
		Int64("hits", stats.Hits).
		Int64("misses", stats.Misses).
		Int64("evictions", stats.Evictions).
		Float64("hit_rate", stats.HitRate()).
		Msg("Result cache stats")
	if c.samples != nil {
		c.samples(stats)
	}
}

// String implements fmt.Stringer for supervisor logs.
func (c *CacheStatsService) String() string {
	return "cache-stats"
}
