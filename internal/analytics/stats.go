// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package analytics

import (
	"context"
	"sync"
	"time"

	"github.com/tomtom215/flavorlens/internal/database"
)

type statsKey struct{}

// QueryStats accumulates the engine calls made while serving one request.
// Safe for concurrent use by the fan-out goroutines.
type QueryStats struct {
	mu      sync.Mutex
	queries int
	cached  int
	elapsed time.Duration
}

// WithQueryStats returns a context that collects QueryStats.
func WithQueryStats(ctx context.Context) (context.Context, *QueryStats) {
	qs := &QueryStats{}
	return context.WithValue(ctx, statsKey{}, qs), qs
}

func statsFrom(ctx context.Context) *QueryStats {
	qs, _ := ctx.Value(statsKey{}).(*QueryStats)
	return qs
}

func (q *QueryStats) record(res *database.QueryResult) {
	if q == nil || res == nil {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.queries++
	if res.Cached {
		q.cached++
		return
	}
	q.elapsed += res.Duration
}

// Queries returns the number of template queries run.
func (q *QueryStats) Queries() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.queries
}

// Cached reports whether every query was served from the result cache.
func (q *QueryStats) Cached() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.queries > 0 && q.cached == q.queries
}

// Elapsed returns the summed engine time of uncached queries.
func (q *QueryStats) Elapsed() time.Duration {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.elapsed
}
