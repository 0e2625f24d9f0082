// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package metrics

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func TestErrorKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"deadline", context.DeadlineExceeded, ErrorKindTimeout},
		{"wrapped deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), ErrorKindTimeout},
		{"open breaker", errors.New("circuit breaker is open"), ErrorKindBreaker},
		{"half-open saturation", errors.New("too many requests"), ErrorKindBreaker},
		{"connection reset", errors.New("Connection reset by peer"), ErrorKindConnection},
		{"closed handle", errors.New("sql: database is closed"), ErrorKindConnection},
		{"binder error", errors.New("Binder Error: column not found"), ErrorKindQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorKind(tt.err); got != tt.want {
				t.Errorf("ErrorKind(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestRecordDBQuery(t *testing.T) {
	tests := []struct {
		name     string
		template string
		duration time.Duration
		err      error
		wantKind string
	}{
		{"successful distribution", "category_distribution_test", 10 * time.Millisecond, nil, ""},
		{"timeout", "pairings_test", 30 * time.Second, context.DeadlineExceeded, ErrorKindTimeout},
		{"engine error", "season_test", 5 * time.Millisecond, errors.New("Parser Error"), ErrorKindQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.CollectAndCount(DBQueryDuration)
			RecordDBQuery(tt.template, tt.duration, tt.err)
			if after := testutil.CollectAndCount(DBQueryDuration); after != before+1 {
				t.Errorf("expected one new histogram series, got %d -> %d", before, after)
			}
			if tt.wantKind != "" {
				got := testutil.ToFloat64(DBQueryErrors.WithLabelValues(tt.template, tt.wantKind))
				if got != 1 {
					t.Errorf("errors{%s,%s} = %v, want 1", tt.template, tt.wantKind, got)
				}
			}
		})
	}
}

func TestRecordDBQuery_EmptyTemplate(t *testing.T) {
	RecordDBQuery("", time.Millisecond, nil)

	m := &dto.Metric{}
	obs, err := DBQueryDuration.GetMetricWithLabelValues("adhoc")
	if err != nil {
		t.Fatalf("GetMetricWithLabelValues: %v", err)
	}
	if err := obs.(interface{ Write(*dto.Metric) error }).Write(m); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if m.GetHistogram().GetSampleCount() == 0 {
		t.Error("expected adhoc label to receive the observation")
	}
}

func TestRecordCacheLookup(t *testing.T) {
	RecordCacheLookup("test-backend", true)
	RecordCacheLookup("test-backend", true)
	RecordCacheLookup("test-backend", false)

	if got := testutil.ToFloat64(CacheHits.WithLabelValues("test-backend")); got != 2 {
		t.Errorf("hits = %v, want 2", got)
	}
	if got := testutil.ToFloat64(CacheMisses.WithLabelValues("test-backend")); got != 1 {
		t.Errorf("misses = %v, want 1", got)
	}
}

func TestRecordAPIRequest(t *testing.T) {
	RecordAPIRequest("GET", "/api/test/{id}", "200", 25*time.Millisecond)
	RecordAPIRequest("GET", "/api/test/{id}", "200", 35*time.Millisecond)

	if got := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/test/{id}", "200")); got != 2 {
		t.Errorf("requests = %v, want 2", got)
	}
}

func TestTrackActiveRequest_Concurrent(t *testing.T) {
	start := testutil.ToFloat64(APIActiveRequests)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			TrackActiveRequest(true)
			TrackActiveRequest(false)
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(APIActiveRequests); got != start {
		t.Errorf("active requests = %v, want %v", got, start)
	}
}
