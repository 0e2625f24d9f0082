// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package cache

import (
	"context"
	"testing"
	"time"
)

type cachedRows struct {
	Columns []string         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
}

func newTestBadger[V any](t *testing.T) *Badger[V] {
	t.Helper()
	b, err := NewBadger[V]()
	if err != nil {
		t.Fatalf("NewBadger: %v", err)
	}
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func TestBadger_SetGet(t *testing.T) {
	t.Parallel()

	b := newTestBadger[cachedRows](t)
	in := cachedRows{
		Columns: []string{"name", "dish_count"},
		Rows:    []map[string]any{{"name": "Asian", "dish_count": 12}},
	}
	b.Set("k", in)

	out, ok := b.Get("k", time.Hour)
	if !ok {
		t.Fatal("expected hit")
	}
	if len(out.Rows) != 1 || out.Rows[0]["name"] != "Asian" {
		t.Errorf("unexpected rows: %+v", out.Rows)
	}
	// JSON round-trip decodes numbers as float64.
	if out.Rows[0]["dish_count"] != float64(12) {
		t.Errorf("dish_count = %#v", out.Rows[0]["dish_count"])
	}
	if b.Len() != 1 {
		t.Errorf("Len = %d, want 1", b.Len())
	}
}

func TestBadger_LazyExpiry(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	b := newTestBadger[string](t)
	b.now = clock.Now

	b.Set("k", "v")
	clock.Advance(11 * time.Minute)

	if _, ok := b.Get("k", 10*time.Minute); ok {
		t.Fatal("expected stale miss")
	}
	if b.Len() != 0 {
		t.Errorf("stale entry should be deleted, Len = %d", b.Len())
	}

	s := b.Stats()
	if s.Misses != 1 || s.Evictions != 1 {
		t.Errorf("unexpected stats: %+v", s)
	}
}

func TestBadger_DeleteClear(t *testing.T) {
	t.Parallel()

	b := newTestBadger[int](t)
	b.Set("a", 1)
	b.Set("b", 2)
	b.Delete("a")
	if _, ok := b.Get("a", time.Hour); ok {
		t.Error("a should be deleted")
	}
	b.Clear()
	if b.Len() != 0 {
		t.Errorf("Len after Clear = %d", b.Len())
	}
}

func TestBadger_GetOrCompute(t *testing.T) {
	t.Parallel()

	b := newTestBadger[string](t)
	calls := 0
	compute := func(context.Context) (string, error) {
		calls++
		return "computed", nil
	}
	for i := 0; i < 3; i++ {
		v, _, err := GetOrCompute[string](context.Background(), b, "k", time.Hour, compute)
		if err != nil || v != "computed" {
			t.Fatalf("GetOrCompute = %q, %v", v, err)
		}
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
