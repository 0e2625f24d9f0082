// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package cache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// Memory is a thread-safe map-backed result cache.
type Memory[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]
	now     func() time.Time
	counters
}

// NewMemory creates an empty in-memory cache.
func NewMemory[V any]() *Memory[V] {
	return &Memory[V]{
		entries:  make(map[string]entry[V]),
		now:      time.Now,
		counters: counters{backend: "memory"},
	}
}

// Get retrieves a value if it was stored less than ttl ago. A stale entry is
// deleted and counted as a miss and an eviction.
func (m *Memory[V]) Get(key string, ttl time.Duration) (V, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()

	var zero V
	if !ok {
		m.miss()
		return zero, false
	}

	if !fresh(e.storedAt, m.now(), ttl) {
		m.mu.Lock()
		// Only remove the entry we judged stale; a concurrent Set may have replaced it.
		if cur, still := m.entries[key]; still && cur.storedAt.Equal(e.storedAt) {
			delete(m.entries, key)
			m.evict()
		}
		m.mu.Unlock()
		m.miss()
		return zero, false
	}

	m.hit()
	return e.value, true
}

// Set stores value under key.
func (m *Memory[V]) Set(key string, value V) {
	m.mu.Lock()
	m.entries[key] = entry[V]{value: value, storedAt: m.now()}
	m.mu.Unlock()
	m.set()
}

func (m *Memory[V]) Delete(key string) {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
}

func (m *Memory[V]) Clear() {
	m.mu.Lock()
	m.entries = make(map[string]entry[V])
	m.mu.Unlock()
}

func (m *Memory[V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

func (m *Memory[V]) Stats() Stats {
	return m.snapshot(m.Len())
}

var _ Cacher[any] = (*Memory[any])(nil)
