// FlavorLens - Ingredient Trend Analytics API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/flavorlens

package cache

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/flavorlens/internal/logging"
)

const badgerKeyPrefix = "result:"

// badgerRecord is the stored envelope for one cached value.
type badgerRecord[V any] struct {
	StoredAt int64 `json:"stored_at"` // unix nanoseconds
	Value    V     `json:"value"`
}

// Badger is a result cache held in an in-memory BadgerDB instance. It is not
// persisted across restarts.
type Badger[V any] struct {
	db  *badger.DB
	now func() time.Time
	counters
}

// NewBadger opens an in-memory Badger store.
func NewBadger[V any]() (*Badger[V], error) {
	opts := badger.DefaultOptions("").
		WithInMemory(true).
		WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open in-memory badger: %w", err)
	}
	return &Badger[V]{
		db:       db,
		now:      time.Now,
		counters: counters{backend: "badger"},
	}, nil
}

// Get retrieves a value if it was stored less than ttl ago.
func (b *Badger[V]) Get(key string, ttl time.Duration) (V, bool) {
	var rec badgerRecord[V]
	var zero V

	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(badgerKeyPrefix + key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) {
			logging.Warn().Err(err).Str("key", key).Msg("Result cache read failed")
		}
		b.miss()
		return zero, false
	}

	if !fresh(time.Unix(0, rec.StoredAt), b.now(), ttl) {
		b.deleteIfStoredAt(key, rec.StoredAt)
		b.miss()
		return zero, false
	}

	b.hit()
	return rec.Value, true
}

// deleteIfStoredAt removes key only when it still holds the stale record.
func (b *Badger[V]) deleteIfStoredAt(key string, storedAt int64) {
	deleted := false
	err := b.db.Update(func(txn *badger.Txn) error {
		k := []byte(badgerKeyPrefix + key)
		item, err := txn.Get(k)
		if err != nil {
			return err
		}
		var cur badgerRecord[json.RawMessage]
		if err := item.Value(func(val []byte) error { return json.Unmarshal(val, &cur) }); err != nil {
			return err
		}
		if cur.StoredAt != storedAt {
			return nil
		}
		deleted = true
		return txn.Delete(k)
	})
	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) {
			logging.Warn().Err(err).Str("key", key).Msg("Result cache eviction failed")
		}
		return
	}
	if deleted {
		b.evict()
	}
}

// Set stores value under key. Encoding failures are logged and the value is
// simply not cached.
func (b *Badger[V]) Set(key string, value V) {
	data, err := json.Marshal(badgerRecord[V]{StoredAt: b.now().UnixNano(), Value: value})
	if err != nil {
		logging.Warn().Err(err).Str("key", key).Msg("Result cache encode failed")
		return
	}
	err = b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(badgerKeyPrefix+key), data)
	})
	if err != nil {
		logging.Warn().Err(err).Str("key", key).Msg("Result cache write failed")
		return
	}
	b.set()
}

func (b *Badger[V]) Delete(key string) {
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(badgerKeyPrefix + key))
	})
	if err != nil {
		logging.Warn().Err(err).Str("key", key).Msg("Result cache delete failed")
	}
}

func (b *Badger[V]) Clear() {
	if err := b.db.DropPrefix([]byte(badgerKeyPrefix)); err != nil {
		logging.Warn().Err(err).Msg("Result cache clear failed")
	}
}

// Len counts stored keys with a key-only iteration.
func (b *Badger[V]) Len() int {
	n := 0
	_ = b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(badgerKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			n++
		}
		return nil
	})
	return n
}

func (b *Badger[V]) Stats() Stats {
	return b.snapshot(b.Len())
}

// Close releases the Badger instance.
func (b *Badger[V]) Close() error {
	return b.db.Close()
}

var _ Cacher[any] = (*Badger[any])(nil)
