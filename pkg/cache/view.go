// Package cache provides typed in-process view caches backed by an
// expirable LRU. The query facade stores denormalized read views here
// (current item list, per-item adjustment logs) and invalidates them on
// every committed mutation.
package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// SchemaVersion is stamped on every cached entry. Bump it when the shape of
// a cached view changes so stale entries self-invalidate on read.
const SchemaVersion = "1.0"

// entry wraps a cached value with version metadata.
type entry[V any] struct {
	version  string
	value    V
	cachedAt time.Time
}

// View is a typed read-view cache with time-based expiration and
// version-based invalidation.
type View[V any] struct {
	lru *expirable.LRU[string, entry[V]]
}

// NewView creates a View holding at most size entries, each expiring after
// ttl.
func NewView[V any](size int, ttl time.Duration) *View[V] {
	return &View[V]{lru: expirable.NewLRU[string, entry[V]](size, nil, ttl)}
}

// Get returns the cached value for key. Entries with a mismatched schema
// version are removed and reported as a miss.
func (v *View[V]) Get(key string) (V, bool) {
	var zero V
	e, ok := v.lru.Get(key)
	if !ok {
		return zero, false
	}
	if e.version != SchemaVersion {
		v.lru.Remove(key)
		return zero, false
	}
	return e.value, true
}

// Set stores value under key with the current schema version.
func (v *View[V]) Set(key string, value V) {
	v.lru.Add(key, entry[V]{version: SchemaVersion, value: value, cachedAt: time.Now()})
}

// Invalidate removes the entry for key, if any.
func (v *View[V]) Invalidate(key string) {
	v.lru.Remove(key)
}

// Purge removes every entry.
func (v *View[V]) Purge() {
	v.lru.Purge()
}
