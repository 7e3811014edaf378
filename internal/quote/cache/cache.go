// Package cache provides an in-memory key/value store with a single TTL.
package cache

import (
	"sync"
	"time"
)

// entry wraps a payload with its insertion time.
type entry[V any] struct {
	storedAt time.Time
	payload  V
}

// Cache maps string keys to payloads that expire TTL after insertion.
// Expired entries are treated as absent and evicted lazily on lookup.
// There is no size bound; the key space is one entry per distinct query.
type Cache[V any] struct {
	ttl time.Duration
	now func() time.Time

	mu    sync.RWMutex
	items map[string]entry[V]
}

// Option configures a Cache.
type Option[V any] func(*Cache[V])

// WithClock overrides the time source, for tests.
func WithClock[V any](now func() time.Time) Option[V] {
	return func(c *Cache[V]) {
		c.now = now
	}
}

// New creates a cache whose entries live for ttl after each Put.
func New[V any](ttl time.Duration, opts ...Option[V]) *Cache[V] {
	c := &Cache[V]{
		ttl:   ttl,
		now:   time.Now,
		items: make(map[string]entry[V]),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the payload for key if a fresh entry exists.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()

	var zero V
	if !ok {
		return zero, false
	}
	if c.now().Sub(e.storedAt) >= c.ttl {
		// Lazy eviction; re-check under the write lock so a concurrent
		// Put is not thrown away.
		c.mu.Lock()
		if e2, ok2 := c.items[key]; ok2 && c.now().Sub(e2.storedAt) >= c.ttl {
			delete(c.items, key)
		}
		c.mu.Unlock()
		return zero, false
	}
	return e.payload, true
}

// Put unconditionally overwrites any entry for key with a freshly
// time-stamped one. Last writer wins.
func (c *Cache[V]) Put(key string, payload V) {
	c.mu.Lock()
	c.items[key] = entry[V]{storedAt: c.now(), payload: payload}
	c.mu.Unlock()
}

// Clear drops every entry.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	c.items = make(map[string]entry[V])
	c.mu.Unlock()
}

// Len reports the number of physically present entries, expired or not.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
