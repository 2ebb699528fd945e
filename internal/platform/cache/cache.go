package cache

import (
	"sync"
	"time"
)

// Cache is a small in-memory TTL cache used to keep backend round-trips down.
type Cache[T any] struct {
	mu      sync.RWMutex
	entries map[string]entry[T]
}

type entry[T any] struct {
	value   T
	expires time.Time
}

// New returns an empty cache.
func New[T any]() *Cache[T] {
	return &Cache[T]{entries: make(map[string]entry[T])}
}

// Get returns the cached value, or false when absent or expired.
func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || time.Now().After(e.expires) {
		var zero T
		return zero, false
	}
	return e.value, true
}

// Set stores a value for ttl. Expired entries for other keys are dropped
// lazily on the next Set to keep the map from growing without bound.
func (c *Cache[T]) Set(key string, value T, ttl time.Duration) {
	now := time.Now()
	c.mu.Lock()
	for k, e := range c.entries {
		if now.After(e.expires) {
			delete(c.entries, k)
		}
	}
	c.entries[key] = entry[T]{value: value, expires: now.Add(ttl)}
	c.mu.Unlock()
}

// Delete removes a single key.
func (c *Cache[T]) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}
