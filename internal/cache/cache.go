// Package cache provides a generic in-memory key/value store with per-entry
// TTL expiration. Expiry is checked lazily at read time; an optional
// background timer reclaims memory from entries nobody reads anymore.
package cache

import (
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/cdobratz/nfl-sentiment-analyzer/internal/metrics"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache is a TTL-expiring map guarded by a mutex. Safe for concurrent use.
// All reads treat an entry past its expiry as absent and remove it.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]entry[V]
	ttl     time.Duration
	clock   clockwork.Clock
	name    string
}

// New creates a cache with the given default TTL. The name labels the
// cache's Prometheus metrics.
func New[K comparable, V any](name string, ttl time.Duration, clock clockwork.Clock) *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]entry[V]),
		ttl:     ttl,
		clock:   clock,
		name:    name,
	}
}

// Get returns the value for key if present and not expired.
// Reading an expired key removes it as a side effect.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	if c.clock.Now().After(e.expiresAt) {
		delete(c.entries, key)
		var zero V
		return zero, false
	}
	return e.value, true
}

// Has reports whether key is present and not expired. It agrees with Get,
// including the lazy removal of expired entries.
func (c *Cache[K, V]) Has(key K) bool {
	_, ok := c.Get(key)
	return ok
}

// Set stores value under key with the cache's default TTL.
func (c *Cache[K, V]) Set(key K, value V) {
	c.SetTTL(key, value, c.ttl)
}

// SetTTL stores value under key with an explicit TTL.
func (c *Cache[K, V]) SetTTL(key K, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[V]{
		value:     value,
		expiresAt: c.clock.Now().Add(ttl),
	}
}

// Delete removes key from the cache.
func (c *Cache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Clear removes all entries.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[K]entry[V])
}

// Keys returns the keys of all non-expired entries, in no particular order.
func (c *Cache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	keys := make([]K, 0, len(c.entries))
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			continue
		}
		keys = append(keys, k)
	}
	return keys
}

// Len returns the current number of entries, including expired ones that
// have not been evicted yet.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// EvictExpired removes all expired entries and returns the count evicted.
func (c *Cache[K, V]) EvictExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	evicted := 0
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
			evicted++
		}
	}
	return evicted
}

// StartEvictionTimer starts a background goroutine that periodically evicts
// expired entries. Returns a stop function to clean up the goroutine.
func (c *Cache[K, V]) StartEvictionTimer(interval time.Duration) func() {
	ticker := c.clock.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.Chan():
				evicted := c.EvictExpired()
				if evicted > 0 {
					slog.Debug("Evicted expired cache entries",
						"cache", c.name,
						"count", evicted,
						"remaining", c.Len(),
					)
					metrics.CacheEvictions.WithLabelValues(c.name).Add(float64(evicted))
				}
				metrics.CacheEntries.WithLabelValues(c.name).Set(float64(c.Len()))

			case <-done:
				ticker.Stop()
				return
			}
		}
	}()

	return func() {
		close(done)
	}
}
