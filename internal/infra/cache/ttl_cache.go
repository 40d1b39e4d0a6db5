// Package cache provides size-bounded in-memory stores with per-entry expiry.
package cache

import (
	"sync"
	"time"

	"jild/config"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
)

const (
	defaultSize = 1024
	defaultTTL  = time.Hour
)

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// TTLCache is an LRU whose entries also expire a fixed time after they were
// last written. Expired entries are dropped lazily on read.
type TTLCache[K comparable, V any] struct {
	mu    sync.Mutex // serialises check-then-add in AddIfAbsent
	cache *lru.Cache[K, entry[V]]
	ttl   time.Duration
	now   func() time.Time
}

// NewTTLCache builds a cache from a CacheConfig; zero values fall back to defaults.
func NewTTLCache[K comparable, V any](cfg *config.CacheConfig) (*TTLCache[K, V], error) {
	size, ttl := defaultSize, defaultTTL
	if cfg != nil && cfg.Size > 0 {
		size = cfg.Size
	}
	if cfg != nil && cfg.TTL > 0 {
		ttl = cfg.TTL
	}

	c, err := lru.New[K, entry[V]](size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create LRU cache")
	}

	return &TTLCache[K, V]{cache: c, ttl: ttl, now: time.Now}, nil
}

// Get returns the live value for key.
func (c *TTLCache[K, V]) Get(key K) (V, bool) {
	e, ok := c.cache.Get(key)
	if !ok {
		var zero V

		return zero, false
	}

	if c.now().Sub(e.storedAt) >= c.ttl {
		c.cache.Remove(key)

		var zero V

		return zero, false
	}

	return e.value, true
}

// Add stores value under key, resetting its expiry.
func (c *TTLCache[K, V]) Add(key K, value V) {
	c.cache.Add(key, entry[V]{value: value, storedAt: c.now()})
}

// AddIfAbsent stores value unless a live entry already exists, and returns
// whichever value is now cached. Concurrent loaders of the same key converge
// on one value.
func (c *TTLCache[K, V]) AddIfAbsent(key K, value V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.Get(key); ok {
		return existing
	}
	c.Add(key, value)

	return value
}

// Touch refreshes the expiry of a live entry.
func (c *TTLCache[K, V]) Touch(key K) {
	if value, ok := c.Get(key); ok {
		c.Add(key, value)
	}
}

// Remove evicts key.
func (c *TTLCache[K, V]) Remove(key K) {
	c.cache.Remove(key)
}

// Len counts entries, including expired ones not yet dropped.
func (c *TTLCache[K, V]) Len() int {
	return c.cache.Len()
}
