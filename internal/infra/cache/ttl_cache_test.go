package cache

import (
	"sync"
	"testing"
	"time"

	"jild/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, size int, ttl time.Duration) (*TTLCache[string, int], *time.Time) {
	t.Helper()

	c, err := NewTTLCache[string, int](&config.CacheConfig{Size: size, TTL: ttl})
	require.NoError(t, err)

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	return c, &now
}

func TestTTLCache_GetAdd(t *testing.T) {
	c, _ := newTestCache(t, 4, time.Minute)

	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Add("a", 1)
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestTTLCache_ExpiresAfterTTL(t *testing.T) {
	c, now := newTestCache(t, 4, time.Minute)

	c.Add("a", 1)
	*now = now.Add(time.Minute)

	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestTTLCache_TouchExtendsLife(t *testing.T) {
	c, now := newTestCache(t, 4, time.Minute)

	c.Add("a", 1)
	*now = now.Add(50 * time.Second)
	c.Touch("a")
	*now = now.Add(50 * time.Second)

	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestTTLCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c, _ := newTestCache(t, 2, time.Minute)

	c.Add("a", 1)
	c.Add("b", 2)
	_, _ = c.Get("a")
	c.Add("c", 3)

	_, ok := c.Get("b")
	assert.False(t, ok)
	_, ok = c.Get("a")
	assert.True(t, ok)
}

func TestTTLCache_AddIfAbsentKeepsFirst(t *testing.T) {
	c, _ := newTestCache(t, 4, time.Minute)

	assert.Equal(t, 1, c.AddIfAbsent("a", 1))
	assert.Equal(t, 1, c.AddIfAbsent("a", 2))
}

func TestTTLCache_AddIfAbsentConcurrent(t *testing.T) {
	c, err := NewTTLCache[string, int](&config.CacheConfig{Size: 4, TTL: time.Minute})
	require.NoError(t, err)

	results := make([]int, 16)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = c.AddIfAbsent("k", i+1)
		}()
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, results[0], got)
	}
}

func TestNewTTLCache_Defaults(t *testing.T) {
	c, err := NewTTLCache[string, int](nil)
	require.NoError(t, err)

	assert.Equal(t, defaultTTL, c.ttl)
}
