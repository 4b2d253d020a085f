package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// Cache is a typed, cost-bounded cache keyed by string.
type Cache[T any] struct {
	impl *ristretto.Cache[string, T]
	name string
	ttl  time.Duration
}

// New creates a cache whose entries expire after ttl. costFunc estimates the
// size of a value in bytes.
func New[T any](name string, ttl time.Duration, costFunc func(T) int64) (*Cache[T], error) {
	impl, err := ristretto.NewCache(&ristretto.Config[string, T]{
		NumCounters: 1e4,     // fixtures are few; track 10k keys
		MaxCost:     1 << 24, // 16MB
		BufferItems: 64,
		Metrics:     true,
		Cost:        costFunc,
	})
	if err != nil {
		return nil, err
	}
	return &Cache[T]{impl: impl, name: name, ttl: ttl}, nil
}

func (c *Cache[T]) Get(key string) (T, bool) {
	return c.impl.Get(key)
}

// Set stores value with the cache's TTL. A cost of 0 lets the cost function decide.
func (c *Cache[T]) Set(key string, value T, cost int64) bool {
	return c.impl.SetWithTTL(key, value, cost, c.ttl)
}

// Clear removes all items from the cache
func (c *Cache[T]) Clear() {
	c.impl.Clear()
}

// Wait blocks until buffered writes have been applied.
func (c *Cache[T]) Wait() {
	c.impl.Wait()
}

func (c *Cache[T]) Close() {
	c.impl.Close()
}

// Stats returns counters for the debug endpoint.
func (c *Cache[T]) Stats() map[string]any {
	m := c.impl.Metrics
	hitRate := 0.0
	total := m.Hits() + m.Misses()
	if total > 0 {
		hitRate = float64(m.Hits()) / float64(total) * 100
	}
	return map[string]any{
		"cache":         c.name,
		"ttl_seconds":   c.ttl.Seconds(),
		"hits":          m.Hits(),
		"misses":        m.Misses(),
		"hit_rate":      hitRate,
		"keys_added":    m.KeysAdded(),
		"keys_evicted":  m.KeysEvicted(),
		"cost_added":    m.CostAdded(),
		"cost_evicted":  m.CostEvicted(),
		"sets_rejected": m.SetsRejected(),
		"current_items": int64(m.KeysAdded() - m.KeysEvicted()),
	}
}
