package cache

import (
	"sync"
)

// Cache is a thread-safe bounded memo cache. When full, the entry stored
// first is evicted.
type Cache[K comparable, V any] struct {
	mu       sync.RWMutex
	items    map[K]V
	order    []K
	maxItems int

	// Metrics
	hits   int64
	misses int64
}

// Config holds cache configuration
type Config struct {
	MaxItems int
}

// DefaultConfig returns default cache configuration
func DefaultConfig() Config {
	return Config{
		MaxItems: 64,
	}
}

// New creates a new cache instance
func New[K comparable, V any](cfg Config) *Cache[K, V] {
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = DefaultConfig().MaxItems
	}

	return &Cache[K, V]{
		items:    make(map[K]V),
		maxItems: cfg.MaxItems,
	}
}

// Get retrieves a value from the cache
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	value, exists := c.items[key]
	if !exists {
		c.misses++
		return value, false
	}
	c.hits++
	return value, true
}

// Set stores a value in the cache
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(key, value)
}

// set stores a value (must be called with lock held)
func (c *Cache[K, V]) set(key K, value V) {
	if _, exists := c.items[key]; !exists {
		if len(c.items) >= c.maxItems {
			c.evictOldest()
		}
		c.order = append(c.order, key)
	}
	c.items[key] = value
}

// Size returns the number of items in the cache
func (c *Cache[K, V]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Stats returns cache statistics
func (c *Cache[K, V]) Stats() (hits, misses int64, hitRate float64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	hits = c.hits
	misses = c.misses
	total := hits + misses
	if total > 0 {
		hitRate = float64(hits) / float64(total) * 100
	}
	return
}

// evictOldest removes the entry stored first (must be called with lock held)
func (c *Cache[K, V]) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	delete(c.items, c.order[0])
	c.order = c.order[1:]
}

// GetOrSet returns the cached value or computes, stores and returns it.
// Errors are returned without caching.
func (c *Cache[K, V]) GetOrSet(key K, fn func() (V, error)) (V, error) {
	if val, ok := c.Get(key); ok {
		return val, nil
	}

	val, err := fn()
	if err != nil {
		return val, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// another caller may have stored it meanwhile
	if existing, ok := c.items[key]; ok {
		return existing, nil
	}
	c.set(key, val)
	return val, nil
}
