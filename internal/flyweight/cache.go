// Package flyweight provides an identity cache that hands out at most one
// instance per natural key.
package flyweight

import "sync"

// Cache maps a natural key to the single instance constructed for it.
// Entries are never evicted or replaced for the lifetime of the cache.
type Cache[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
}

// New creates an empty Cache
func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]V),
	}
}

// HasKey reports whether an instance has been registered for key
func (c *Cache[K, V]) HasKey(key K) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.entries[key]
	return ok
}

// FromKey returns the instance registered for key, or false if there is none
func (c *Cache[K, V]) FromKey(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

// GetOrCreate returns the instance registered for key. If there is none,
// build is called and its result registered under key.
//
// build is not called on a hit, so whatever arguments it closes over are
// discarded. If build fails nothing is registered.
func (c *Cache[K, V]) GetOrCreate(key K, build func() (V, error)) (V, error) {
	if v, ok := c.FromKey(key); ok {
		return v, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another caller may have registered key between the read and write lock
	if v, ok := c.entries[key]; ok {
		return v, nil
	}

	v, err := build()
	if err != nil {
		var zero V
		return zero, err
	}
	c.entries[key] = v
	return v, nil
}

// Len returns the number of registered keys
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
