package cache

import (
	"sync"
	"sync/atomic"
)

// DefaultCapacity is the capacity used for non-positive capacities.
const DefaultCapacity = 256

// Cache is a thread-safe LRU cache.
//
// Values are stored as is. Callers must not modify a value after caching
// it.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]*entry[K, V]
	lru      *lruList[K]
	capacity int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type entry[K comparable, V any] struct {
	value V
	node  *lruNode[K]
}

// New creates a cache holding at most capacity entries.
// If capacity <= 0, DefaultCapacity is used.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache[K, V]{
		entries:  make(map[K]*entry[K, V]),
		lru:      newLRUList[K](),
		capacity: capacity,
	}
}

// Get retrieves a cached value and marks it as recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if ok {
		c.lru.MoveToFront(e.node)
	}
	c.mu.Unlock()

	if !ok {
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	c.hits.Add(1)
	return e.value, true
}

// Set stores a value, evicting the least recently used entries when the
// cache is full.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setLocked(key, value)
}

func (c *Cache[K, V]) setLocked(key K, value V) {
	if e, ok := c.entries[key]; ok {
		e.value = value
		c.lru.MoveToFront(e.node)
		return
	}
	for c.lru.Len() >= c.capacity {
		oldest, ok := c.lru.RemoveOldest()
		if !ok {
			break
		}
		delete(c.entries, oldest)
		c.evictions.Add(1)
	}
	c.entries[key] = &entry[K, V]{value: value, node: c.lru.PushFront(key)}
}

// GetOrCreate returns the cached value for key or stores and returns the
// result of create. create runs with the lock held, so concurrent callers
// never compute the same key twice; keep it fast.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		c.lru.MoveToFront(e.node)
		c.hits.Add(1)
		return e.value
	}
	c.misses.Add(1)
	value := create()
	c.setLocked(key, value)
	return value
}

// Delete removes an entry and reports whether it was present.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return false
	}
	c.lru.Remove(e.node)
	delete(c.entries, key)
	return true
}

// Clear removes all entries. Statistics are kept.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
	c.lru.Clear()
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Capacity returns the maximum number of entries.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

// Stats returns current cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	hits, misses := c.hits.Load(), c.misses.Load()
	return Stats{
		Len:           c.Len(),
		Capacity:      c.capacity,
		TotalCapacity: c.capacity,
		Hits:          hits,
		Misses:        misses,
		Evictions:     c.evictions.Load(),
		HitRate:       hitRate(hits, misses),
	}
}

// ResetStats resets all statistics counters to zero.
func (c *Cache[K, V]) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
}
