package cache

import "hash/maphash"

// DefaultShardCount is the number of shards of a ShardedCache.
// Must be a power of 2 for fast modulo via bitwise AND.
const DefaultShardCount = 16

const shardMask = DefaultShardCount - 1

// ShardedCache is a thread-safe LRU cache split into DefaultShardCount
// independently locked shards. Each shard evicts on its own, so the total
// capacity is approximate.
type ShardedCache[K comparable, V any] struct {
	seed   maphash.Seed
	shards [DefaultShardCount]*Cache[K, V]
}

// NewSharded creates a sharded cache with the given capacity per shard.
// If capacity <= 0, DefaultCapacity is used.
func NewSharded[K comparable, V any](capacity int) *ShardedCache[K, V] {
	c := &ShardedCache[K, V]{seed: maphash.MakeSeed()}
	for i := range c.shards {
		c.shards[i] = New[K, V](capacity)
	}
	return c
}

func (c *ShardedCache[K, V]) shard(key K) *Cache[K, V] {
	return c.shards[maphash.Comparable(c.seed, key)&shardMask]
}

// Get retrieves a cached value by key.
func (c *ShardedCache[K, V]) Get(key K) (V, bool) {
	return c.shard(key).Get(key)
}

// Set stores a value in the key's shard.
func (c *ShardedCache[K, V]) Set(key K, value V) {
	c.shard(key).Set(key, value)
}

// GetOrCreate returns a cached value or creates it with the shard lock
// held. Only keys of the same shard wait on each other.
func (c *ShardedCache[K, V]) GetOrCreate(key K, create func() V) V {
	return c.shard(key).GetOrCreate(key, create)
}

// Delete removes an entry and reports whether it was present.
func (c *ShardedCache[K, V]) Delete(key K) bool {
	return c.shard(key).Delete(key)
}

// Clear removes all entries from every shard.
func (c *ShardedCache[K, V]) Clear() {
	for _, s := range c.shards {
		s.Clear()
	}
}

// Len returns the total number of entries across all shards.
func (c *ShardedCache[K, V]) Len() int {
	total := 0
	for _, s := range c.shards {
		total += s.Len()
	}
	return total
}

// Capacity returns the per-shard capacity.
func (c *ShardedCache[K, V]) Capacity() int {
	return c.shards[0].Capacity()
}

// TotalCapacity returns the capacity summed over all shards.
func (c *ShardedCache[K, V]) TotalCapacity() int {
	return c.Capacity() * DefaultShardCount
}

// ShardLen returns the number of entries in each shard.
func (c *ShardedCache[K, V]) ShardLen() [DefaultShardCount]int {
	var lens [DefaultShardCount]int
	for i, s := range c.shards {
		lens[i] = s.Len()
	}
	return lens
}

// Stats sums the statistics of all shards.
func (c *ShardedCache[K, V]) Stats() Stats {
	res := Stats{Capacity: c.Capacity(), TotalCapacity: c.TotalCapacity()}
	for _, s := range c.shards {
		st := s.Stats()
		res.Len += st.Len
		res.Hits += st.Hits
		res.Misses += st.Misses
		res.Evictions += st.Evictions
	}
	res.HitRate = hitRate(res.Hits, res.Misses)
	return res
}

// ResetStats resets the counters of every shard.
func (c *ShardedCache[K, V]) ResetStats() {
	for _, s := range c.shards {
		s.ResetStats()
	}
}
