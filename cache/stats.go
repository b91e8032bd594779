package cache

// Stats is a snapshot of cache statistics.
type Stats struct {
	// Len is the number of cached entries.
	Len int

	// Capacity is the maximum number of entries of one lock domain: the
	// whole Cache, or one shard of a ShardedCache.
	Capacity int

	// TotalCapacity is the maximum number of entries overall.
	TotalCapacity int

	Hits      uint64
	Misses    uint64
	Evictions uint64

	// HitRate is Hits / (Hits + Misses), or 0 before the first lookup.
	HitRate float64
}

func hitRate(hits, misses uint64) float64 {
	if total := hits + misses; total > 0 {
		return float64(hits) / float64(total)
	}
	return 0
}
