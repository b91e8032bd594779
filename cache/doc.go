// Package cache provides generic LRU caches with hit statistics.
//
// Cache is a single-lock LRU. ShardedCache spreads keys over
// DefaultShardCount independent Caches so that concurrent glyph engines
// rarely contend on the same lock. Both are safe for concurrent use.
package cache
