// Package cache provides the bounded caches behind label images and font
// metrics.
//
// # Cache[K, V]
//
// A least-recently-used cache with an exact capacity. Inserting past the
// capacity evicts the least recently used entry and reports it to the
// optional eviction hook. Label images use it so that every rasterized
// label is reachable from exactly one key until it is evicted.
//
//	c := cache.New[string, *Image](2048)
//	c.Set("key", img)
//	img, ok := c.Get("key")
//
// # ShardedCache[K, V]
//
// A sharded LRU cache for values that many replays read at once, such as
// per-font line heights. Keys are spread over 16 shards by a Hasher.
//
//	heights := cache.NewSharded[string, float64](64, cache.StringHasher)
//	h := heights.GetOrCreate("10px sans-serif", measure)
//
// # Thread Safety
//
// Both Cache and ShardedCache are safe for concurrent use.
// Neither should be copied after creation (they contain mutexes).
package cache
