// Package cache provides a generic, thread-safe LRU (Least Recently Used)
// cache. The converter uses it to memoize conversion reports keyed by input
// text.
//
// # Usage
//
//	c := cache.NewLRU[string, int](128)
//	c.Put("a", 1)
//	v, ok := c.Get("a") // 1, true
//
// When a Put pushes the cache over its capacity the least recently used
// entry is dropped. Get counts as a use.
//
// All methods are safe for concurrent use. Values are stored as given; a
// caller that shares mutable values must copy them itself.
package cache
