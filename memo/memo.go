// Package memo caches shared future results by key.
//
// A Cache starts at most one producer run per key and hands every caller,
// concurrent or late, the same SharedFuture for it. Occupancy is bounded by
// an LRU policy; evicting a key only forgets the cache entry, it never
// interferes with listeners already attached to the evicted future.
//
// Like the futures it stores, a Cache belongs to the execution context of
// its creator and must only be used there.
package memo

import (
	"container/list"

	"github.com/zenparsing/chromium-futures/future"
)

// entry is the key/future pair stored in the recency list.
type entry[K comparable, V any] struct {
	key K
	sf  future.SharedFuture[V]
}

// Cache is an LRU-bounded map from key to in-flight or settled result.
type Cache[K comparable, V any] struct {
	capacity int
	produce  func(K) *future.Future[V]
	onEvict  func(key K)
	ll       *list.List
	items    map[K]*list.Element
}

// Option configures a Cache at construction.
type Option[K comparable, V any] func(*Cache[K, V])

// WithOnEvict registers fn, called with each key dropped by capacity
// eviction or Remove.
func WithOnEvict[K comparable, V any](fn func(key K)) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.onEvict = fn
	}
}

// New creates a Cache over produce with the given maximum occupancy.
// capacity must be positive and produce must not be nil.
func New[K comparable, V any](capacity int, produce func(K) *future.Future[V], opts ...Option[K, V]) *Cache[K, V] {
	if capacity <= 0 {
		panic("memo: capacity must be positive")
	}
	if produce == nil {
		panic("memo: nil producer")
	}
	c := &Cache[K, V]{
		capacity: capacity,
		produce:  produce,
		ll:       list.New(),
		items:    make(map[K]*list.Element, capacity),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the shared future for key, starting the producer if the key
// is absent. The entry becomes the most recently used.
func (c *Cache[K, V]) Get(key K) future.SharedFuture[V] {
	if elem, hit := c.items[key]; hit {
		c.ll.MoveToFront(elem)
		return elem.Value.(*entry[K, V]).sf
	}

	sf := future.NewShared(c.produce(key))
	c.items[key] = c.ll.PushFront(&entry[K, V]{key: key, sf: sf})
	if c.ll.Len() > c.capacity {
		c.evictOldest()
	}
	return sf
}

// Peek returns the shared future for key without updating recency.
func (c *Cache[K, V]) Peek(key K) (future.SharedFuture[V], bool) {
	if elem, hit := c.items[key]; hit {
		return elem.Value.(*entry[K, V]).sf, true
	}
	var zero future.SharedFuture[V]
	return zero, false
}

// Remove drops key and reports whether it was present.
func (c *Cache[K, V]) Remove(key K) bool {
	elem, hit := c.items[key]
	if !hit {
		return false
	}
	c.drop(elem)
	return true
}

// Len returns the number of cached keys.
func (c *Cache[K, V]) Len() int {
	return c.ll.Len()
}

func (c *Cache[K, V]) evictOldest() {
	if elem := c.ll.Back(); elem != nil {
		c.drop(elem)
	}
}

func (c *Cache[K, V]) drop(elem *list.Element) {
	c.ll.Remove(elem)
	ent := elem.Value.(*entry[K, V])
	delete(c.items, ent.key)
	if c.onEvict != nil {
		c.onEvict(ent.key)
	}
}
