package cache

import "fmt"

// Cache is a fixed-capacity key–value cache with LRU eviction.
//
// The core design is a map for O(1) key lookup plus a doubly-linked recency
// list. List nodes live in an arena and link to each other by handle, so the
// map stores key -> handle and there is a single owner of every entry.
//
// Cache is not safe for concurrent use. Callers that share one across
// goroutines must guard it with their own mutex.
type Cache[K comparable, V any] struct {
	capacity int

	items map[K]handle
	nodes arena[K, V]

	head handle // most recently used
	tail handle // least recently used, next to be evicted
}

// New constructs an empty cache holding at most capacity entries.
//
// A capacity of 0 is allowed: every Put is evicted immediately.
// A negative capacity panics.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity < 0 {
		panic("cache: negative capacity")
	}

	return &Cache[K, V]{
		capacity: capacity,
		items:    make(map[K]handle, capacity+1),
		nodes:    newArena[K, V](capacity),
		head:     none,
		tail:     none,
	}
}

// NewWith constructs a cache and stores one initial entry in it.
func NewWith[K comparable, V any](key K, value V, capacity int) *Cache[K, V] {
	c := New[K, V](capacity)
	c.Put(key, value)
	return c
}

// Put writes or overwrites key and marks it most recently used.
//
// If the write pushes the cache over capacity, the least recently used
// entry is evicted.
func (c *Cache[K, V]) Put(key K, value V) {
	if h, ok := c.items[key]; ok {
		c.nodes.slots[h].value = value
		c.moveToFront(h)
		return
	}

	h := c.nodes.alloc(key, value)
	c.items[key] = h
	c.pushFront(h)

	if len(c.items) > c.capacity {
		c.evict()
	}
}

// Get reads key. A hit counts as use and promotes the entry to most
// recently used; a miss leaves the cache untouched.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	h, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}

	c.moveToFront(h)
	return c.nodes.slots[h].value, true
}

// Peek reads key without changing its recency.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	h, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	return c.nodes.slots[h].value, true
}

// Contains reports whether key is cached, without changing its recency.
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.items[key]
	return ok
}

// Len returns the number of live entries.
func (c *Cache[K, V]) Len() int {
	return len(c.items)
}

// Cap returns the capacity the cache was constructed with.
func (c *Cache[K, V]) Cap() int {
	return c.capacity
}

// Keys returns keys in MRU -> LRU order (does not change recency).
func (c *Cache[K, V]) Keys() []K {
	out := make([]K, 0, len(c.items))
	c.walk(func(s *slot[K, V]) {
		out = append(out, s.key)
	})
	return out
}

// Values returns values in MRU -> LRU order (does not change recency).
func (c *Cache[K, V]) Values() []V {
	out := make([]V, 0, len(c.items))
	c.walk(func(s *slot[K, V]) {
		out = append(out, s.value)
	})
	return out
}

// walk visits entries from head to tail. It stops at the first link that
// does not resolve to a live slot and never takes more than Len steps, so
// it terminates even if the list has been corrupted.
func (c *Cache[K, V]) walk(fn func(*slot[K, V])) {
	h := c.head
	for n := 0; n < len(c.items); n++ {
		s := c.nodes.at(h)
		if s == nil {
			return
		}
		fn(s)
		h = s.next
	}
}

// moveToFront relinks h as the head. Unlinking the tail hands the tail
// position to its previous neighbor.
func (c *Cache[K, V]) moveToFront(h handle) {
	if c.head == h {
		return
	}
	c.unlink(h)
	c.pushFront(h)
}

// pushFront links an unlinked slot in as the new head. Into an empty list
// it becomes the tail too.
func (c *Cache[K, V]) pushFront(h handle) {
	s := &c.nodes.slots[h]
	s.prev = none
	s.next = c.head

	if c.head != none {
		c.nodes.slots[c.head].prev = h
	}
	c.head = h

	if c.tail == none {
		c.tail = h
	}
}

// unlink detaches h from its neighbors and clears its own links.
func (c *Cache[K, V]) unlink(h handle) {
	s := &c.nodes.slots[h]

	if s.prev != none {
		c.nodes.slots[s.prev].next = s.next
	} else {
		c.head = s.next
	}

	if s.next != none {
		c.nodes.slots[s.next].prev = s.prev
	} else {
		c.tail = s.prev
	}

	s.prev, s.next = none, none
}

// evict discards the tail entry. It only runs when the cache is over
// capacity, so a missing or dangling tail means the list is broken.
func (c *Cache[K, V]) evict() {
	h := c.tail
	if h == none {
		panic("cache: evict with no tail")
	}

	s := c.nodes.at(h)
	if s == nil {
		panic(fmt.Sprintf("cache: tail %d does not resolve to an entry", h))
	}

	key := s.key
	c.unlink(h)
	delete(c.items, key)
	c.nodes.release(h)
}
