package cache

// handle addresses a slot in the arena. Handles are stable for the lifetime
// of the entry they point at and are recycled after the entry is evicted.
type handle int

// none marks an absent link (no previous, no next, empty head/tail).
const none handle = -1

// slot is one arena cell. A live slot holds an entry; a free slot is
// chained through next on the free list.
type slot[K comparable, V any] struct {
	key   K
	value V
	prev  handle
	next  handle
	live  bool
}

// arena stores entries contiguously and hands out index handles, so the
// recency list links are plain integers rather than pointers.
type arena[K comparable, V any] struct {
	slots []slot[K, V]
	free  handle
}

func newArena[K comparable, V any](capacity int) arena[K, V] {
	// One extra slot: Put inserts before it evicts.
	return arena[K, V]{
		slots: make([]slot[K, V], 0, capacity+1),
		free:  none,
	}
}

// alloc returns a handle to an unlinked live slot holding key and value.
func (a *arena[K, V]) alloc(key K, value V) handle {
	s := slot[K, V]{key: key, value: value, prev: none, next: none, live: true}

	if h := a.free; h != none {
		a.free = a.slots[h].next
		a.slots[h] = s
		return h
	}

	a.slots = append(a.slots, s)
	return handle(len(a.slots) - 1)
}

// release clears the slot so it does not retain the key or value, then
// pushes it onto the free list.
func (a *arena[K, V]) release(h handle) {
	a.slots[h] = slot[K, V]{prev: none, next: a.free}
	a.free = h
}

// at returns the live slot behind h, or nil if h is out of range or free.
func (a *arena[K, V]) at(h handle) *slot[K, V] {
	if h < 0 || int(h) >= len(a.slots) {
		return nil
	}
	s := &a.slots[h]
	if !s.live {
		return nil
	}
	return s
}
