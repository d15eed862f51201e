package cache

import "fmt"

// check verifies the structural invariants of c: the capacity bound, the
// head/tail/empty relationship, a symmetric acyclic list covering exactly
// the mapped keys, and an arena whose free list accounts for every dead slot.
func (c *Cache[K, V]) check() error {
	n := len(c.items)

	if n > c.capacity {
		return fmt.Errorf("len %d exceeds capacity %d", n, c.capacity)
	}
	if (c.head == none) != (n == 0) {
		return fmt.Errorf("head=%d with len %d", c.head, n)
	}
	if (c.tail == none) != (n == 0) {
		return fmt.Errorf("tail=%d with len %d", c.tail, n)
	}

	seen := make(map[handle]bool, n)
	prev := none
	for h := c.head; h != none; {
		if seen[h] {
			return fmt.Errorf("cycle at handle %d", h)
		}
		seen[h] = true

		s := c.nodes.at(h)
		if s == nil {
			return fmt.Errorf("head walk reached dead handle %d", h)
		}
		if s.prev != prev {
			return fmt.Errorf("handle %d: prev=%d, want %d", h, s.prev, prev)
		}
		if got, ok := c.items[s.key]; !ok || got != h {
			return fmt.Errorf("key %v maps to %d (present=%t), list has %d", s.key, got, ok, h)
		}
		prev, h = h, s.next
	}
	if len(seen) != n {
		return fmt.Errorf("head walk visited %d entries, map has %d", len(seen), n)
	}
	if prev != c.tail {
		return fmt.Errorf("head walk ended at %d, tail is %d", prev, c.tail)
	}

	back := 0
	for h := c.tail; h != none && back <= n; h = c.nodes.slots[h].prev {
		back++
	}
	if back != n {
		return fmt.Errorf("tail walk visited %d entries, map has %d", back, n)
	}

	if n == 1 {
		s := c.nodes.slots[c.head]
		if c.head != c.tail || s.prev != none || s.next != none {
			return fmt.Errorf("single entry: head=%d tail=%d prev=%d next=%d", c.head, c.tail, s.prev, s.next)
		}
	}

	free := 0
	for h := c.nodes.free; h != none; h = c.nodes.slots[h].next {
		if c.nodes.slots[h].live {
			return fmt.Errorf("free list holds live handle %d", h)
		}
		if free++; free > len(c.nodes.slots) {
			return fmt.Errorf("free list cycles")
		}
	}
	if free+n != len(c.nodes.slots) {
		return fmt.Errorf("arena has %d slots, %d free + %d live", len(c.nodes.slots), free, n)
	}
	if len(c.nodes.slots) > c.capacity+1 {
		return fmt.Errorf("arena grew to %d slots for capacity %d", len(c.nodes.slots), c.capacity)
	}
	return nil
}
