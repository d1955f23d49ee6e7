package slotlru

import (
	"fmt"
	"sort"

	"golang.org/x/exp/constraints"
)

// Pair is a key/value pair, used by FromArray to describe the MRU-first
// order a bulk-built cache should start in.
type Pair[K any, V any] struct {
	Key   K
	Value V
}

// DuplicateKeysError is returned by FromArray when two input pairs share
// a key. It carries the first duplicate key found.
type DuplicateKeysError[K any] struct {
	Key K
}

func (e *DuplicateKeysError[K]) Error() string {
	return fmt.Sprintf("slotlru: duplicate key: %+v", e.Key)
}

// FromArray builds a cache of capacity len(pairs), populated from pairs
// interpreted as most-recently-used first (pairs[0] is MRU,
// pairs[len(pairs)-1] is LRU).
//
// Every pair is written into the arena before any fallible step runs, so
// that if a duplicate key is later found the cells that must be released
// already hold well-formed values. On success, the built cache is
// returned with order populated from the pairs' keys. On a duplicate
// key, construction is aborted: the first duplicate is unlinked from the
// recency list and its value cell released, and a *DuplicateKeysError is
// returned instead of a cache (there's nothing partially-usable to hand
// back, since the ordered index over the remaining pairs was never
// fully established).
func FromArray[K Ordered[K], V any, I constraints.Unsigned](pairs []Pair[K, V]) (*Cache[K, V, I], *DuplicateKeysError[K]) {
	capacity := len(pairs)
	c := new(Cache[K, V, I])
	InitAtAlloc[K, V, I](c, capacity)
	if capacity == 0 {
		return c, nil
	}

	for i, p := range pairs {
		c.keys[i] = p.Key
		c.values[i] = p.Value
	}

	c.head = 0
	c.tail = I(capacity - 1)
	c.length = I(capacity)
	for i := range c.order {
		c.order[i] = I(i)
	}
	sort.Slice(c.order, func(a, b int) bool {
		return c.keys[c.order[a]].Cmp(c.keys[c.order[b]]) < 0
	})

	for rank := 1; rank < capacity; rank++ {
		prevSlot := c.order[rank-1]
		slot := c.order[rank]
		if c.keys[slot].Cmp(c.keys[prevSlot]) == 0 {
			c.unlink(prevSlot)
			dupKey := c.keys[prevSlot]
			var zeroK K
			var zeroV V
			c.keys[prevSlot] = zeroK
			c.values[prevSlot] = zeroV
			c.length--
			return nil, &DuplicateKeysError[K]{Key: dupKey}
		}
	}

	return c, nil
}
