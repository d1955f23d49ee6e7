// Package slotlru implements a constant-capacity, key-addressed LRU
// cache backed by a single, never-reallocated arena of slots.
//
// Every entry is threaded into three structures that share the same
// flat slot arrays: a doubly-linked recency list (MRU..LRU), a sorted
// permutation used as an ordered index over keys (binary-searchable),
// and an implicit free list occupying the tail of the recency list.
// Capacity is fixed at construction time and the backing slices are
// never grown or shrunk afterwards.
package slotlru

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Cache is a key-addressed LRU cache of fixed capacity cap, indexed by
// slot positions of type I. K must satisfy Ordered[K]; keys are
// compared, never hashed.
//
// The zero value is not usable; construct with New or FromArray.
type Cache[K Ordered[K], V any, I constraints.Unsigned] struct {
	capacity I
	length   I

	// head is the slot index of the most-recently-used entry.
	// head == capacity iff the cache is empty.
	head I
	// tail is the slot index of the least-recently-used entry when
	// length > 0; when length < capacity, nexts[tail] is the first
	// vacant slot. When length == 0, tail itself is the first vacant
	// slot. tail < capacity always (for capacity > 0).
	tail I

	nexts []I
	prevs []I

	// order[0:length] is a permutation of occupied slot indices,
	// sorted so that keys[order[0]] < keys[order[1]] < ... is strictly
	// increasing.
	order []I

	keys   []K
	values []V
}

// InsertResult is returned by Insert to describe what, if anything, was
// displaced by the call.
type InsertResult[K any, V any] struct {
	// Replaced is true if the key was already present; OldValue then
	// holds the value that was overwritten (the key itself is not
	// overwritten).
	Replaced bool
	OldValue V

	// Evicted is true if the cache was full and the least-recently-used
	// entry was evicted to make room; EvictedKey/EvictedValue then hold
	// the evicted pair.
	Evicted      bool
	EvictedKey   K
	EvictedValue V
}

// maxOf returns the maximum value representable by an unsigned index
// type I, i.e. all bits set.
func maxOf[I constraints.Unsigned]() I {
	return ^I(0)
}

// toIndex converts a platform int capacity/position in to the index
// type I, panicking if it doesn't fit — this is the Go analogue of the
// original's "panics if CAP > I::MAX" precondition, since here the
// requested capacity arrives as an ordinary int rather than being
// already narrowed to I by the type system.
func toIndex[I constraints.Unsigned](x int) I {
	if x < 0 {
		panic(fmt.Errorf("slotlru: negative size %d", x))
	}
	if uint64(x) > uint64(maxOf[I]()) {
		panic(fmt.Errorf("slotlru: capacity %d exceeds index width", x))
	}
	return I(x)
}

// New creates an empty Cache with the given capacity.
//
// It is a panic to call New with a negative capacity or a capacity that
// cannot be represented by I.
func New[K Ordered[K], V any, I constraints.Unsigned](capacity int) *Cache[K, V, I] {
	c := new(Cache[K, V, I])
	InitAtAlloc(c, capacity)
	return c
}

// InitAtAlloc initializes dst in place as an empty Cache of the given
// capacity. It exists so that very large caches can be constructed
// directly in caller-provided storage (a package-level var, a pooled
// allocation, ...) instead of being built on the stack and copied. New
// is a convenience wrapper that allocates dst itself.
func InitAtAlloc[K Ordered[K], V any, I constraints.Unsigned](dst *Cache[K, V, I], capacity int) {
	cap := toIndex[I](capacity)

	nexts := make([]I, capacity)
	prevs := make([]I, capacity)
	for i := 0; i < capacity; i++ {
		if i == capacity-1 {
			nexts[i] = cap
		} else {
			nexts[i] = I(i + 1)
		}
		if i == 0 {
			prevs[i] = cap
		} else {
			prevs[i] = I(i - 1)
		}
	}

	*dst = Cache[K, V, I]{
		capacity: cap,
		length:   0,
		head:     cap,
		tail:     0,
		nexts:    nexts,
		prevs:    prevs,
		order:    make([]I, capacity),
		keys:     make([]K, capacity),
		values:   make([]V, capacity),
	}
}

// CloneToAlloc initializes dst in place as a copy of c, using block
// copies for the index arrays. dst is overwritten unconditionally.
func (c *Cache[K, V, I]) CloneToAlloc(dst *Cache[K, V, I]) {
	nexts := make([]I, len(c.nexts))
	prevs := make([]I, len(c.prevs))
	order := make([]I, len(c.order))
	keys := make([]K, len(c.keys))
	values := make([]V, len(c.values))
	copy(nexts, c.nexts)
	copy(prevs, c.prevs)
	copy(order, c.order)
	copy(keys, c.keys)
	copy(values, c.values)

	*dst = Cache[K, V, I]{
		capacity: c.capacity,
		length:   c.length,
		head:     c.head,
		tail:     c.tail,
		nexts:    nexts,
		prevs:    prevs,
		order:    order,
		keys:     keys,
		values:   values,
	}
}

// Clone returns a deep-enough copy of c (a field-wise copy; if K or V
// are themselves reference types, their referents are shared, same as
// a derived Clone over a struct of references would produce).
func (c *Cache[K, V, I]) Clone() *Cache[K, V, I] {
	dst := new(Cache[K, V, I])
	c.CloneToAlloc(dst)
	return dst
}

// Cap returns the fixed capacity of the cache.
func (c *Cache[K, V, I]) Cap() I { return c.capacity }

// Len returns the number of occupied slots.
func (c *Cache[K, V, I]) Len() I { return c.length }

// IsEmpty reports whether the cache holds no entries.
func (c *Cache[K, V, I]) IsEmpty() bool { return c.length == 0 }

// IsFull reports whether the cache is at capacity.
func (c *Cache[K, V, I]) IsFull() bool { return c.length == c.capacity }

// Clear removes every entry, resetting the cache to its just-constructed
// state. Existing cells are released for garbage collection.
func (c *Cache[K, V, I]) Clear() {
	InitAtAlloc(c, int(c.capacity))
}
