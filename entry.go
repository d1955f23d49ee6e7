package slotlru

import "golang.org/x/exp/constraints"

// Entry is a view into a single slot of the cache for a given key,
// obtained via (*Cache).Entry. It amortizes the single binary search
// needed to determine whether the key is present across the "look up,
// then maybe insert derived from the key" pattern.
//
// An Entry is either occupied or vacant; call Occupied to discriminate
// before calling the methods that apply to only one of the two states.
// Calling an occupied-only method on a vacant Entry (or vice versa) is a
// programmer error and panics, mirroring the way the reference
// implementation makes this a compile error via two distinct types.
type Entry[K Ordered[K], V any, I constraints.Unsigned] struct {
	c        *Cache[K, V, I]
	key      K
	slot     I // meaningful iff occupied
	rank     I // meaningful in both states
	occupied bool
}

// Entry returns a view of the cache's slot for k. CAP == 0 caches have
// no valid entry view and Entry panics if called on one.
func (c *Cache[K, V, I]) Entry(k K) Entry[K, V, I] {
	if c.capacity == 0 {
		panic("slotlru: Entry is not valid for a zero-capacity cache")
	}
	lookup := c.getIndexOf(k)
	return Entry[K, V, I]{
		c:        c,
		key:      k,
		slot:     lookup.slot,
		rank:     lookup.rank,
		occupied: lookup.found,
	}
}

// Occupied reports whether the entry already existed in the cache at
// the time Entry was called.
func (e Entry[K, V, I]) Occupied() bool { return e.occupied }

// Key returns the key this entry was created for.
func (e Entry[K, V, I]) Key() K { return e.key }

func (e Entry[K, V, I]) requireOccupied() {
	if !e.occupied {
		panic("slotlru: Entry method requires an occupied entry")
	}
}

func (e Entry[K, V, I]) requireVacant() {
	if e.occupied {
		panic("slotlru: Entry method requires a vacant entry")
	}
}

// Get returns the entry's value, promoting it to most-recently-used.
// Panics if the entry is vacant.
func (e Entry[K, V, I]) Get() *V {
	e.requireOccupied()
	e.c.moveToHead(e.slot)
	return e.c.valueAt(e.slot)
}

// GetUntouched returns the entry's value without promoting it. Panics
// if the entry is vacant.
func (e Entry[K, V, I]) GetUntouched() *V {
	e.requireOccupied()
	return e.c.valueAt(e.slot)
}

// Replace overwrites the entry's value in place (the key is left
// untouched) and returns the previous value, without changing recency
// order. Panics if the entry is vacant.
func (e Entry[K, V, I]) Replace(v V) V {
	e.requireOccupied()
	return e.c.replaceValue(e.slot, v)
}

// Remove deletes the entry and returns its key and value. Panics if the
// entry is vacant.
func (e Entry[K, V, I]) Remove() (K, V) {
	e.requireOccupied()
	return e.c.removeByIndex(e.slot, e.rank)
}

// Insert stores v under this entry's key, returning a pointer to the
// stored value and, if the cache was full, the evicted pair. Panics if
// the entry is occupied — use Replace or Get for that case.
func (e Entry[K, V, I]) Insert(v V) (*V, *InsertResult[K, V]) {
	e.requireVacant()
	c := e.c
	if c.IsFull() {
		i := c.tail
		evictedKey, evictedValue := c.peekSlot(i)
		oldRankLookup := c.getIndexOf(evictedKey)
		c.writeSlot(i, e.key, v)
		c.evictionSwap(e.rank, oldRankLookup.rank, i)
		c.moveToHead(i)
		return c.valueAt(i), &InsertResult[K, V]{
			Evicted:      true,
			EvictedKey:   evictedKey,
			EvictedValue: evictedValue,
		}
	}
	i := c.insertAllocNew(e.rank, e.key, v)
	c.moveToHead(i)
	return c.valueAt(i), nil
}

// OrInsertWithKey ensures a value is present for this entry's key,
// inserting the result of f (called with the key) if it was vacant, and
// returns a pointer to the value. Either way the entry is promoted to
// most-recently-used.
func (e Entry[K, V, I]) OrInsertWithKey(f func(K) V) *V {
	if e.occupied {
		return e.Get()
	}
	v, _ := e.Insert(f(e.key))
	return v
}

// OrInsertWith is like OrInsertWithKey but f takes no arguments.
func (e Entry[K, V, I]) OrInsertWith(f func() V) *V {
	return e.OrInsertWithKey(func(K) V { return f() })
}

// OrInsert is like OrInsertWith but takes the default value directly.
func (e Entry[K, V, I]) OrInsert(def V) *V {
	return e.OrInsertWithKey(func(K) V { return def })
}
