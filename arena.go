package slotlru

// This file holds the slot arena's internal helpers. A slot is either
// occupied (reachable from order[0:length]) or vacant; vacant cells are
// never read. Go has no MaybeUninit, so vacant cells simply hold K's and
// V's zero values — the discipline that matters is that nothing ever
// reads a cell before confirming, via the order index or a known-valid
// slot index, that it is occupied.

// writeSlot performs the one-time initialization of a newly-occupied
// slot's cells.
func (c *Cache[K, V, I]) writeSlot(i I, k K, v V) {
	c.keys[i] = k
	c.values[i] = v
}

// valueAt returns a pointer to the value stored at a known-occupied
// slot, without checking occupancy.
func (c *Cache[K, V, I]) valueAt(i I) *V {
	return &c.values[i]
}

// keyAt returns the key stored at a known-occupied slot.
func (c *Cache[K, V, I]) keyAt(i I) K {
	return c.keys[i]
}

// peekSlot reads the key and value at a known-occupied slot without
// zeroing the cells. Used where the slot is about to be overwritten by
// writeSlot anyway (the eviction path), so readOutSlot's zeroing would
// be both wasted and actively wrong: it would corrupt any order-index
// lookup keyed on the just-read value that happens to probe this same
// slot before the overwrite occurs.
func (c *Cache[K, V, I]) peekSlot(i I) (K, V) {
	return c.keys[i], c.values[i]
}

// readOutSlot destructively extracts the key and value at a
// known-occupied slot, zeroing the cells so that no stale reference is
// held past the slot becoming vacant (this is the drop-safety
// discipline: a vacant slot must not keep alive a value nobody can
// reach anymore).
func (c *Cache[K, V, I]) readOutSlot(i I) (K, V) {
	k, v := c.keys[i], c.values[i]
	var zeroK K
	var zeroV V
	c.keys[i] = zeroK
	c.values[i] = zeroV
	return k, v
}

// replaceValue stores a new value at a known-occupied slot, returning
// the value it displaced. The key is left untouched.
func (c *Cache[K, V, I]) replaceValue(i I, v V) V {
	old := c.values[i]
	c.values[i] = v
	return old
}
