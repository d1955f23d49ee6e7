package slotlru

// Insert stores k/v in the cache and promotes the entry to
// most-recently-used.
//
//   - If the cache already held k, the value is replaced in place (the
//     key itself is not overwritten) and InsertResult.Replaced is true.
//   - Else if the cache is full, the least-recently-used entry is
//     evicted to make room and InsertResult.Evicted is true.
//   - Else the new entry occupies a previously-vacant slot and neither
//     flag is set.
//
// Insert on a zero-capacity cache is a no-op.
func (c *Cache[K, V, I]) Insert(k K, v V) InsertResult[K, V] {
	if c.capacity == 0 {
		return InsertResult[K, V]{}
	}

	lookup := c.getIndexOf(k)
	if lookup.found {
		old := c.replaceValue(lookup.slot, v)
		c.moveToHead(lookup.slot)
		return InsertResult[K, V]{Replaced: true, OldValue: old}
	}

	if c.IsFull() {
		i := c.tail
		evictedKey, evictedValue := c.peekSlot(i)
		oldRankLookup := c.getIndexOf(evictedKey)
		c.writeSlot(i, k, v)
		c.evictionSwap(lookup.rank, oldRankLookup.rank, i)
		c.moveToHead(i)
		return InsertResult[K, V]{
			Evicted:      true,
			EvictedKey:   evictedKey,
			EvictedValue: evictedValue,
		}
	}

	i := c.insertAllocNew(lookup.rank, k, v)
	c.moveToHead(i)
	return InsertResult[K, V]{}
}

// insertAllocNew allocates a fresh (previously vacant) slot for k/v and
// splices it into the order index at rank, without touching the
// recency list beyond advancing tail to the newly-claimed slot (and,
// when the cache was empty, pointing head at it as well).
func (c *Cache[K, V, I]) insertAllocNew(rank I, k K, v V) I {
	var free I
	if c.length == 0 {
		c.head = c.tail
		free = c.tail
	} else {
		free = c.nexts[c.tail]
	}
	c.tail = free
	c.writeSlot(free, k, v)
	c.insertOrderAt(rank, free)
	c.length++
	return free
}

// Get returns the value for k, promoting the entry to
// most-recently-used. Use GetUntouched to look up without promoting.
func (c *Cache[K, V, I]) Get(k K) (V, bool) {
	lookup := c.getIndexOf(k)
	if !lookup.found {
		var zero V
		return zero, false
	}
	c.moveToHead(lookup.slot)
	return *c.valueAt(lookup.slot), true
}

// GetMut returns a pointer to the value for k, promoting the entry to
// most-recently-used.
func (c *Cache[K, V, I]) GetMut(k K) (*V, bool) {
	lookup := c.getIndexOf(k)
	if !lookup.found {
		return nil, false
	}
	c.moveToHead(lookup.slot)
	return c.valueAt(lookup.slot), true
}

// GetUntouched returns the value for k without changing recency order.
func (c *Cache[K, V, I]) GetUntouched(k K) (V, bool) {
	lookup := c.getIndexOf(k)
	if !lookup.found {
		var zero V
		return zero, false
	}
	return *c.valueAt(lookup.slot), true
}

// GetMutUntouched returns a pointer to the value for k without changing
// recency order.
func (c *Cache[K, V, I]) GetMutUntouched(k K) (*V, bool) {
	lookup := c.getIndexOf(k)
	if !lookup.found {
		return nil, false
	}
	return c.valueAt(lookup.slot), true
}

// Contains reports whether k is present, without changing recency order.
func (c *Cache[K, V, I]) Contains(k K) bool {
	return c.getIndexOf(k).found
}

// Remove deletes k if present and returns its value.
func (c *Cache[K, V, I]) Remove(k K) (V, bool) {
	lookup := c.getIndexOf(k)
	if !lookup.found {
		var zero V
		return zero, false
	}
	_, v := c.removeByIndex(lookup.slot, lookup.rank)
	return v, true
}

// removeByIndex is the shared tail end of Remove and the entry facade's
// Entry.Remove: given a known-occupied slot and its rank in the
// order index, extract the key/value, splice the slot back into the
// free list, and shrink the order index.
func (c *Cache[K, V, I]) removeByIndex(i, rank I) (K, V) {
	k, v := c.readOutSlot(i)

	if c.length > 1 {
		c.unlink(i)
		c.spliceIntoFreeList(i)
	}
	// If length == 1, i is both head and tail; tail == i is already the
	// correct "first vacant slot" for the now-empty cache, so the link
	// structure needs no further patching — only head must be pulled
	// back to the empty-cache sentinel below.

	c.removeOrderAt(rank)
	c.length--
	if c.length == 0 {
		c.head = c.capacity
	}
	return k, v
}
