package slotlru

// unlink removes slot i from the recency list, patching its neighbors.
// head and tail are updated iff i is one of them and the list has more
// than one element; with exactly one element, head/tail are left
// pointing at i (the caller's next step is typically to re-link i
// elsewhere, e.g. at the head, or to treat the now-single-element list
// as having become empty).
//
// unlink may be called with a slot that is about to be vacated or one
// that is being promoted; it only touches link fields, never key/value
// cells.
func (c *Cache[K, V, I]) unlink(i I) {
	next := c.nexts[i]
	prev := c.prevs[i]

	if next != c.capacity {
		c.prevs[next] = prev
	}
	if prev != c.capacity {
		c.nexts[prev] = next
	}

	isOneElemList := c.head == c.tail

	if c.head == i && !isOneElemList {
		c.head = next
	}
	if c.tail == i && !isOneElemList {
		c.tail = prev
	}
}

// moveToHead moves the entry at slot i to the most-recently-used
// position. i must already be a linked, occupied slot.
func (c *Cache[K, V, I]) moveToHead(i I) {
	if c.head == i {
		return
	}

	c.unlink(i)

	head := c.head
	c.prevs[i] = c.capacity
	c.nexts[i] = head
	c.prevs[head] = i
	c.head = i
}

// spliceIntoFreeList threads slot i back in as the first vacant slot,
// just after tail in recency order, so the previous first-free slot
// (if any) stays reachable as nexts[i]. Callers must have already
// unlinked i from the occupied portion of the list (or never linked it
// there in the first place) and must not call this when i == tail's
// current value in a way that would self-reference.
func (c *Cache[K, V, I]) spliceIntoFreeList(i I) {
	t := c.tail
	firstFree := c.nexts[t]

	if firstFree != c.capacity {
		c.prevs[firstFree] = i
	}
	c.nexts[i] = firstFree
	c.prevs[i] = t
	c.nexts[t] = i
}
