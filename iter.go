package slotlru

import "golang.org/x/exp/constraints"

// Iter walks entries in recency order, from most- to least-recently-used
// (and, in reverse, from least- to most-recently-used). It is
// double-ended: Next and NextBack advance from opposite ends of the
// recency list and meet in the middle. Iter never changes recency
// order, even though the underlying cache is mutable — see IterMut for
// a variant that yields mutable value references.
//
// An Iter's cursors are invalidated by any mutation of the backing
// cache made through another path; continuing to use it afterwards is
// undefined behavior, same as for any other view in this package.
type Iter[K Ordered[K], V any, I constraints.Unsigned] struct {
	c           *Cache[K, V, I]
	front, back I
	remaining   I
}

// Iter returns a forward/reverse iterator over c in recency order.
func (c *Cache[K, V, I]) Iter() *Iter[K, V, I] {
	return &Iter[K, V, I]{c: c, front: c.head, back: c.tail, remaining: c.length}
}

// Len returns the number of entries not yet yielded.
func (it *Iter[K, V, I]) Len() I { return it.remaining }

// Next yields the next entry from the most-recently-used end.
func (it *Iter[K, V, I]) Next() (K, V, bool) {
	if it.remaining == 0 {
		var zk K
		var zv V
		return zk, zv, false
	}
	i := it.front
	k, v := it.c.keyAt(i), *it.c.valueAt(i)
	it.remaining--
	if it.remaining > 0 {
		it.front = it.c.nexts[i]
	}
	return k, v, true
}

// NextBack yields the next entry from the least-recently-used end.
func (it *Iter[K, V, I]) NextBack() (K, V, bool) {
	if it.remaining == 0 {
		var zk K
		var zv V
		return zk, zv, false
	}
	i := it.back
	k, v := it.c.keyAt(i), *it.c.valueAt(i)
	it.remaining--
	if it.remaining > 0 {
		it.back = it.c.prevs[i]
	}
	return k, v, true
}

// IterMut is Iter's mutable-value variant: Next/NextBack return a
// pointer to the stored value so callers can update it in place. Like
// Iter, it never changes recency order.
type IterMut[K Ordered[K], V any, I constraints.Unsigned] struct {
	c           *Cache[K, V, I]
	front, back I
	remaining   I
}

// IterMut returns a forward/reverse mutable-value iterator over c in
// recency order.
func (c *Cache[K, V, I]) IterMut() *IterMut[K, V, I] {
	return &IterMut[K, V, I]{c: c, front: c.head, back: c.tail, remaining: c.length}
}

func (it *IterMut[K, V, I]) Len() I { return it.remaining }

func (it *IterMut[K, V, I]) Next() (K, *V, bool) {
	if it.remaining == 0 {
		var zk K
		return zk, nil, false
	}
	i := it.front
	k, v := it.c.keyAt(i), it.c.valueAt(i)
	it.remaining--
	if it.remaining > 0 {
		it.front = it.c.nexts[i]
	}
	return k, v, true
}

func (it *IterMut[K, V, I]) NextBack() (K, *V, bool) {
	if it.remaining == 0 {
		var zk K
		return zk, nil, false
	}
	i := it.back
	k, v := it.c.keyAt(i), it.c.valueAt(i)
	it.remaining--
	if it.remaining > 0 {
		it.back = it.c.prevs[i]
	}
	return k, v, true
}

// ConsumingIter drains the cache as it iterates: each yielded entry's
// cell is zeroed immediately (so it is released for garbage collection
// right away, rather than only when the whole Cache becomes
// unreachable), and Len() on the backing cache shrinks accordingly.
//
// This is the Go translation of the reference implementation's owning
// IntoIter, which can be safely dropped mid-iteration because its own
// destructor finishes releasing the not-yet-yielded entries. Go has no
// destructors, so instead: already-yielded entries are released
// eagerly by ConsumingIter itself, and any entries never yielded are
// released whenever the Cache (still reachable through c) is itself
// collected — ordinary GC reachability plays the role the reference
// implementation's Drop impl would. Calling any other mutating method
// on the underlying Cache while a ConsumingIter over it is in use is
// undefined behavior, same as for Iter/IterMut.
//
// ConsumingIter does not touch the order index: once iteration begins,
// the cache is no longer expected to serve Get/Insert/Remove correctly,
// only to eventually be discarded.
type ConsumingIter[K Ordered[K], V any, I constraints.Unsigned] struct {
	c           *Cache[K, V, I]
	front, back I
	remaining   I
}

// IntoIter takes ownership of c for the purpose of draining it; c
// should not be used through any other method once IntoIter has been
// called.
func (c *Cache[K, V, I]) IntoIter() *ConsumingIter[K, V, I] {
	return &ConsumingIter[K, V, I]{c: c, front: c.head, back: c.tail, remaining: c.length}
}

func (it *ConsumingIter[K, V, I]) Len() I { return it.remaining }

func (it *ConsumingIter[K, V, I]) Next() (K, V, bool) {
	if it.remaining == 0 {
		var zk K
		var zv V
		return zk, zv, false
	}
	i := it.front
	next := it.c.nexts[i]
	k, v := it.c.readOutSlot(i)
	it.remaining--
	it.c.length--
	if it.c.length == 0 {
		it.c.head = it.c.capacity
	}
	it.front = next
	return k, v, true
}

func (it *ConsumingIter[K, V, I]) NextBack() (K, V, bool) {
	if it.remaining == 0 {
		var zk K
		var zv V
		return zk, zv, false
	}
	i := it.back
	prev := it.c.prevs[i]
	k, v := it.c.readOutSlot(i)
	it.remaining--
	it.c.length--
	if it.c.length == 0 {
		it.c.head = it.c.capacity
	}
	it.back = prev
	return k, v, true
}
