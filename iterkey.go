package slotlru

import "golang.org/x/exp/constraints"

// KeyIter walks entries in ascending key order (and, in reverse,
// descending key order), by walking the order index directly. It is
// double-ended and never changes recency order.
type KeyIter[K Ordered[K], V any, I constraints.Unsigned] struct {
	c      *Cache[K, V, I]
	lo, hi I // remaining range is order[lo:hi]
}

// KeyIter returns a forward/reverse iterator over c in ascending key
// order.
func (c *Cache[K, V, I]) KeyIter() *KeyIter[K, V, I] {
	return &KeyIter[K, V, I]{c: c, lo: 0, hi: c.length}
}

func (it *KeyIter[K, V, I]) Len() I { return it.hi - it.lo }

// Next yields the next entry in ascending key order.
func (it *KeyIter[K, V, I]) Next() (K, V, bool) {
	if it.lo >= it.hi {
		var zk K
		var zv V
		return zk, zv, false
	}
	slot := it.c.order[it.lo]
	it.lo++
	return it.c.keyAt(slot), *it.c.valueAt(slot), true
}

// NextBack yields the next entry in descending key order.
func (it *KeyIter[K, V, I]) NextBack() (K, V, bool) {
	if it.lo >= it.hi {
		var zk K
		var zv V
		return zk, zv, false
	}
	it.hi--
	slot := it.c.order[it.hi]
	return it.c.keyAt(slot), *it.c.valueAt(slot), true
}

// KeyIterMut is KeyIter's mutable-value variant.
type KeyIterMut[K Ordered[K], V any, I constraints.Unsigned] struct {
	c      *Cache[K, V, I]
	lo, hi I
}

// KeyIterMut returns a forward/reverse mutable-value iterator over c in
// ascending key order.
func (c *Cache[K, V, I]) KeyIterMut() *KeyIterMut[K, V, I] {
	return &KeyIterMut[K, V, I]{c: c, lo: 0, hi: c.length}
}

func (it *KeyIterMut[K, V, I]) Len() I { return it.hi - it.lo }

func (it *KeyIterMut[K, V, I]) Next() (K, *V, bool) {
	if it.lo >= it.hi {
		var zk K
		return zk, nil, false
	}
	slot := it.c.order[it.lo]
	it.lo++
	return it.c.keyAt(slot), it.c.valueAt(slot), true
}

func (it *KeyIterMut[K, V, I]) NextBack() (K, *V, bool) {
	if it.lo >= it.hi {
		var zk K
		return zk, nil, false
	}
	it.hi--
	slot := it.c.order[it.hi]
	return it.c.keyAt(slot), it.c.valueAt(slot), true
}
