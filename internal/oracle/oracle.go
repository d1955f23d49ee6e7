// Package oracle wraps a trusted third-party LRU implementation as a
// reference model for differential testing: the fuzz harness drives an
// equal sequence of operations through both slotlru.Cache and an
// Oracle, then compares recency order and contents after each step.
package oracle

import (
	lru "github.com/hashicorp/golang-lru"
)

// Oracle is a plain (non-adaptive) LRU cache of interface{} keys and
// values, sized to match a slotlru.Cache under test. It exists purely
// as ground truth for fuzzing; production code has no use for it.
type Oracle struct {
	capacity int
	inner    *lru.Cache
}

// New creates an Oracle with the given fixed capacity. capacity must be
// at least 1, matching the underlying library's constructor.
func New(capacity int) *Oracle {
	inner, err := lru.New(capacity)
	if err != nil {
		panic(err)
	}
	return &Oracle{capacity: capacity, inner: inner}
}

// Cap returns the oracle's fixed capacity.
func (o *Oracle) Cap() int { return o.capacity }

// Insert mirrors slotlru.Cache.Insert, reporting whether a
// least-recently-used entry was evicted to make room and, if so, its
// key and value. The least-recently-used key and its value are read
// before the underlying Add call, since an evicted entry can no longer
// be peeked afterwards.
func (o *Oracle) Insert(key, value interface{}) (evictedKey, evictedValue interface{}, evicted bool) {
	alreadyPresent := o.inner.Contains(key)

	var lruKey, lruValue interface{}
	hadLRU := false
	if !alreadyPresent {
		if keys := o.inner.Keys(); len(keys) > 0 {
			lruKey = keys[0] // Keys() is oldest-to-newest
			lruValue, _ = o.inner.Peek(lruKey)
			hadLRU = true
		}
	}

	wasEvicted := o.inner.Add(key, value)
	if wasEvicted && hadLRU {
		return lruKey, lruValue, true
	}
	return nil, nil, false
}

// Get looks up key, promoting it to most-recently-used.
func (o *Oracle) Get(key interface{}) (interface{}, bool) {
	return o.inner.Get(key)
}

// GetUntouched looks up key without changing recency order.
func (o *Oracle) GetUntouched(key interface{}) (interface{}, bool) {
	return o.inner.Peek(key)
}

// Remove deletes key if present.
func (o *Oracle) Remove(key interface{}) {
	o.inner.Remove(key)
}

// Contains reports whether key is present, without changing recency
// order.
func (o *Oracle) Contains(key interface{}) bool {
	return o.inner.Contains(key)
}

// Len returns the number of entries currently stored.
func (o *Oracle) Len() int {
	return o.inner.Len()
}

// RecencyKeys returns keys from most- to least-recently-used, the same
// direction slotlru.Cache.Iter walks in.
func (o *Oracle) RecencyKeys() []interface{} {
	keys := o.inner.Keys() // oldest to newest == LRU to MRU
	out := make([]interface{}, len(keys))
	for i, k := range keys {
		out[len(keys)-1-i] = k
	}
	return out
}
