package slotlru

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// refCounted is a reference type whose liveness is easy to observe: if
// a slot is vacated without the cache clearing its own pointer to the
// value, the pointer (and whatever it points to) stays reachable
// through c.values even though nothing else in the program can reach
// it anymore — exactly the leak the original Rust implementation's
// Drop impl exists to prevent. This test checks the Go analogue
// directly: a vacated slot's cell must hold a nil pointer, not a
// stale one.
type refCounted struct {
	id int
}

// TestRemoveZeroesVacatedCell verifies the drop-safety discipline (P8)
// for Remove: the backing arena cell for a removed entry must not keep
// a live reference to the removed value once the slot is vacant.
func TestRemoveZeroesVacatedCell(t *testing.T) {
	c := New[NativeOrdered[int], *refCounted, uint8](3)
	c.Insert(ik(1), &refCounted{id: 1})
	c.Insert(ik(2), &refCounted{id: 2})
	c.Insert(ik(3), &refCounted{id: 3})

	lookup := c.getIndexOf(ik(2))
	require.True(t, lookup.found)
	slot := lookup.slot

	_, ok := c.Remove(ik(2))
	require.True(t, ok)

	require.Nilf(t, c.values[slot], "vacated slot %d must not keep a reference to the removed value", slot)
	var zeroKey NativeOrdered[int]
	require.Equalf(t, zeroKey, c.keys[slot], "vacated slot %d must not keep the removed key", slot)
}

// TestEvictionOverwritesOutgoingCell verifies that the evicted entry
// does not linger in the cell that is reused for the newly inserted
// key: peekSlot (not readOutSlot) is used on the eviction path
// specifically so the order-index lookup for the outgoing key isn't
// corrupted, so the cell is never zeroed, but once Insert returns it
// holds the new entry and the evicted key no longer occupies any slot.
func TestEvictionOverwritesOutgoingCell(t *testing.T) {
	c := New[NativeOrdered[int], *refCounted, uint8](2)
	c.Insert(ik(1), &refCounted{id: 1})
	c.Insert(ik(2), &refCounted{id: 2})

	res := c.Insert(ik(3), &refCounted{id: 3})
	require.True(t, res.Evicted)
	require.Equal(t, ik(1), res.EvictedKey)
	require.Equal(t, 1, res.EvictedValue.id)

	v, ok := c.GetUntouched(ik(3))
	require.True(t, ok)
	require.Equal(t, 3, v.id)

	for _, slot := range []uint8{0, 1} {
		if c.keys[slot] == ik(1) {
			t.Fatalf("evicted key 1 must not still occupy slot %d", slot)
		}
	}
}

// TestConsumingIterZeroesAsItGoes verifies ConsumingIter releases each
// cell the moment it's yielded, not only once the whole cache becomes
// unreachable.
func TestConsumingIterZeroesAsItGoes(t *testing.T) {
	c := New[NativeOrdered[int], *refCounted, uint8](2)
	c.Insert(ik(1), &refCounted{id: 1})
	c.Insert(ik(2), &refCounted{id: 2})

	lookup := c.getIndexOf(ik(2))
	slot := lookup.slot

	it := c.IntoIter()
	_, v, ok := it.Next() // yields key 2 (MRU)
	require.True(t, ok)
	require.Equal(t, 2, v.id)

	require.Nilf(t, c.values[slot], "slot %d must be zeroed immediately after being yielded", slot)
}
