package slotlru

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"
)

// checkInvariants walks the recency+free list and the order index and
// verifies P1-P3 from spec.md's testable-properties section. It is
// called after every mutating step in the fuzz and scenario tests,
// mirroring lib/containers/arcache_test.go's (*arc).check() harness in
// the teacher repository.
func checkInvariants[K Ordered[K], V any, I constraints.Unsigned](t testing.TB, c *Cache[K, V, I]) {
	t.Helper()

	require.LessOrEqualf(t, c.length, c.capacity, "P1 violated:\n%s", c.Dump())

	if c.length == 0 {
		require.Equalf(t, c.capacity, c.head, "head must be the empty-cache sentinel:\n%s", c.Dump())
	}

	if c.capacity == 0 {
		return
	}

	occupied := make(map[I]bool, c.length)
	for rank := I(0); rank < c.length; rank++ {
		slot := c.order[rank]
		require.Falsef(t, occupied[slot], "P3 violated: slot %v appears twice in order index:\n%s", slot, c.Dump())
		occupied[slot] = true
		if rank > 0 {
			prevSlot := c.order[rank-1]
			require.Lessf(t, c.keys[prevSlot].Cmp(c.keys[slot]), 1,
				"P3 violated: order index keys not strictly increasing at rank %v:\n%s", rank, c.Dump())
			require.NotEqualf(t, 0, c.keys[prevSlot].Cmp(c.keys[slot]),
				"P3 violated: duplicate adjacent keys in order index at rank %v:\n%s", rank, c.Dump())
		}
	}

	var start I
	if c.length > 0 {
		start = c.head
	} else {
		start = c.tail
	}

	visited := make([]bool, c.capacity)
	prevExpected := c.capacity
	cur := start
	var steps I
	for steps < c.capacity {
		require.NotEqualf(t, c.capacity, cur, "P2 violated: chain ended early after %v/%v steps:\n%s", steps, c.capacity, c.Dump())
		require.Falsef(t, visited[cur], "P2 violated: slot %v visited twice in recency+free chain:\n%s", cur, c.Dump())
		visited[cur] = true

		require.Equalf(t, prevExpected, c.prevs[cur], "P2 violated: prevs is not the inverse of nexts at slot %v:\n%s", cur, c.Dump())

		wantOccupied := steps < c.length
		require.Equalf(t, wantOccupied, occupied[cur],
			"P2 violated: recency/free ordering broken at step %v (slot %v):\n%s", steps, cur, c.Dump())

		prevExpected = cur
		cur = c.nexts[cur]
		steps++
	}
	require.Equalf(t, c.capacity, cur, "P2 violated: chain did not terminate at sentinel after %v steps:\n%s", c.capacity, c.Dump())
}
