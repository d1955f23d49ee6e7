package slotlru

import (
	"github.com/davecgh/go-spew/spew"
)

// dumpConfig mirrors the debug-dump configuration used by the reference
// CLI tooling's spew dumpers (cmd/btrfs-dbg, inspect_spewitems): pointer
// addresses are noise when all you want is the shape of the data.
var dumpConfig = spew.NewDefaultConfig()

func init() {
	dumpConfig.DisablePointerAddresses = true
	dumpConfig.DisableCapacities = true
}

// dumpState is the plain struct spew renders; it exists so the dump
// shows field names rather than slotlru.Cache's unexported layout
// verbatim, and so it can be reused by both Cache.Dump and invariant-
// check failure messages in tests.
type dumpState[K any, V any, I any] struct {
	Capacity I
	Length   I
	Head     I
	Tail     I
	Nexts    []I
	Prevs    []I
	Order    []I
	Keys     []K
	Values   []V
}

// Dump renders the full internal state of the cache — arena, recency
// list, and order index — for debugging and test failure diagnostics.
// It is not part of the cache's steady-state API surface; production
// code has no business inspecting slot indices directly.
func (c *Cache[K, V, I]) Dump() string {
	return dumpConfig.Sdump(dumpState[K, V, I]{
		Capacity: c.capacity,
		Length:   c.length,
		Head:     c.head,
		Tail:     c.tail,
		Nexts:    c.nexts,
		Prevs:    c.prevs,
		Order:    c.order,
		Keys:     c.keys,
		Values:   c.values,
	})
}
