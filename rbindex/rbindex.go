// Package rbindex implements a key-ordered index backed by a red-black
// tree instead of a sorted array. It is the alternative design
// discussed for the ordered key index: an array-backed index gives
// O(log n) search but O(n) insert/remove (shifting elements); a
// red-black tree gives O(log n) for all three at the cost of per-entry
// pointer overhead and no binary-searchable backing array.
//
// It is usable on its own as a plain ordered map from key to slot
// index, or as a substitute order index for a cache implementation
// that would rather pay the pointer overhead than the shifting cost.
package rbindex

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

type color bool

const (
	black = color(false)
	red   = color(true)
)

type node[K any, I any] struct {
	parent, left, right *node[K, I]
	color               color
	key                 K
	slot                I
}

func (n *node[K, I]) getColor() color {
	if n == nil {
		return black
	}
	return n.color
}

// Ordered is the key-comparison constraint, identical in spirit to the
// slot-arena cache's own key constraint: keys are compared, never
// hashed.
type Ordered[T any] interface {
	Cmp(T) int
}

// Index is an ordered map from K to a slot index I, backed by a
// red-black tree.
type Index[K Ordered[K], I constraints.Unsigned] struct {
	root *node[K, I]
	len  int
}

// Len returns the number of keys stored.
func (t *Index[K, I]) Len() int { return t.len }

func (t *Index[K, I]) search(key K) (exact, nearestParent *node[K, I]) {
	var prev *node[K, I]
	cur := t.root
	for cur != nil {
		prev = cur
		switch cmp := key.Cmp(cur.key); {
		case cmp == 0:
			return cur, nil
		case cmp < 0:
			cur = cur.left
		default:
			cur = cur.right
		}
	}
	return nil, prev
}

// Lookup returns the slot stored for key, if present.
func (t *Index[K, I]) Lookup(key K) (I, bool) {
	n, _ := t.search(key)
	if n == nil {
		var zero I
		return zero, false
	}
	return n.slot, true
}

func min[K any, I any](n *node[K, I]) *node[K, I] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

func max[K any, I any](n *node[K, I]) *node[K, I] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// Min returns the smallest key in the index.
func (t *Index[K, I]) Min() (K, I, bool) {
	n := min[K, I](t.root)
	if n == nil {
		var zk K
		var zi I
		return zk, zi, false
	}
	return n.key, n.slot, true
}

// Max returns the largest key in the index.
func (t *Index[K, I]) Max() (K, I, bool) {
	n := max[K, I](t.root)
	if n == nil {
		var zk K
		var zi I
		return zk, zi, false
	}
	return n.key, n.slot, true
}

func (n *node[K, I]) next() *node[K, I] {
	if n.right != nil {
		return min[K, I](n.right)
	}
	child, parent := n, n.parent
	for parent != nil && child == parent.right {
		child, parent = parent, parent.parent
	}
	return parent
}

func (n *node[K, I]) prev() *node[K, I] {
	if n.left != nil {
		return max[K, I](n.left)
	}
	child, parent := n, n.parent
	for parent != nil && child == parent.left {
		child, parent = parent, parent.parent
	}
	return parent
}

// Cursor walks the index in ascending key order starting from key (or
// the first key greater than it, if key itself is absent).
type Cursor[K Ordered[K], I constraints.Unsigned] struct {
	n *node[K, I]
}

// Seek returns a cursor positioned at the smallest key >= key.
func (t *Index[K, I]) Seek(key K) Cursor[K, I] {
	exact, parent := t.search(key)
	if exact != nil {
		return Cursor[K, I]{n: exact}
	}
	if parent == nil {
		return Cursor[K, I]{}
	}
	if key.Cmp(parent.key) < 0 {
		return Cursor[K, I]{n: parent}
	}
	return Cursor[K, I]{n: parent.next()}
}

// Valid reports whether the cursor is positioned on an entry.
func (c Cursor[K, I]) Valid() bool { return c.n != nil }

// KeySlot returns the key and slot the cursor is positioned on. Calling
// it on an invalid cursor panics.
func (c Cursor[K, I]) KeySlot() (K, I) {
	if c.n == nil {
		panic("rbindex: KeySlot on an invalid cursor")
	}
	return c.n.key, c.n.slot
}

// Next advances the cursor to the next-largest key.
func (c Cursor[K, I]) Next() Cursor[K, I] {
	if c.n == nil {
		return c
	}
	return Cursor[K, I]{n: c.n.next()}
}

// Prev moves the cursor to the next-smallest key.
func (c Cursor[K, I]) Prev() Cursor[K, I] {
	if c.n == nil {
		return c
	}
	return Cursor[K, I]{n: c.n.prev()}
}

func (t *Index[K, I]) parentSlot(n *node[K, I]) **node[K, I] {
	switch {
	case n.parent == nil:
		return &t.root
	case n.parent.left == n:
		return &n.parent.left
	case n.parent.right == n:
		return &n.parent.right
	default:
		panic(fmt.Errorf("rbindex: node %p is not a child of its recorded parent %p", n, n.parent))
	}
}

func (t *Index[K, I]) leftRotate(x *node[K, I]) {
	p := x.parent
	pChild := t.parentSlot(x)
	y := x.right
	b := y.left

	y.parent = p
	*pChild = y

	x.parent = y
	y.left = x

	if b != nil {
		b.parent = x
	}
	x.right = b
}

func (t *Index[K, I]) rightRotate(y *node[K, I]) {
	p := y.parent
	pChild := t.parentSlot(y)
	x := y.left
	b := x.right

	x.parent = p
	*pChild = x

	y.parent = x
	x.right = y

	if b != nil {
		b.parent = y
	}
	y.left = b
}

// Insert stores slot under key, overwriting any existing slot for that
// key.
func (t *Index[K, I]) Insert(key K, slot I) {
	exact, parent := t.search(key)
	if exact != nil {
		exact.slot = slot
		return
	}
	t.len++

	n := &node[K, I]{color: red, parent: parent, key: key, slot: slot}
	switch {
	case parent == nil:
		t.root = n
	case key.Cmp(parent.key) < 0:
		parent.left = n
	default:
		parent.right = n
	}

	// Rebalance: CLRS 3e RB-INSERT-FIXUP.
	for n.parent.getColor() == red {
		if n.parent == n.parent.parent.left {
			uncle := n.parent.parent.right
			if uncle.getColor() == red {
				n.parent.color = black
				uncle.color = black
				n.parent.parent.color = red
				n = n.parent.parent
			} else {
				if n == n.parent.right {
					n = n.parent
					t.leftRotate(n)
				}
				n.parent.color = black
				n.parent.parent.color = red
				t.rightRotate(n.parent.parent)
			}
		} else {
			uncle := n.parent.parent.left
			if uncle.getColor() == red {
				n.parent.color = black
				uncle.color = black
				n.parent.parent.color = red
				n = n.parent.parent
			} else {
				if n == n.parent.left {
					n = n.parent
					t.rightRotate(n)
				}
				n.parent.color = black
				n.parent.parent.color = red
				t.leftRotate(n.parent.parent)
			}
		}
	}
	t.root.color = black
}

func (t *Index[K, I]) transplant(oldNode, newNode *node[K, I]) {
	*t.parentSlot(oldNode) = newNode
	if newNode != nil {
		newNode.parent = oldNode.parent
	}
}

// Delete removes key from the index, if present.
func (t *Index[K, I]) Delete(key K) {
	nodeToDelete, _ := t.search(key)
	if nodeToDelete == nil {
		return
	}
	t.len--

	// CLRS 3e RB-DELETE.

	var nodeToRebalance, nodeToRebalanceParent *node[K, I]
	needsRebalance := nodeToDelete.color == black

	switch {
	case nodeToDelete.left == nil:
		nodeToRebalance = nodeToDelete.right
		nodeToRebalanceParent = nodeToDelete.parent
		t.transplant(nodeToDelete, nodeToDelete.right)
	case nodeToDelete.right == nil:
		nodeToRebalance = nodeToDelete.left
		nodeToRebalanceParent = nodeToDelete.parent
		t.transplant(nodeToDelete, nodeToDelete.left)
	default:
		successor := nodeToDelete.next()
		if successor.parent == nodeToDelete {
			nodeToRebalance = successor.right
			nodeToRebalanceParent = successor

			*t.parentSlot(nodeToDelete) = successor
			successor.parent = nodeToDelete.parent

			successor.left = nodeToDelete.left
			successor.left.parent = successor
		} else {
			y := successor.parent
			b := successor.right
			nodeToRebalance = b
			nodeToRebalanceParent = y

			*t.parentSlot(nodeToDelete) = successor
			successor.parent = nodeToDelete.parent

			successor.left = nodeToDelete.left
			successor.left.parent = successor

			successor.right = nodeToDelete.right
			successor.right.parent = successor

			y.left = b
			if b != nil {
				b.parent = y
			}
		}
		needsRebalance = successor.color == black
		successor.color = nodeToDelete.color
	}

	if !needsRebalance {
		return
	}

	n := nodeToRebalance
	nParent := nodeToRebalanceParent
	for n != t.root && n.getColor() == black {
		if n == nParent.left {
			sibling := nParent.right
			if sibling.getColor() == red {
				sibling.color = black
				nParent.color = red
				t.leftRotate(nParent)
				sibling = nParent.right
			}
			if sibling.left.getColor() == black && sibling.right.getColor() == black {
				sibling.color = red
				n, nParent = nParent, nParent.parent
			} else {
				if sibling.right.getColor() == black {
					sibling.left.color = black
					sibling.color = red
					t.rightRotate(sibling)
					sibling = nParent.right
				}
				sibling.color = nParent.color
				nParent.color = black
				sibling.right.color = black
				t.leftRotate(nParent)
				n, nParent = t.root, nil
			}
		} else {
			sibling := nParent.left
			if sibling.getColor() == red {
				sibling.color = black
				nParent.color = red
				t.rightRotate(nParent)
				sibling = nParent.left
			}
			if sibling.right.getColor() == black && sibling.left.getColor() == black {
				sibling.color = red
				n, nParent = nParent, nParent.parent
			} else {
				if sibling.left.getColor() == black {
					sibling.right.color = black
					sibling.color = red
					t.leftRotate(sibling)
					sibling = nParent.left
				}
				sibling.color = nParent.color
				nParent.color = black
				sibling.left.color = black
				t.rightRotate(nParent)
				n, nParent = t.root, nil
			}
		}
	}
	if n != nil {
		n.color = black
	}
}

// Walk visits every key/slot pair in ascending key order.
func (t *Index[K, I]) Walk(fn func(K, I)) {
	var rec func(*node[K, I])
	rec = func(n *node[K, I]) {
		if n == nil {
			return
		}
		rec(n.left)
		fn(n.key, n.slot)
		rec(n.right)
	}
	rec(t.root)
}
