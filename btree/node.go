// Package btree provides the in-memory ordered index at the core of Akasya.
package btree

import "cmp"

// node is a single B-tree node, tagged by kind.
//
// Leaf nodes keep two parallel sequences: keys (strictly ascending, no
// duplicates) and values, with values[i] belonging to keys[i].
//
// Internal nodes reuse keys as their pivot sequence and keep
// len(children) == len(keys)+1. For the child at position i, every key in
// that subtree is < keys[i] (when i < len(keys)) and >= keys[i-1] (when
// i > 0); a key equal to keys[i] always lives under children[i+1].
//
// All three sequences are allocated once, at the node's capacity, and are
// never reallocated afterwards.
type node[K cmp.Ordered, V any] struct {
	leaf     bool
	keys     []K
	values   []V
	children []*node[K, V]
}

// findKey binary-searches the node's key sequence.
// Returns the index of the key if present, otherwise the index where it
// would be inserted. For internal nodes the insertion index is also the
// child to descend into.
func (n *node[K, V]) findKey(key K) (int, bool) {
	low, high := 0, len(n.keys)
	for low < high {
		mid := (low + high) / 2
		switch c := cmp.Compare(key, n.keys[mid]); {
		case c > 0:
			low = mid + 1
		case c < 0:
			high = mid
		default:
			return mid, true
		}
	}
	return low, false
}

// isEmpty reports whether the node's primary sequence is empty.
// An internal node with no pivots may still hold a single child; see
// detachLoneChild.
func (n *node[K, V]) isEmpty() bool {
	return len(n.keys) == 0
}

// insertEntryAt inserts a key-value pair at index i of a leaf,
// shifting later entries right.
func (n *node[K, V]) insertEntryAt(i int, key K, val V) {
	var zk K
	var zv V
	n.keys = append(n.keys, zk)
	copy(n.keys[i+1:], n.keys[i:])
	n.keys[i] = key

	n.values = append(n.values, zv)
	copy(n.values[i+1:], n.values[i:])
	n.values[i] = val
}

// removeEntryAt removes the key-value pair at index i of a leaf.
func (n *node[K, V]) removeEntryAt(i int) {
	var zk K
	var zv V
	copy(n.keys[i:], n.keys[i+1:])
	n.keys[len(n.keys)-1] = zk
	n.keys = n.keys[:len(n.keys)-1]

	copy(n.values[i:], n.values[i+1:])
	n.values[len(n.values)-1] = zv
	n.values = n.values[:len(n.values)-1]
}

// insertPivotChildAt inserts a pivot at index i and its right child at
// index i+1 of an internal node.
func (n *node[K, V]) insertPivotChildAt(i int, pivot K, child *node[K, V]) {
	var zk K
	n.keys = append(n.keys, zk)
	copy(n.keys[i+1:], n.keys[i:])
	n.keys[i] = pivot

	n.children = append(n.children, nil)
	copy(n.children[i+2:], n.children[i+1:])
	n.children[i+1] = child
}

// removePivotAt removes the pivot at index i of an internal node.
func (n *node[K, V]) removePivotAt(i int) {
	var zk K
	copy(n.keys[i:], n.keys[i+1:])
	n.keys[len(n.keys)-1] = zk
	n.keys = n.keys[:len(n.keys)-1]
}

// removeChildAt detaches and returns the child at index i.
func (n *node[K, V]) removeChildAt(i int) *node[K, V] {
	child := n.children[i]
	copy(n.children[i:], n.children[i+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
	return child
}

// detachLoneChild pops and returns the node's child if it is an internal
// node left with exactly one, which makes the node structurally redundant.
// Returns nil for leaves and for internal nodes with more than one child.
func (n *node[K, V]) detachLoneChild() *node[K, V] {
	if n.leaf || len(n.children) != 1 {
		return nil
	}
	return n.removeChildAt(0)
}

// totalLen counts the entries stored in the subtree. The count is never
// cached; every call walks the subtree.
func (n *node[K, V]) totalLen() int {
	if n.leaf {
		return len(n.keys)
	}
	total := 0
	for _, child := range n.children {
		total += child.totalLen()
	}
	return total
}
