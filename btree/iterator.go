// Package btree provides the in-memory ordered index at the core of Akasya.
package btree

import "cmp"

// Iterator walks tree entries in ascending key order.
//
// It descends the tree with an explicit stack instead of sibling links,
// so entries are produced by an in-order traversal of the leaves. Iterators
// are read-only views: modifying the tree while one is live invalidates it.
type Iterator[K cmp.Ordered, V any] struct {
	stack   []iterFrame[K, V]
	end     K
	bounded bool
}

// iterFrame records a position inside one node of the descent.
// For leaves pos is the next entry to emit; for internal nodes it is the
// next child to descend into.
type iterFrame[K cmp.Ordered, V any] struct {
	n   *node[K, V]
	pos int
}

// Next returns the next entry in ascending key order.
// Returns ok=false once the iterator is exhausted or the upper bound has
// been passed; after that, every call keeps returning false.
func (it *Iterator[K, V]) Next() (key K, val V, ok bool) {
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		n := top.n

		if n.leaf {
			if top.pos < len(n.keys) {
				key = n.keys[top.pos]
				if it.bounded && key > it.end {
					it.stack = nil
					var zk K
					var zv V
					return zk, zv, false
				}
				val = n.values[top.pos]
				top.pos++
				return key, val, true
			}
			it.stack = it.stack[:len(it.stack)-1]
			continue
		}

		if top.pos < len(n.children) {
			child := n.children[top.pos]
			top.pos++
			it.stack = append(it.stack, iterFrame[K, V]{n: child})
			continue
		}
		it.stack = it.stack[:len(it.stack)-1]
	}

	var zk K
	var zv V
	return zk, zv, false
}
