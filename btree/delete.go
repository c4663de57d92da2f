// Package btree provides the in-memory ordered index at the core of Akasya.
package btree

// Delete removes a key from the tree.
// Returns true iff the key was present and removed.
//
// Algorithm:
//  1. Descend toward the key, routing right on pivot ties
//  2. Remove the entry from its leaf
//  3. On the way back up, repair any child emptied by the removal
//     (promote a lone grandchild, rebalance from the right sibling, or
//     drop the child and its pivot)
//  4. If the root ends up as an empty internal node with one remaining
//     child, promote that child (the tree shrinks by one level)
func (t *Tree[K, V]) Delete(key K) bool {
	if !t.nodeDelete(t.root, key) {
		return false
	}
	if t.root.isEmpty() {
		if only := t.root.detachLoneChild(); only != nil {
			t.root = only
		}
	}
	return true
}

// nodeDelete removes key from the subtree rooted at n, repairing n's child
// sequence if the removal emptied a child.
func (t *Tree[K, V]) nodeDelete(n *node[K, V], key K) bool {
	idx, found := n.findKey(key)

	if n.leaf {
		if !found {
			return false
		}
		n.removeEntryAt(idx)
		return true
	}

	if found {
		// The key is pivot idx; its entry lives under the right child.
		child := n.children[idx+1]
		if !t.nodeDelete(child, key) {
			return false
		}
		if child.isEmpty() {
			if only := child.detachLoneChild(); only != nil {
				// The child kept a subtree behind an empty pivot
				// sequence; promote it rather than lose it.
				n.children[idx+1] = only
				n.keys[idx] = t.minKey(only)
			} else {
				// Splice the empty child out; the left neighbor
				// absorbs the gap.
				n.removePivotAt(idx)
				n.removeChildAt(idx + 1)
			}
		} else {
			// Removing the pivot's entry changed the child's minimum;
			// the pivot must keep matching it.
			n.keys[idx] = t.minKey(child)
		}
		return true
	}

	child := n.children[idx]
	if !t.nodeDelete(child, key) {
		return false
	}
	if child.isEmpty() {
		t.repairEmptyChild(n, idx)
	}
	return true
}

// repairEmptyChild restores n's shape after the child at index idx was
// emptied by a delete. Strategies, in order:
//
//  1. The empty child still holds exactly one grandchild: promote the
//     grandchild into the child's slot, collapsing one level locally
//  2. The right sibling is large enough to halve: split it, move its left
//     half into the empty child's slot, and separate the halves with the
//     split's pivot
//  3. Otherwise drop the empty child and its pivot, shrinking n's fan-out
func (t *Tree[K, V]) repairEmptyChild(n *node[K, V], idx int) {
	child := n.children[idx]

	if only := child.detachLoneChild(); only != nil {
		n.children[idx] = only
		return
	}

	if idx < len(n.keys) {
		sibling := n.children[idx+1]
		if t.canHalve(sibling) {
			pivot, right := t.splitNode(sibling)
			n.children[idx] = sibling
			n.children[idx+1] = right
			n.keys[idx] = pivot
			return
		}
		n.removePivotAt(idx)
		n.removeChildAt(idx)
		return
	}

	// Rightmost child: no right sibling, drop it with the last pivot.
	n.removePivotAt(len(n.keys) - 1)
	n.removeChildAt(idx)
}

// canHalve reports whether a node can be split for rebalancing with both
// halves left non-empty. Internal splits consume the middle pivot, so an
// internal node needs a pivot more.
func (t *Tree[K, V]) canHalve(n *node[K, V]) bool {
	if n.leaf {
		return len(n.keys) > 1
	}
	return len(n.keys) > 2
}

// minKey returns the smallest key in the subtree rooted at n.
// n must not be empty.
func (t *Tree[K, V]) minKey(n *node[K, V]) K {
	for !n.leaf {
		n = n.children[0]
	}
	return n.keys[0]
}
