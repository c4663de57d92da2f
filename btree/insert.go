// Package btree provides the in-memory ordered index at the core of Akasya.
package btree

// Insert adds a key-value pair to the tree.
// If the key already exists, its value is overwritten in place.
//
// Algorithm:
//  1. If the root is full, split it and wrap both halves under a fresh
//     internal root (the tree grows by one level)
//  2. Descend toward the target leaf, splitting any full child from its
//     parent before stepping into it
//  3. Insert into the leaf in sorted order
//
// Splitting eagerly on the way down means a node is never found full while
// it is the live target of an insert.
func (t *Tree[K, V]) Insert(key K, val V) {
	if t.isFull(t.root) {
		pivot, right := t.splitNode(t.root)
		newRoot := t.newInternalNode()
		newRoot.keys = append(newRoot.keys, pivot)
		newRoot.children = append(newRoot.children, t.root, right)
		t.root = newRoot
	}
	t.nodeInsert(t.root, key, val)
}

// nodeInsert inserts into the subtree rooted at n.
// n must not be full: the caller pre-splits it one level up.
func (t *Tree[K, V]) nodeInsert(n *node[K, V], key K, val V) {
	idx, found := n.findKey(key)

	if n.leaf {
		if found {
			n.values[idx] = val
			return
		}
		if len(n.keys) >= t.leafCap {
			panic("btree: insert into full leaf")
		}
		n.insertEntryAt(idx, key, val)
		return
	}

	if found {
		// A key equal to a pivot lives in the right subtree.
		idx++
	}
	if t.isFull(n.children[idx]) {
		t.splitChild(n, idx)
		// The split put a new pivot at idx; the key may now belong to
		// the new right child. Ties route right.
		if key >= n.keys[idx] {
			idx++
		}
	}

	t.nodeInsert(n.children[idx], key, val)
}

// splitChild splits the full child at index idx of parent and links the
// separating pivot and the new right sibling into parent.
func (t *Tree[K, V]) splitChild(parent *node[K, V], idx int) {
	if len(parent.keys) >= t.pivotCap {
		panic("btree: split into full parent")
	}
	pivot, right := t.splitNode(parent.children[idx])
	parent.insertPivotChildAt(idx, pivot, right)
}

// splitNode splits a node in half. The node mutates in place into the left
// half; the returned node owns the right half, separated by the returned
// pivot.
//
// The two kinds split asymmetrically, and routing depends on it:
//
//   - Leaf: the pivot is the right half's first key and stays stored
//     there, so a search for the pivot itself lands on the entry.
//   - Internal: the middle pivot is consumed, appearing in neither half;
//     it only separates them in the parent.
func (t *Tree[K, V]) splitNode(n *node[K, V]) (K, *node[K, V]) {
	mid := len(n.keys) / 2
	pivot := n.keys[mid]

	if n.leaf {
		right := t.newLeafNode()
		right.keys = append(right.keys, n.keys[mid:]...)
		right.values = append(right.values, n.values[mid:]...)

		var zk K
		var zv V
		for i := mid; i < len(n.keys); i++ {
			n.keys[i] = zk
			n.values[i] = zv
		}
		n.keys = n.keys[:mid]
		n.values = n.values[:mid]
		return pivot, right
	}

	right := t.newInternalNode()
	right.keys = append(right.keys, n.keys[mid+1:]...)
	right.children = append(right.children, n.children[mid+1:]...)

	var zk K
	for i := mid; i < len(n.keys); i++ {
		n.keys[i] = zk
	}
	for i := mid + 1; i < len(n.children); i++ {
		n.children[i] = nil
	}
	n.keys = n.keys[:mid]
	n.children = n.children[:mid+1]
	return pivot, right
}
