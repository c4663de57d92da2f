// Package btree provides the in-memory ordered index at the core of Akasya.
package btree

// Get returns the value stored under key.
// The second result reports whether the key was present.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	n := t.root
	for {
		idx, found := n.findKey(key)
		if n.leaf {
			if found {
				return n.values[idx], true
			}
			var zero V
			return zero, false
		}
		if found {
			// A key equal to a pivot lives in the right subtree.
			idx++
		}
		n = n.children[idx]
	}
}

// Contains reports whether the key is present.
func (t *Tree[K, V]) Contains(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// Min returns the smallest key in the tree.
// Reports false if the tree is empty.
func (t *Tree[K, V]) Min() (K, bool) {
	if t.IsEmpty() {
		var zero K
		return zero, false
	}
	return t.minKey(t.root), true
}

// Max returns the largest key in the tree.
// Reports false if the tree is empty.
func (t *Tree[K, V]) Max() (K, bool) {
	if t.IsEmpty() {
		var zero K
		return zero, false
	}
	n := t.root
	for !n.leaf {
		n = n.children[len(n.children)-1]
	}
	return n.keys[len(n.keys)-1], true
}

// All returns an iterator over every entry in the tree in ascending key
// order. The tree must not be modified while the iterator is in use.
func (t *Tree[K, V]) All() *Iterator[K, V] {
	return &Iterator[K, V]{
		stack: []iterFrame[K, V]{{n: t.root}},
	}
}

// Range returns an iterator over entries with start <= key <= end, in
// ascending key order. The tree must not be modified while the iterator is
// in use.
func (t *Tree[K, V]) Range(start, end K) *Iterator[K, V] {
	it := &Iterator[K, V]{end: end, bounded: true}

	// Seed the stack with the descent path toward start. Internal frames
	// record the next child to visit once their subtree at start's side
	// is exhausted.
	n := t.root
	for !n.leaf {
		idx, found := n.findKey(start)
		if found {
			idx++
		}
		it.stack = append(it.stack, iterFrame[K, V]{n: n, pos: idx + 1})
		n = n.children[idx]
	}
	idx, _ := n.findKey(start)
	it.stack = append(it.stack, iterFrame[K, V]{n: n, pos: idx})
	return it
}
