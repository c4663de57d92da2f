// Package btree implements the in-memory ordered key-value index at the
// core of Akasya.
//
// # Overview
//
// The tree keeps unique, totally ordered keys and provides:
//
//   - O(log n) Insert, Get, and Delete
//   - Ascending iteration and range scans
//   - Fixed-capacity nodes sized from a memory-page byte budget
//
// Nodes come in two kinds. Leaves store the entries themselves as parallel
// key/value sequences; internal nodes store pivot keys and child
// references. All node storage is allocated once at node creation and is
// never reallocated, so a tree built for a given node size has stable,
// page-shaped memory behavior.
//
// Rebalancing is decided locally during the recursive descent: inserts
// split a full child from its parent before stepping into it, and deletes
// repair an emptied child on the way back up. A key equal to an internal
// pivot always routes into the right child subtree.
//
// # Usage
//
// Create and use a tree:
//
//	tree, err := btree.New[uint64, string]()
//
//	// Insert key-value pairs
//	tree.Insert(42, "answer")
//
//	// Look up a key
//	val, ok := tree.Get(42)
//
//	// Scan a key range
//	it := tree.Range(10, 99)
//	for k, v, ok := it.Next(); ok; k, v, ok = it.Next() {
//	    _ = k
//	    _ = v
//	}
//
// # Concurrency
//
// A Tree is single-owner and sequential. Nothing blocks and nothing
// yields; callers that share a tree across goroutines must provide their
// own synchronization.
package btree
