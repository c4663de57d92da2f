// Package freelist implements a slot-based allocator with stable 32-bit
// handles for the Akasya storage primitives.
//
// # Overview
//
// A Freelist maps handles to values of a fixed type, backed by a single
// growable slice of slots. It provides:
//
//   - O(1) Push, Get, and Delete
//   - Stable handles: deleting one handle never invalidates another
//   - Tombstone reuse: freed slots are consumed before the backing
//     slice grows
//
// Freed slots are not removed from the backing slice. Instead each one
// becomes a tombstone linked into an intrusive singly-linked chain of free
// slots, and the next Push consumes the head of that chain.
//
// # Usage
//
//	fl := freelist.New[string]()
//
//	h := fl.Push("alice")
//	v, ok := fl.Get(h)
//
//	fl.Delete(h) // h may now be handed out again by a later Push
//
// The freelist is a sequential structure: callers that share one across
// goroutines must provide their own synchronization.
package freelist
