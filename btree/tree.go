// Package btree provides the in-memory ordered index at the core of Akasya.
package btree

import (
	"cmp"
	"errors"
	"unsafe"
)

// Node sizing constants.
const (
	// DefaultNodeSize is the node byte budget used by New.
	// It matches the usual memory page size.
	DefaultNodeSize = 4096

	// nodeOverhead is the per-node byte budget reserved for headers when
	// deriving capacities from the node size.
	nodeOverhead = 32
)

// Tree errors.
var (
	ErrNodeSizeTooSmall = errors.New("btree: node size too small for key/value layout")
)

// Tree is an in-memory ordered key-value index. Keys are unique; inserting
// an existing key overwrites its value.
//
// A Tree owns exactly one root node, which may change between leaf and
// internal as the tree grows and shrinks by one level. Node capacities are
// fixed at construction and never change for the lifetime of the tree.
//
// A Tree is a sequential structure: callers that share one across
// goroutines must provide their own synchronization.
type Tree[K cmp.Ordered, V any] struct {
	root *node[K, V]

	nodeSize int
	leafCap  int // max entries per leaf
	pivotCap int // max pivots per internal node
	childCap int // max children per internal node
}

// New creates a Tree with the default node size.
func New[K cmp.Ordered, V any]() (*Tree[K, V], error) {
	return NewWithNodeSize[K, V](DefaultNodeSize)
}

// NewWithNodeSize creates a Tree whose node capacities are derived from the
// given node byte budget and the sizes of K, V, and a child reference.
// Returns ErrNodeSizeTooSmall if the budget cannot hold well-formed nodes.
func NewWithNodeSize[K cmp.Ordered, V any](nodeSize int) (*Tree[K, V], error) {
	var zk K
	var zv V
	keySize := int(unsafe.Sizeof(zk))
	valSize := int(unsafe.Sizeof(zv))
	refSize := int(unsafe.Sizeof((*node[K, V])(nil)))

	if nodeSize <= nodeOverhead {
		return nil, ErrNodeSizeTooSmall
	}

	leafCap := (nodeSize - nodeOverhead) / (keySize + valSize)
	internalCap := (nodeSize - nodeOverhead) / (refSize + keySize)

	// A leaf split needs both halves populated and an internal split
	// additionally consumes its middle pivot.
	if leafCap < 2 || internalCap-1 < 3 {
		return nil, ErrNodeSizeTooSmall
	}

	t := &Tree[K, V]{
		nodeSize: nodeSize,
		leafCap:  leafCap,
		pivotCap: internalCap - 1,
		childCap: internalCap,
	}
	t.root = t.newLeafNode()
	return t, nil
}

// newLeafNode allocates an empty leaf at full capacity.
func (t *Tree[K, V]) newLeafNode() *node[K, V] {
	return &node[K, V]{
		leaf:   true,
		keys:   make([]K, 0, t.leafCap),
		values: make([]V, 0, t.leafCap),
	}
}

// newInternalNode allocates an empty internal node at full capacity.
func (t *Tree[K, V]) newInternalNode() *node[K, V] {
	return &node[K, V]{
		keys:     make([]K, 0, t.pivotCap),
		children: make([]*node[K, V], 0, t.childCap),
	}
}

// isFull reports whether the node's primary sequence is at capacity.
func (t *Tree[K, V]) isFull(n *node[K, V]) bool {
	if n.leaf {
		return len(n.keys) >= t.leafCap
	}
	return len(n.keys) >= t.pivotCap
}

// NodeSize returns the node byte budget the tree was built with.
func (t *Tree[K, V]) NodeSize() int {
	return t.nodeSize
}

// LeafCapacity returns the maximum number of entries per leaf node.
func (t *Tree[K, V]) LeafCapacity() int {
	return t.leafCap
}

// PivotCapacity returns the maximum number of pivots per internal node.
func (t *Tree[K, V]) PivotCapacity() int {
	return t.pivotCap
}

// Len returns the number of entries in the tree. The count is recomputed
// by a full traversal on every call.
func (t *Tree[K, V]) Len() int {
	return t.root.totalLen()
}

// IsEmpty returns true if the tree holds no entries.
func (t *Tree[K, V]) IsEmpty() bool {
	return len(t.root.keys) == 0
}

// Height returns the number of node levels in the tree. An empty tree has
// height 1: the root is always present.
func (t *Tree[K, V]) Height() int {
	h := 1
	for n := t.root; !n.leaf; n = n.children[0] {
		h++
	}
	return h
}
