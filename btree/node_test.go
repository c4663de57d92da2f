package btree

import "testing"

// newTestTree creates a tree with deliberately tiny nodes so a handful of
// inserts already exercises splitting and multi-level descent.
// With int keys and values: leaf capacity 4, pivot capacity 3.
func newTestTree(t *testing.T) *Tree[int, int] {
	t.Helper()

	tree, err := NewWithNodeSize[int, int](96)
	if err != nil {
		t.Fatalf("failed to create tree: %v", err)
	}
	return tree
}

// =============================================================================
// Construction Tests
// =============================================================================

func TestNewTree(t *testing.T) {
	tree, err := New[int, int]()
	if err != nil {
		t.Fatalf("failed to create tree: %v", err)
	}

	if !tree.IsEmpty() {
		t.Error("new tree should be empty")
	}
	if tree.Len() != 0 {
		t.Errorf("new tree should have length 0, got %d", tree.Len())
	}
	if !tree.root.leaf {
		t.Error("new tree root should be a leaf")
	}
	if tree.NodeSize() != DefaultNodeSize {
		t.Errorf("expected node size %d, got %d", DefaultNodeSize, tree.NodeSize())
	}
}

func TestCapacityDerivation(t *testing.T) {
	tree := newTestTree(t)

	// (96-32)/(8+8) entries per leaf; one fewer pivot than children.
	if tree.LeafCapacity() != 4 {
		t.Errorf("expected leaf capacity 4, got %d", tree.LeafCapacity())
	}
	if tree.PivotCapacity() != 3 {
		t.Errorf("expected pivot capacity 3, got %d", tree.PivotCapacity())
	}
	if cap(tree.root.keys) != 4 {
		t.Errorf("leaf key storage should be preallocated at capacity, got %d", cap(tree.root.keys))
	}
}

func TestNodeSizeTooSmall(t *testing.T) {
	for _, size := range []int{0, 16, 32, 48, 95} {
		if _, err := NewWithNodeSize[int, int](size); err != ErrNodeSizeTooSmall {
			t.Errorf("node size %d: expected ErrNodeSizeTooSmall, got %v", size, err)
		}
	}
}

// =============================================================================
// Node Primitive Tests
// =============================================================================

func TestFindKey(t *testing.T) {
	tree := newTestTree(t)
	n := tree.newLeafNode()
	n.keys = append(n.keys, 10, 20, 30)
	n.values = append(n.values, 1, 2, 3)

	tests := []struct {
		key       int
		wantIdx   int
		wantFound bool
	}{
		{5, 0, false},
		{10, 0, true},
		{15, 1, false},
		{20, 1, true},
		{25, 2, false},
		{30, 2, true},
		{35, 3, false},
	}

	for _, tt := range tests {
		idx, found := n.findKey(tt.key)
		if idx != tt.wantIdx || found != tt.wantFound {
			t.Errorf("findKey(%d) = (%d, %v), want (%d, %v)", tt.key, idx, found, tt.wantIdx, tt.wantFound)
		}
	}
}

func TestInsertRemoveEntry(t *testing.T) {
	tree := newTestTree(t)
	n := tree.newLeafNode()

	n.insertEntryAt(0, 20, 200)
	n.insertEntryAt(0, 10, 100)
	n.insertEntryAt(2, 30, 300)

	wantKeys := []int{10, 20, 30}
	for i, k := range wantKeys {
		if n.keys[i] != k {
			t.Fatalf("keys[%d] = %d, want %d", i, n.keys[i], k)
		}
		if n.values[i] != k*10 {
			t.Fatalf("values[%d] = %d, want %d", i, n.values[i], k*10)
		}
	}

	n.removeEntryAt(1)
	if len(n.keys) != 2 || n.keys[0] != 10 || n.keys[1] != 30 {
		t.Errorf("after removal expected keys [10 30], got %v", n.keys)
	}
	if n.values[0] != 100 || n.values[1] != 300 {
		t.Errorf("values must stay aligned with keys, got %v", n.values)
	}
}

func TestLeafSplitKeepsPivotInRightHalf(t *testing.T) {
	tree := newTestTree(t)
	n := tree.newLeafNode()
	n.keys = append(n.keys, 1, 2, 3, 4)
	n.values = append(n.values, 10, 20, 30, 40)

	pivot, right := tree.splitNode(n)

	if pivot != 3 {
		t.Errorf("expected pivot 3, got %d", pivot)
	}
	if len(n.keys) != 2 || n.keys[0] != 1 || n.keys[1] != 2 {
		t.Errorf("left half should keep [1 2], got %v", n.keys)
	}
	// The separating key is duplicated into the right half: a search for
	// the pivot itself must land on its entry.
	if len(right.keys) != 2 || right.keys[0] != 3 || right.keys[1] != 4 {
		t.Errorf("right half should keep [3 4], got %v", right.keys)
	}
	if right.values[0] != 30 || right.values[1] != 40 {
		t.Errorf("right values should be [30 40], got %v", right.values)
	}
}

func TestInternalSplitConsumesPivot(t *testing.T) {
	tree := newTestTree(t)

	leaves := make([]*node[int, int], 4)
	for i := range leaves {
		leaves[i] = tree.newLeafNode()
		leaves[i].keys = append(leaves[i].keys, i*10)
		leaves[i].values = append(leaves[i].values, i)
	}

	n := tree.newInternalNode()
	n.keys = append(n.keys, 10, 20, 30)
	n.children = append(n.children, leaves...)

	pivot, right := tree.splitNode(n)

	if pivot != 20 {
		t.Errorf("expected pivot 20, got %d", pivot)
	}
	// Unlike the leaf case, the middle pivot appears in neither half.
	if len(n.keys) != 1 || n.keys[0] != 10 {
		t.Errorf("left half should keep pivots [10], got %v", n.keys)
	}
	if len(right.keys) != 1 || right.keys[0] != 30 {
		t.Errorf("right half should keep pivots [30], got %v", right.keys)
	}
	if len(n.children) != 2 || len(right.children) != 2 {
		t.Errorf("children should split 2/2, got %d/%d", len(n.children), len(right.children))
	}
	if n.children[0] != leaves[0] || right.children[0] != leaves[2] {
		t.Error("children should keep their order across the split")
	}
}

func TestDetachLoneChild(t *testing.T) {
	tree := newTestTree(t)

	leaf := tree.newLeafNode()
	leaf.keys = append(leaf.keys, 7)
	leaf.values = append(leaf.values, 70)

	if leaf.detachLoneChild() != nil {
		t.Error("leaves never have children to detach")
	}

	n := tree.newInternalNode()
	n.children = append(n.children, leaf)
	if got := n.detachLoneChild(); got != leaf {
		t.Errorf("expected the lone child back, got %v", got)
	}
	if len(n.children) != 0 {
		t.Error("detached child should be removed from the node")
	}

	two := tree.newInternalNode()
	two.keys = append(two.keys, 5)
	two.children = append(two.children, tree.newLeafNode(), tree.newLeafNode())
	if two.detachLoneChild() != nil {
		t.Error("nodes with two children are not collapsible")
	}
}

func TestTotalLenRecounts(t *testing.T) {
	tree := newTestTree(t)
	for i := 0; i < 50; i++ {
		tree.Insert(i, i)
	}

	if got := tree.root.totalLen(); got != 50 {
		t.Errorf("expected total length 50, got %d", got)
	}

	tree.Delete(25)
	if got := tree.root.totalLen(); got != 49 {
		t.Errorf("count must reflect the tree as-is, got %d", got)
	}
}
