// Package freelist provides the stable-handle slot allocator for Akasya.
package freelist

// A slot is either occupied (value is live) or a tombstone linked into the
// free chain (next holds the index of the following free slot).
type slot[T any] struct {
	value T
	next  uint32
	free  bool
}

// Freelist is a slot-based allocator producing stable 32-bit handles.
// The backing slice only grows: deleted slots become tombstones on an
// intrusive free chain and are reused by later pushes.
type Freelist[T any] struct {
	slots []slot[T]
	head  uint32 // first tombstone; meaningful only while size < len(slots)
	size  uint32 // occupied slot count
}

// New creates an empty Freelist.
func New[T any]() *Freelist[T] {
	return &Freelist[T]{}
}

// Push stores a value and returns its handle.
// Tombstoned slots are consumed before the backing slice grows.
func (f *Freelist[T]) Push(val T) uint32 {
	// No tombstones anywhere: append at the end.
	if f.size == uint32(len(f.slots)) {
		f.slots = append(f.slots, slot[T]{value: val})
		f.size++
		return f.size - 1
	}

	s := &f.slots[f.head]
	if !s.free {
		panic("freelist: free chain head points at an occupied slot")
	}

	handle := f.head
	f.head = s.next
	*s = slot[T]{value: val}
	f.size++
	return handle
}

// Get returns the value stored under the handle.
// It reports false for tombstoned or never-issued handles.
func (f *Freelist[T]) Get(handle uint32) (T, bool) {
	if handle >= uint32(len(f.slots)) || f.slots[handle].free {
		var zero T
		return zero, false
	}
	return f.slots[handle].value, true
}

// Set replaces the value stored under the handle without disturbing the
// free chain. It reports false if the handle is not currently occupied.
func (f *Freelist[T]) Set(handle uint32, val T) bool {
	if handle >= uint32(len(f.slots)) || f.slots[handle].free {
		return false
	}
	f.slots[handle].value = val
	return true
}

// Delete tombstones the slot under the handle and links it at the head of
// the free chain. Deleting an already-freed handle is a no-op and reports
// false rather than failing.
func (f *Freelist[T]) Delete(handle uint32) bool {
	if handle >= uint32(len(f.slots)) || f.slots[handle].free {
		return false
	}

	var zero T
	f.slots[handle] = slot[T]{value: zero, next: f.head, free: true}
	f.head = handle
	f.size--
	return true
}

// Len returns the number of occupied slots.
func (f *Freelist[T]) Len() uint32 {
	return f.size
}

// IsEmpty returns true if no slot is occupied.
func (f *Freelist[T]) IsEmpty() bool {
	return f.size == 0
}

// Clear removes all slots, occupied and tombstoned, and resets the chain.
// Previously issued handles become invalid.
func (f *Freelist[T]) Clear() {
	f.slots = nil
	f.head = 0
	f.size = 0
}
