package pqueue

// White-box bridge for pqueue_test: exposes the backing array and slot index
// so tests can check the heap invariant directly.

// Items returns the backing array in heap order.
func Items[E comparable](h *Heap[E]) []E { return h.items }

// SlotOf returns the recorded slot of e and whether it is indexed.
func SlotOf[E comparable](h *Heap[E], e E) (int, bool) {
	i, ok := h.slot[e]
	return i, ok
}
