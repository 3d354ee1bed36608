// Package pqueue provides an indexed binary min-heap ordered by a caller score function.
//
// Unlike container/heap, the Heap tracks the slot of every element it holds, so an
// element whose score changed can be re-positioned (Rescore, Fix) or removed in
// O(log n) without a linear scan.
//
// Ordering:
//
//   - Invariant: score(items[n]) >= score(items[(n-1)/2]) for every n > 0.
//   - Comparisons are strict: equal scores never swap, and there is no
//     secondary key. Pop order among ties is whatever the swaps produce.
//
// Scores are read through the score function on every comparison, so callers
// mutate the underlying score first and then call Rescore or Fix.
//
// A Heap is not safe for concurrent use.
package pqueue

// Heap is an indexed binary min-heap of comparable elements.
type Heap[E comparable] struct {
	items []E
	slot  map[E]int
	score func(E) float64
}

// New returns an empty Heap ordered by score. capacity is a size hint.
// Panics if score is nil.
func New[E comparable](score func(E) float64, capacity int) *Heap[E] {
	if score == nil {
		panic("pqueue: New(nil score)")
	}
	if capacity < 0 {
		capacity = 0
	}
	return &Heap[E]{
		items: make([]E, 0, capacity),
		slot:  make(map[E]int, capacity),
		score: score,
	}
}

// Len returns the number of elements.
func (h *Heap[E]) Len() int { return len(h.items) }

// Contains reports whether e is in the heap.
func (h *Heap[E]) Contains(e E) bool {
	_, ok := h.slot[e]
	return ok
}

// Push inserts e and sifts it up. Pushing an element that is already
// contained re-positions it instead of adding a duplicate.
// Complexity: O(log n).
func (h *Heap[E]) Push(e E) {
	if i, ok := h.slot[e]; ok {
		h.fix(i)
		return
	}
	h.items = append(h.items, e)
	h.slot[e] = len(h.items) - 1
	h.up(len(h.items) - 1)
}

// Peek returns the minimum without removing it.
func (h *Heap[E]) Peek() (E, bool) {
	if len(h.items) == 0 {
		var zero E
		return zero, false
	}
	return h.items[0], true
}

// Pop removes and returns the minimum. ok is false on an empty heap.
// Complexity: O(log n).
func (h *Heap[E]) Pop() (e E, ok bool) {
	if len(h.items) == 0 {
		return e, false
	}
	e = h.items[0]
	h.removeAt(0)
	return e, true
}

// Remove deletes e from the heap. It reports false if e was not contained.
// Complexity: O(log n).
func (h *Heap[E]) Remove(e E) bool {
	i, ok := h.slot[e]
	if !ok {
		return false
	}
	h.removeAt(i)
	return true
}

// Rescore restores heap order after e's score decreased, by sifting e up.
// It never sifts down: use Fix when a score may have increased.
// It reports false if e is not contained.
// Complexity: O(log n).
func (h *Heap[E]) Rescore(e E) bool {
	i, ok := h.slot[e]
	if !ok {
		return false
	}
	h.up(i)
	return true
}

// Fix restores heap order after e's score changed in either direction.
// It reports false if e is not contained.
func (h *Heap[E]) Fix(e E) bool {
	i, ok := h.slot[e]
	if !ok {
		return false
	}
	h.fix(i)
	return true
}

// Reset empties the heap, keeping its capacity.
func (h *Heap[E]) Reset() {
	var zero E
	for i := range h.items {
		h.items[i] = zero
	}
	h.items = h.items[:0]
	clear(h.slot)
}

// removeAt fills slot i with the last element and re-sifts it.
// The replacement moves up when it scores lower than the removed element,
// down otherwise.
func (h *Heap[E]) removeAt(i int) {
	last := len(h.items) - 1
	removed := h.items[i]
	end := h.items[last]
	var zero E
	h.items[last] = zero
	h.items = h.items[:last]
	delete(h.slot, removed)
	if i == last {
		return
	}
	h.items[i] = end
	h.slot[end] = i
	if h.score(end) < h.score(removed) {
		h.up(i)
	} else {
		h.down(i)
	}
}

func (h *Heap[E]) fix(i int) {
	if !h.up(i) {
		h.down(i)
	}
}

// up sifts the element at n toward the root and reports whether it moved.
func (h *Heap[E]) up(n int) bool {
	start := n
	e := h.items[n]
	es := h.score(e)
	for n > 0 {
		p := (n - 1) / 2
		if !(es < h.score(h.items[p])) {
			break
		}
		h.swap(n, p)
		n = p
	}
	return n != start
}

// down sifts the element at n toward the leaves. At each level it swaps
// with the smaller child, and only when that child is strictly smaller.
func (h *Heap[E]) down(n int) {
	size := len(h.items)
	es := h.score(h.items[n])
	for {
		c1 := 2*n + 1
		if c1 >= size {
			return
		}
		swap, best := -1, es
		if s := h.score(h.items[c1]); s < best {
			swap, best = c1, s
		}
		if c2 := c1 + 1; c2 < size {
			if s := h.score(h.items[c2]); s < best {
				swap = c2
			}
		}
		if swap < 0 {
			return
		}
		h.swap(n, swap)
		n = swap
	}
}

func (h *Heap[E]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.slot[h.items[i]] = i
	h.slot[h.items[j]] = j
}
