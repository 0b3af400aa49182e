// Package chunklist provides a growable append-only sequence stored as a
// chain of fixed-capacity chunks. Pushing is O(1) amortized and never moves
// elements already stored; appending another list is an O(1) splice of its
// chain instead of a per-element copy.
package chunklist

import (
	"iter"
)

// chunk is one fixed-capacity node of the chain. The items slice is created
// with the full chunk capacity reserved, so its length is the live element
// count and appending into it never reallocates.
type chunk[T any] struct {
	items []T
	next  *chunk[T]
}

func newChunk[T any](capacity int, first T) *chunk[T] {
	c := &chunk[T]{
		items: make([]T, 0, capacity),
	}
	c.items = append(c.items, first)
	return c
}

func (c *chunk[T]) full() bool {
	return len(c.items) == cap(c.items)
}

// List is an append-only sequence of chunks. head owns the whole chain;
// tail is a navigation cache pointing at the last chunk so that Push and
// Append stay O(1), it never implies ownership.
//
// Push, Extend, Append and Teardown require exclusive access to the list.
// All, Len, NumChunks and Capacity only read and may run concurrently with
// each other, subject to what the element type itself allows.
type List[T any] struct {
	capacity int
	head     *chunk[T]
	tail     *chunk[T]
}

// New creates an empty list whose chunks hold capacity elements each.
// The capacity is fixed for the lifetime of the list.
func New[T any](capacity int) *List[T] {
	if capacity < 1 {
		panic("chunklist: capacity must be at least 1")
	}
	return &List[T]{capacity: capacity}
}

// FromSeq creates a list and fills it with the elements of seq.
func FromSeq[T any](capacity int, seq iter.Seq[T]) *List[T] {
	l := New[T](capacity)
	l.Extend(seq)
	return l
}

// Push appends v to the list. It writes into the tail chunk when there is
// room and links a fresh chunk otherwise; elements already stored never move.
func (l *List[T]) Push(v T) {
	switch {
	case l.tail == nil:
		c := newChunk(l.capacity, v)
		l.head = c
		l.tail = c
	case l.tail.full():
		// The new chunk is fully built before any existing link is touched,
		// so the chain is never observable in a half-linked state.
		c := newChunk(l.capacity, v)
		l.tail.next = c
		l.tail = c
	default:
		l.tail.items = append(l.tail.items, v)
	}
}

// Extend pushes every element produced by seq, in production order.
func (l *List[T]) Extend(seq iter.Seq[T]) {
	for v := range seq {
		l.Push(v)
	}
}

// Append splices other onto the end of l in O(1) without visiting or
// copying any element. It consumes other: afterwards other is empty and its
// former chain is reachable only through l. Both lists must have been
// created with the same chunk capacity.
func (l *List[T]) Append(other *List[T]) {
	if other == nil || other.head == nil {
		return
	}
	if other.capacity != l.capacity {
		panic("chunklist: appending lists of different chunk capacities")
	}

	if l.head == nil {
		l.head = other.head
	} else {
		l.tail.next = other.head
	}
	l.tail = other.tail

	other.head = nil
	other.tail = nil
}

// Len returns the number of live elements. It walks the chunk chain.
func (l *List[T]) Len() int {
	n := 0
	for c := l.head; c != nil; c = c.next {
		n += len(c.items)
	}
	return n
}

// NumChunks returns the number of chunks in the chain.
func (l *List[T]) NumChunks() int {
	n := 0
	for c := l.head; c != nil; c = c.next {
		n++
	}
	return n
}

// Capacity returns the per-chunk capacity the list was created with.
func (l *List[T]) Capacity() int {
	return l.capacity
}

// Teardown destroys the list in a single pass over the chain: destroy is
// called once for every live element in order, then the chunk's storage is
// released. A chunk's storage is released exactly once even if destroy
// panics while visiting it. A nil destroy releases storage only.
// Afterwards the list is empty and may be reused.
func (l *List[T]) Teardown(destroy func(T)) {
	// The tail cache must be gone before any chunk is released.
	l.tail = nil
	c := l.head
	l.head = nil
	for c != nil {
		next := c.next
		c.next = nil
		releaseChunk(c, destroy)
		c = next
	}
}

func releaseChunk[T any](c *chunk[T], destroy func(T)) {
	defer func() {
		clear(c.items)
		c.items = nil
	}()

	if destroy == nil {
		return
	}
	for _, v := range c.items {
		destroy(v)
	}
}
