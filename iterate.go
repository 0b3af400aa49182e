package chunklist

import (
	"iter"
)

// All returns a lazy forward traversal over the elements in insertion
// order. Every call starts an independent traversal from the head of the
// chain; traversal allocates nothing and never mutates the list, so any
// number of traversals may run concurrently as long as no mutation does.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := l.head; c != nil; c = c.next {
			for _, v := range c.items {
				if !yield(v) {
					return
				}
			}
		}
	}
}
