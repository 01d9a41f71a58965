// Package fwd defines the forward-iterable container abstraction shared by
// the stack and queue packages.
package fwd

import "iter"

// Container is a sequence that grows at one end and shrinks at its front.
// Implementations are not safe for concurrent use.
type Container[T any] interface {
	Push(value T)
	// Pop removes and returns the front element, or fails with ErrUnderflow.
	Pop() (T, error)
	// Front returns a pointer to the front element, allowing it to be
	// modified in place.
	Front() (*T, error)
	// Peek returns a copy of the front element.
	Peek() (T, error)
	IsEmpty() bool
	Size() uint
	Clear()

	Begin() Iterator[T]
	End() Iterator[T]
	CBegin() ConstIterator[T]
	CEnd() ConstIterator[T]

	// All yields the elements in iteration order.
	All() iter.Seq[T]
}

// Seq turns a read-only iterator into a range function. Every call of the
// returned function walks an independent clone of begin.
func Seq[T any](begin ConstIterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := begin.Clone(); !it.Done(); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Values collects the elements of c in iteration order.
func Values[T any](c Container[T]) []T {
	result := make([]T, 0, c.Size())
	for it, end := c.CBegin(), c.CEnd(); !it.Equal(end); it.Next() {
		result = append(result, it.Value())
	}
	return result
}
