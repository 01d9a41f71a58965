// Package queue implements a FIFO container over a singly-linked chain with
// O(1) append at the tail.
package queue

import (
	"iter"

	"github.com/reeveci/fwdlist/fwd"
	"github.com/reeveci/fwdlist/internal/chain"
)

var _ fwd.Container[int] = (*Queue[int])(nil)

// Queue is a FIFO container. The zero value is an empty queue.
type Queue[T any] struct {
	head *chain.Node[T]
	// tail is the last cell reachable from head, nil when empty
	tail  *chain.Node[T]
	count uint
}

func NewQueue[T any](values ...T) *Queue[T] {
	q := &Queue[T]{}
	for _, value := range values {
		q.Push(value)
	}
	return q
}

func (q *Queue[T]) Push(value T) {
	tail := &chain.Node[T]{Value: value}
	if q.tail != nil {
		q.tail.Next = tail
	}
	q.tail = tail
	if q.head == nil {
		q.head = tail
	}
	q.count += 1
}

func (q *Queue[T]) Pop() (result T, err error) {
	if q == nil || q.head == nil {
		err = fwd.Underflow("pop")
		return
	}

	front := q.head
	result = front.Value
	q.head = front.Next
	front.Next = nil
	if q.head == nil {
		q.tail = nil
	}
	q.count -= 1
	return
}

func (q *Queue[T]) Front() (*T, error) {
	if q == nil || q.head == nil {
		return nil, fwd.Underflow("get front of")
	}
	return &q.head.Value, nil
}

func (q *Queue[T]) Peek() (result T, err error) {
	if q == nil || q.head == nil {
		err = fwd.Underflow("peek")
		return
	}
	result = q.head.Value
	return
}

func (q *Queue[T]) IsEmpty() bool {
	return q == nil || q.head == nil
}

func (q *Queue[T]) Size() uint {
	if q == nil {
		return 0
	}
	return q.count
}

func (q *Queue[T]) Clear() {
	chain.Release(q.head)
	q.head, q.tail = nil, nil
	q.count = 0
}

// Clone returns a deep copy of the queue.
func (q *Queue[T]) Clone() *Queue[T] {
	head, tail := chain.Copy(q.head)
	return &Queue[T]{head: head, tail: tail, count: q.count}
}

// CopyFrom replaces the contents of q with a deep copy of other.
func (q *Queue[T]) CopyFrom(other *Queue[T]) {
	if q == other {
		return
	}
	head, tail := chain.Copy(other.head)
	chain.Release(q.head)
	q.head, q.tail, q.count = head, tail, other.count
}

// Move transfers the elements into a new queue and leaves q empty.
func (q *Queue[T]) Move() *Queue[T] {
	moved := &Queue[T]{head: q.head, tail: q.tail, count: q.count}
	q.head, q.tail, q.count = nil, nil, 0
	return moved
}

// MoveFrom replaces the contents of q with the elements of other, leaving
// other empty.
func (q *Queue[T]) MoveFrom(other *Queue[T]) {
	if q == other {
		return
	}
	chain.Release(q.head)
	q.head, q.tail, q.count = other.head, other.tail, other.count
	other.head, other.tail, other.count = nil, nil, 0
}

// Begin returns an iterator at the front of the queue.
func (q *Queue[T]) Begin() fwd.Iterator[T] {
	if q.IsEmpty() {
		return fwd.Iterator[T]{}
	}
	return fwd.NewIterator[T](&cursor[T]{node: q.head})
}

func (q *Queue[T]) End() fwd.Iterator[T] {
	return fwd.Iterator[T]{}
}

func (q *Queue[T]) CBegin() fwd.ConstIterator[T] {
	if q.IsEmpty() {
		return fwd.ConstIterator[T]{}
	}
	return fwd.NewConstIterator[T](&constCursor[T]{node: q.head})
}

func (q *Queue[T]) CEnd() fwd.ConstIterator[T] {
	return fwd.ConstIterator[T]{}
}

// All yields the elements in insertion order.
func (q *Queue[T]) All() iter.Seq[T] {
	return fwd.Seq(q.CBegin())
}
