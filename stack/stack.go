// Package stack implements a LIFO container over a singly-linked chain whose
// head is the top of the stack.
package stack

import (
	"iter"

	"github.com/reeveci/fwdlist/fwd"
	"github.com/reeveci/fwdlist/internal/chain"
)

var _ fwd.Container[int] = (*Stack[int])(nil)

// Stack is a LIFO container. The zero value is an empty stack.
type Stack[T any] struct {
	head  *chain.Node[T]
	count uint
}

func NewStack[T any](values ...T) *Stack[T] {
	s := &Stack[T]{}
	for _, value := range values {
		s.Push(value)
	}
	return s
}

func (s *Stack[T]) Push(value T) {
	s.head = &chain.Node[T]{Value: value, Next: s.head}
	s.count += 1
}

func (s *Stack[T]) Pop() (result T, err error) {
	if s == nil || s.head == nil {
		err = fwd.Underflow("pop")
		return
	}

	top := s.head
	result = top.Value
	s.head = top.Next
	top.Next = nil
	s.count -= 1
	return
}

func (s *Stack[T]) Front() (*T, error) {
	if s == nil || s.head == nil {
		return nil, fwd.Underflow("get front of")
	}
	return &s.head.Value, nil
}

func (s *Stack[T]) Peek() (result T, err error) {
	if s == nil || s.head == nil {
		err = fwd.Underflow("peek")
		return
	}
	result = s.head.Value
	return
}

func (s *Stack[T]) IsEmpty() bool {
	return s == nil || s.head == nil
}

func (s *Stack[T]) Size() uint {
	if s == nil {
		return 0
	}
	return s.count
}

func (s *Stack[T]) Clear() {
	chain.Release(s.head)
	s.head = nil
	s.count = 0
}

// Clone returns a deep copy of the stack.
func (s *Stack[T]) Clone() *Stack[T] {
	head, _ := chain.Copy(s.head)
	return &Stack[T]{head: head, count: s.count}
}

// CopyFrom replaces the contents of s with a deep copy of other.
func (s *Stack[T]) CopyFrom(other *Stack[T]) {
	if s == other {
		return
	}
	head, _ := chain.Copy(other.head)
	chain.Release(s.head)
	s.head, s.count = head, other.count
}

// Move transfers the elements into a new stack and leaves s empty.
func (s *Stack[T]) Move() *Stack[T] {
	moved := &Stack[T]{head: s.head, count: s.count}
	s.head, s.count = nil, 0
	return moved
}

// MoveFrom replaces the contents of s with the elements of other, leaving
// other empty.
func (s *Stack[T]) MoveFrom(other *Stack[T]) {
	if s == other {
		return
	}
	chain.Release(s.head)
	s.head, s.count = other.head, other.count
	other.head, other.count = nil, 0
}

// Begin returns an iterator at the top of the stack.
func (s *Stack[T]) Begin() fwd.Iterator[T] {
	if s.IsEmpty() {
		return fwd.Iterator[T]{}
	}
	return fwd.NewIterator[T](&cursor[T]{node: s.head})
}

func (s *Stack[T]) End() fwd.Iterator[T] {
	return fwd.Iterator[T]{}
}

func (s *Stack[T]) CBegin() fwd.ConstIterator[T] {
	if s.IsEmpty() {
		return fwd.ConstIterator[T]{}
	}
	return fwd.NewConstIterator[T](&constCursor[T]{node: s.head})
}

func (s *Stack[T]) CEnd() fwd.ConstIterator[T] {
	return fwd.ConstIterator[T]{}
}

// All yields the elements from top to bottom.
func (s *Stack[T]) All() iter.Seq[T] {
	return fwd.Seq(s.CBegin())
}
