package stack

import (
	"github.com/reeveci/fwdlist/fwd"
	"github.com/reeveci/fwdlist/internal/chain"
)

type cursor[T any] struct {
	node *chain.Node[T]
}

func (c *cursor[T]) Value() *T {
	return &c.node.Value
}

func (c *cursor[T]) Advance() bool {
	c.node = c.node.Next
	return c.node != nil
}

func (c *cursor[T]) Equal(other fwd.Cursor[T]) bool {
	o, ok := other.(*cursor[T])
	return ok && o.node == c.node
}

func (c *cursor[T]) Clone() fwd.Cursor[T] {
	return &cursor[T]{node: c.node}
}

func (c *cursor[T]) ReadOnly() fwd.ConstCursor[T] {
	return &constCursor[T]{node: c.node}
}

type constCursor[T any] struct {
	node *chain.Node[T]
}

func (c *constCursor[T]) Value() T {
	return c.node.Value
}

func (c *constCursor[T]) Advance() bool {
	c.node = c.node.Next
	return c.node != nil
}

func (c *constCursor[T]) Equal(other fwd.ConstCursor[T]) bool {
	o, ok := other.(*constCursor[T])
	return ok && o.node == c.node
}

func (c *constCursor[T]) Clone() fwd.ConstCursor[T] {
	return &constCursor[T]{node: c.node}
}
