package fwd

// Cursor is a mutable forward position inside a container.
type Cursor[T any] interface {
	// Value returns the element at the current position.
	Value() *T
	// Advance moves to the next position and reports whether it is still
	// inside the container.
	Advance() bool
	// Equal reports whether both cursors reference the same element.
	// Comparing cursors of different containers is not meaningful.
	Equal(other Cursor[T]) bool
	Clone() Cursor[T]
	// ReadOnly returns a read-only cursor at the same position.
	ReadOnly() ConstCursor[T]
}

// ConstCursor is a read-only forward position inside a container.
// There is no way back to a Cursor.
type ConstCursor[T any] interface {
	Value() T
	Advance() bool
	Equal(other ConstCursor[T]) bool
	Clone() ConstCursor[T]
}

// Iterator is a forward iterator handle owning a Cursor. The zero value is
// the end sentinel, which every exhausted iterator compares equal to.
//
// Iterators are values: an assigned copy keeps its own position, because
// advancing never mutates a cursor another handle may hold.
type Iterator[T any] struct {
	cursor Cursor[T]
}

// NewIterator wraps cursor, which must point at an element.
func NewIterator[T any](cursor Cursor[T]) Iterator[T] {
	return Iterator[T]{cursor: cursor}
}

func (it Iterator[T]) Value() *T {
	if it.cursor == nil {
		panic(invalidIterator("dereference"))
	}
	return it.cursor.Value()
}

// Next advances the iterator in place.
func (it *Iterator[T]) Next() {
	if it.cursor == nil {
		panic(invalidIterator("advance"))
	}
	next := it.cursor.Clone()
	if next.Advance() {
		it.cursor = next
	} else {
		it.cursor = nil
	}
}

// PostNext advances the iterator and returns its previous position.
func (it *Iterator[T]) PostNext() Iterator[T] {
	previous := it.Clone()
	it.Next()
	return previous
}

func (it Iterator[T]) Done() bool {
	return it.cursor == nil
}

func (it Iterator[T]) Equal(other Iterator[T]) bool {
	if it.cursor == nil || other.cursor == nil {
		return it.cursor == nil && other.cursor == nil
	}
	return it.cursor.Equal(other.cursor)
}

func (it Iterator[T]) Clone() Iterator[T] {
	if it.cursor == nil {
		return Iterator[T]{}
	}
	return Iterator[T]{cursor: it.cursor.Clone()}
}

// Take moves the position out of it, leaving it at the end.
func (it *Iterator[T]) Take() Iterator[T] {
	moved := *it
	it.cursor = nil
	return moved
}

// Const converts the iterator into an independent read-only iterator.
func (it Iterator[T]) Const() ConstIterator[T] {
	if it.cursor == nil {
		return ConstIterator[T]{}
	}
	return ConstIterator[T]{cursor: it.cursor.ReadOnly()}
}

// ConstIterator is the read-only counterpart of Iterator.
type ConstIterator[T any] struct {
	cursor ConstCursor[T]
}

func NewConstIterator[T any](cursor ConstCursor[T]) ConstIterator[T] {
	return ConstIterator[T]{cursor: cursor}
}

func (it ConstIterator[T]) Value() T {
	if it.cursor == nil {
		panic(invalidIterator("dereference"))
	}
	return it.cursor.Value()
}

func (it *ConstIterator[T]) Next() {
	if it.cursor == nil {
		panic(invalidIterator("advance"))
	}
	next := it.cursor.Clone()
	if next.Advance() {
		it.cursor = next
	} else {
		it.cursor = nil
	}
}

func (it *ConstIterator[T]) PostNext() ConstIterator[T] {
	previous := it.Clone()
	it.Next()
	return previous
}

func (it ConstIterator[T]) Done() bool {
	return it.cursor == nil
}

func (it ConstIterator[T]) Equal(other ConstIterator[T]) bool {
	if it.cursor == nil || other.cursor == nil {
		return it.cursor == nil && other.cursor == nil
	}
	return it.cursor.Equal(other.cursor)
}

func (it ConstIterator[T]) Clone() ConstIterator[T] {
	if it.cursor == nil {
		return ConstIterator[T]{}
	}
	return ConstIterator[T]{cursor: it.cursor.Clone()}
}

func (it *ConstIterator[T]) Take() ConstIterator[T] {
	moved := *it
	it.cursor = nil
	return moved
}
