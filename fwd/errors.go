package fwd

import (
	"errors"
	"fmt"
)

var (
	// ErrUnderflow is returned when the front element of an empty container
	// is removed or inspected. The container is left unchanged.
	ErrUnderflow = errors.New("container is empty")

	// ErrInvalidIterator is the panic value cause for dereferencing or
	// advancing an end iterator. Such use is a programming error.
	ErrInvalidIterator = errors.New("invalid iterator use")
)

func Underflow(op string) error {
	return fmt.Errorf("cannot %s - %w", op, ErrUnderflow)
}

func invalidIterator(op string) error {
	return fmt.Errorf("cannot %s end iterator - %w", op, ErrInvalidIterator)
}
