// Package textio writes containers as space-separated text and populates
// containers from such text.
package textio

import (
	"fmt"
	"io"
	"strings"

	"github.com/reeveci/fwdlist/fwd"
)

// Write writes the elements of c in iteration order, each followed by a
// single space. Nothing is written for an empty container.
func Write[T any](w io.Writer, c fwd.Container[T]) error {
	for it := c.CBegin(); !it.Done(); it.Next() {
		if _, err := fmt.Fprintf(w, "%v ", it.Value()); err != nil {
			return err
		}
	}
	return nil
}

// Format returns the text Write would produce for c.
func Format[T any](c fwd.Container[T]) string {
	var b strings.Builder
	// strings.Builder never fails
	_ = Write[T](&b, c)
	return b.String()
}
