// Package streams replays the text form of one container into any number of
// fresh containers.
package streams

import (
	"fmt"

	"github.com/djherbis/stream"
	"github.com/hashicorp/go-hclog"
	"github.com/reeveci/fwdlist/fwd"
	"github.com/reeveci/fwdlist/textio"
)

func NewBroadcast() *Broadcast {
	return &Broadcast{Stream: stream.NewMemStream(), Logger: textio.DefaultLogger()}
}

// Broadcast holds the text of a single published container. Every replay
// reads it from the beginning through its own reader.
type Broadcast struct {
	*stream.Stream
	Logger hclog.Logger

	published bool
}

func (b *Broadcast) Available() bool {
	return b != nil && b.Stream != nil
}

// Publish writes c to the broadcast and closes it for writing. A broadcast
// can be published once.
func Publish[T any](b *Broadcast, c fwd.Container[T]) error {
	if !b.Available() {
		return fmt.Errorf("no broadcast available")
	}
	if b.published {
		return fmt.Errorf("broadcast already published")
	}

	b.published = true
	if err := textio.Write(b.Stream, c); err != nil {
		b.Stream.Close()
		return fmt.Errorf("error publishing container - %w", err)
	}
	b.logger().Debug("published container", "size", c.Size())
	return b.Stream.Close()
}

// Replay pushes the published elements into c and returns how many were
// pushed. It blocks until the broadcast has been published.
func Replay[T any](b *Broadcast, c fwd.Container[T], parse textio.Parser[T]) (int, error) {
	if !b.Available() {
		return 0, fmt.Errorf("no broadcast available")
	}

	r, err := b.NextReader()
	if err != nil {
		return 0, err
	}
	defer r.Close()

	reader := textio.NewReader(r, parse)
	reader.Logger = b.logger().Named("replay")
	return reader.ReadInto(c)
}

// Close releases the broadcast without publishing. It is a no-op after
// Publish.
func (b *Broadcast) Close() error {
	if !b.Available() || b.published {
		return nil
	}

	b.published = true
	return b.Stream.Close()
}

func (b *Broadcast) logger() hclog.Logger {
	if b.Logger == nil {
		return hclog.NewNullLogger()
	}
	return b.Logger
}
