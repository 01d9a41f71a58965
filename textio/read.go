package textio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/hashicorp/go-hclog"
	"github.com/reeveci/fwdlist/fwd"
)

// Parser turns one whitespace-separated token into an element.
type Parser[T any] func(token string) (T, error)

func String(token string) (string, error) {
	return token, nil
}

func Int(token string) (int, error) {
	return strconv.Atoi(token)
}

func Float(token string) (float64, error) {
	return strconv.ParseFloat(token, 64)
}

func Bool(token string) (bool, error) {
	return strconv.ParseBool(token)
}

type ParseError struct {
	// Index is the position of the token in the input, starting at 0
	Index int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf(`error parsing element %d "%s" - %s`, e.Index, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Reader reads successive elements from text. Tokens are separated by
// whitespace and passed to the parser unchanged.
type Reader[T any] struct {
	Logger hclog.Logger

	scanner *bufio.Scanner
	parse   Parser[T]
	index   int
}

func NewReader[T any](r io.Reader, parse Parser[T]) *Reader[T] {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	return &Reader[T]{
		Logger:  DefaultLogger(),
		scanner: scanner,
		parse:   parse,
	}
}

// Next returns the next element, or io.EOF once the input is exhausted.
func (r *Reader[T]) Next() (result T, err error) {
	if !r.scanner.Scan() {
		err = io.EOF
		if scanErr := r.scanner.Err(); scanErr != nil {
			err = fmt.Errorf("error reading element %d - %w", r.index, scanErr)
		}
		return
	}
	token := r.scanner.Text()

	index := r.index
	r.index += 1

	result, err = r.parse(token)
	if err != nil {
		err = &ParseError{Index: index, Token: token, Err: err}
		return
	}

	r.logger().Trace("read element", "index", index, "token", token)
	return
}

// ReadInto pushes elements into c until the input is exhausted or an
// element fails to parse. Elements read before a failure stay in c.
func (r *Reader[T]) ReadInto(c fwd.Container[T]) (n int, err error) {
	for {
		value, err := r.Next()
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			r.logger().Debug("stopped reading", "pushed", n, "error", err)
			return n, err
		}

		c.Push(value)
		n += 1
	}
}

func (r *Reader[T]) logger() hclog.Logger {
	if r.Logger == nil {
		return hclog.NewNullLogger()
	}
	return r.Logger
}

// Read pushes every element read from r into c, see Reader.ReadInto.
//
// Elements are pushed in text order. Reading the text of a queue reproduces
// its sequence; reading the text of a stack yields the stack reversed, since
// its top was written first and is therefore pushed first.
func Read[T any](r io.Reader, c fwd.Container[T], parse Parser[T]) (int, error) {
	return NewReader(r, parse).ReadInto(c)
}
