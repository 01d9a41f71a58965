package textio_test

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/reeveci/fwdlist/fwd"
	"github.com/reeveci/fwdlist/queue"
	"github.com/reeveci/fwdlist/stack"
	"github.com/reeveci/fwdlist/textio"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestWrite_Stack_TopFirst(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	require.NoError(t, textio.Write[int](&b, stack.NewStack(1, 2, 3)))
	require.Equal(t, "3 2 1 ", b.String())

	require.Equal(t, "three two one ", textio.Format[string](stack.NewStack("one", "two", "three")))
}

func TestWrite_Queue_InsertionOrder(t *testing.T) {
	t.Parallel()

	require.Equal(t, "1 2 3 ", textio.Format[int](queue.NewQueue(1, 2, 3)))
	require.Equal(t, "one two three ", textio.Format[string](queue.NewQueue("one", "two", "three")))
}

func TestWrite_Empty_NothingWritten(t *testing.T) {
	t.Parallel()

	require.Equal(t, "", textio.Format[int](stack.NewStack[int]()))
	require.Equal(t, "", textio.Format[int](queue.NewQueue[int]()))
}

func TestWrite_WriterFails_ErrorReturned(t *testing.T) {
	t.Parallel()

	require.Error(t, textio.Write[int](failingWriter{}, queue.NewQueue(1)))
}

func TestRead_Queue_PushesInOrder(t *testing.T) {
	t.Parallel()

	q := queue.NewQueue[int]()
	n, err := textio.Read[int](strings.NewReader("1 2  3\n4\t5"), q, textio.Int)
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, []int{1, 2, 3, 4, 5}, fwd.Values[int](q))
}

func TestRead_EmptyInput_NothingPushed(t *testing.T) {
	t.Parallel()

	s := stack.NewStack[string]()
	n, err := textio.Read[string](strings.NewReader("   "), s, textio.String)
	require.NoError(t, err)
	require.Zero(t, n)
	require.True(t, s.IsEmpty())
}

func TestRead_ParseFailure_StopsAtFailingElement(t *testing.T) {
	t.Parallel()

	q := queue.NewQueue[int]()
	n, err := textio.Read[int](strings.NewReader("1 2 x 4"), q, textio.Int)
	require.Equal(t, 2, n)
	require.Equal(t, []int{1, 2}, fwd.Values[int](q))

	var parseErr *textio.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, 2, parseErr.Index)
	require.Equal(t, "x", parseErr.Token)
	require.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestRead_ShellMetacharacters_TokensKeptVerbatim(t *testing.T) {
	t.Parallel()

	q := queue.NewQueue[string]()
	n, err := textio.Read[string](strings.NewReader(`it's "b c" C:\dir #tag`), q, textio.String)
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, []string{"it's", `"b`, `c"`, `C:\dir`, "#tag"}, fwd.Values[string](q))
}

func TestRoundTrip_StringsWithSpecialCharacters_SameSequence(t *testing.T) {
	t.Parallel()

	for _, values := range [][]string{
		{"it's", "fine"},
		{`C:\dir`, "x"},
		{`say"hi"`, "y"},
		{"#tag", "c"},
		{`'`, `"`, `\`, "#", "$HOME", "a;b|c&"},
	} {
		q := queue.NewQueue(values...)
		restored := queue.NewQueue[string]()

		n, err := textio.Read[string](strings.NewReader(textio.Format[string](q)), restored, textio.String)
		require.NoError(t, err)
		require.Equal(t, len(values), n)
		require.Equal(t, values, fwd.Values[string](restored))
	}
}

func TestRead_ReaderFails_ErrorReturned(t *testing.T) {
	t.Parallel()

	q := queue.NewQueue[int]()
	n, err := textio.Read[int](failingReader{}, q, textio.Int)
	require.Error(t, err)
	require.Zero(t, n)
	require.True(t, q.IsEmpty())
}

func TestRead_OtherParsers(t *testing.T) {
	t.Parallel()

	floats := queue.NewQueue[float64]()
	_, err := textio.Read[float64](strings.NewReader("1.5 -2"), floats, textio.Float)
	require.NoError(t, err)
	require.Equal(t, []float64{1.5, -2}, fwd.Values[float64](floats))

	bools := queue.NewQueue[bool]()
	_, err = textio.Read[bool](strings.NewReader("true false 1"), bools, textio.Bool)
	require.NoError(t, err)
	require.Equal(t, []bool{true, false, true}, fwd.Values[bool](bools))
}

func TestReader_LoggerGiven_TraceLogged(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	reader := textio.NewReader(strings.NewReader("7 x"), textio.Int)
	reader.Logger = hclog.New(&hclog.LoggerOptions{Level: hclog.Trace, Output: &out})

	q := queue.NewQueue[int]()
	_, err := reader.ReadInto(q)
	require.Error(t, err)
	require.Contains(t, out.String(), "read element")
	require.Contains(t, out.String(), "stopped reading")
}

func TestReader_NilLogger_NoPanic(t *testing.T) {
	t.Parallel()

	reader := textio.NewReader(strings.NewReader("7"), textio.Int)
	reader.Logger = nil

	q := queue.NewQueue[int]()
	n, err := reader.ReadInto(q)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestRoundTrip_SameSequence(t *testing.T) {
	t.Parallel()

	q := queue.NewQueue(3, 1, 4, 1, 5)
	copied := queue.NewQueue[int]()
	_, err := textio.Read[int](strings.NewReader(textio.Format[int](q)), copied, textio.Int)
	require.NoError(t, err)
	require.Equal(t, fwd.Values[int](q), fwd.Values[int](copied))

	s := stack.NewStack("a", "b", "c")
	restored := stack.NewStack[string]()
	_, err = textio.Read[string](strings.NewReader(textio.Format[string](s)), restored, textio.String)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, fwd.Values[string](restored))
}

func TestDefaultLogger(t *testing.T) {
	t.Setenv(textio.LogLevelEnv, "")
	require.False(t, textio.DefaultLogger().IsError())

	t.Setenv(textio.LogLevelEnv, "debug")
	logger := textio.DefaultLogger()
	require.True(t, logger.IsDebug())
	require.False(t, logger.IsTrace())
}

func ExampleFormat() {
	q := queue.NewQueue[int]()
	q.Push(1)
	q.Push(2)
	q.Push(3)
	fmt.Printf("%q\n", textio.Format[int](q))

	s := stack.NewStack[int]()
	s.Push(1)
	s.Push(2)
	s.Push(3)
	fmt.Printf("%q\n", textio.Format[int](s))
	// Output:
	// "1 2 3 "
	// "3 2 1 "
}
