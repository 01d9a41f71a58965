package chain_test

import (
	"testing"

	"github.com/reeveci/fwdlist/internal/chain"
	"github.com/stretchr/testify/require"
)

func build(values ...int) *chain.Node[int] {
	var head *chain.Node[int]
	for i := len(values) - 1; i >= 0; i-- {
		head = &chain.Node[int]{Value: values[i], Next: head}
	}
	return head
}

func collect(head *chain.Node[int]) (result []int) {
	for n := head; n != nil; n = n.Next {
		result = append(result, n.Value)
	}
	return
}

func TestCopy_ChainGiven_IndependentCellsInSameOrder(t *testing.T) {
	t.Parallel()

	head := build(1, 2, 3)
	first, last := chain.Copy(head)

	require.Equal(t, []int{1, 2, 3}, collect(first))
	require.Equal(t, 3, last.Value)
	require.Nil(t, last.Next)

	for a, b := head, first; a != nil; a, b = a.Next, b.Next {
		require.NotSame(t, a, b)
	}

	first.Value = 42
	require.Equal(t, 1, head.Value)
}

func TestCopy_NilGiven_NilReturned(t *testing.T) {
	t.Parallel()

	first, last := chain.Copy[int](nil)
	require.Nil(t, first)
	require.Nil(t, last)
}

func TestRelease_LongChainGiven_EveryCellDetached(t *testing.T) {
	t.Parallel()

	var head *chain.Node[int]
	cells := make([]*chain.Node[int], 0, 1_000_000)
	for i := 0; i < 1_000_000; i++ {
		head = &chain.Node[int]{Value: i, Next: head}
		cells = append(cells, head)
	}

	chain.Release(head)

	for _, cell := range cells[:10] {
		require.Nil(t, cell.Next)
		require.Zero(t, cell.Value)
	}
}
