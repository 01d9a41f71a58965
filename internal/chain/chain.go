// Package chain holds the singly-linked cell shared by the stack and queue
// containers.
package chain

// Node owns the next cell of the chain. Chains are linear and acyclic.
type Node[V any] struct {
	Value V
	Next  *Node[V]
}

// Copy duplicates the chain starting at head cell by cell and returns the
// new head together with its last cell.
func Copy[V any](head *Node[V]) (first, last *Node[V]) {
	for n := head; n != nil; n = n.Next {
		cell := &Node[V]{Value: n.Value}
		if last == nil {
			first = cell
		} else {
			last.Next = cell
		}
		last = cell
	}
	return
}

// Release detaches every cell of the chain one at a time.
func Release[V any](head *Node[V]) {
	var zero V
	for head != nil {
		next := head.Next
		head.Next = nil
		head.Value = zero
		head = next
	}
}
