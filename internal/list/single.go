// Package list implements the singly-linked node chain that backs
// the queue. It tracks head, tail, and length together so that every
// mutation keeps the three consistent.
package list

import "iter"

// Single is a singly-linked list that also contains a reference to
// the last node for quick inserts at the head and tail, and a cached
// count of its nodes.
type Single[T any] struct {
	head, tail *Node[T]
	size       int
}

// Len returns the number of nodes in the list.
func (ls *Single[T]) Len() int {
	return ls.size
}

// Head returns the head node without removing it, or nil if the list
// is empty.
func (ls *Single[T]) Head() *Node[T] {
	return ls.head
}

// Prepend adds v as a new node at the head of the list.
func (ls *Single[T]) Prepend(v T) {
	n := &Node[T]{Val: v, next: ls.head}
	ls.head = n
	if ls.tail == nil {
		ls.tail = n
	}
	ls.size++
}

// Append adds the values as new nodes at the tail of the list, in the
// given order. The tail reference is advanced as each node is linked;
// the chain is never re-walked from the head.
func (ls *Single[T]) Append(vs ...T) {
	for _, v := range vs {
		n := &Node[T]{Val: v}
		if ls.tail == nil {
			ls.head = n
		} else {
			ls.tail.next = n
		}
		ls.tail = n
		ls.size++
	}
}

// Pop unlinks and returns the current head node. It returns nil if
// the list was already empty.
func (ls *Single[T]) Pop() *Node[T] {
	n := ls.head
	if n == nil {
		return nil
	}

	ls.size--
	ls.head = n.next
	if ls.head == nil {
		ls.tail = nil
	}

	n.next = nil
	return n
}

// RemoveAll unlinks every node whose value matches v according to
// match and reports whether any node was removed.
func (ls *Single[T]) RemoveAll(v T, match func(a, b T) bool) bool {
	removed := false
	for ls.head != nil && match(v, ls.head.Val) {
		ls.Pop()
		removed = true
	}
	for keep := ls.head; keep != nil; keep = keep.next {
		for keep.next != nil && match(v, keep.next.Val) {
			ls.removeNext(keep)
			removed = true
		}
	}
	return removed
}

// removeNext unlinks the successor of keep, which must exist. If the
// successor was the tail, keep becomes the tail.
func (ls *Single[T]) removeNext(keep *Node[T]) {
	ls.size--
	keep.next = keep.next.next
	if keep.next == nil {
		ls.tail = keep
	}
}

// Slice returns the values of the list, head to tail, as a newly
// allocated slice.
func (ls *Single[T]) Slice() []T {
	vs := make([]T, 0, ls.size)
	for cur := ls.head; cur != nil; cur = cur.next {
		vs = append(vs, cur.Val)
	}
	return vs
}

// All returns an iterator over the elements of the list.
func (ls *Single[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		cur := ls.head
		for cur != nil {
			if !yield(cur.Val) {
				return
			}
			cur = cur.next
		}
	}
}

// Node is a node of a [Single].
type Node[T any] struct {
	Val  T
	next *Node[T]
}
