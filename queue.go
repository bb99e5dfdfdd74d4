package jumpq

import (
	"fmt"
	"reflect"
	"strings"

	"deedles.dev/jumpq/internal/list"
)

// A Queue collects values and returns them in FIFO order. Entries are
// appended to the tail and consumed from the head, but an entry can
// jump the line via [Queue.Prepend]. A zero value Queue is ready to
// use.
//
// A Queue performs no locking of its own and must only be used by one
// goroutine at a time. For a variant that is safe for concurrent use,
// see [SyncQueue].
type Queue[T any] struct {
	ap   applier
	list list.Single[T]
}

// applier is the seam that every queue operation runs through. The
// zero Queue applies operations directly; [SyncQueue] installs a
// locking applier so that each operation becomes a single critical
// section without the facade restating any queue logic.
type applier interface {
	do(op func())
}

type direct struct{}

func (direct) do(op func()) { op() }

func (q *Queue[T]) seam() applier {
	if q.ap == nil {
		return direct{}
	}
	return q.ap
}

// apply runs a mutation through the queue's seam.
func apply[T any](q *Queue[T], op func()) {
	q.seam().do(op)
}

// fetch runs a read through the queue's seam and returns its result.
func fetch[T, R any](q *Queue[T], op func() R) (r R) {
	q.seam().do(func() { r = op() })
	return r
}

// match runs a bulk removal through the queue's seam. Every queued
// entry that eq-matches an element of vs is unlinked, and the
// elements of vs that matched nothing come back in their original
// order. One element of vs can unlink several entries.
func match[T any](q *Queue[T], vs []T, eq func(a, b T) bool) (unmatched []T) {
	if len(vs) == 0 {
		return nil
	}
	q.seam().do(func() {
		if q.list.Len() == 0 {
			unmatched = vs
			return
		}
		for _, v := range vs {
			if !q.list.RemoveAll(v, eq) {
				unmatched = append(unmatched, v)
			}
		}
	})
	return unmatched
}

// Len returns the number of entries currently in the queue.
func (q *Queue[T]) Len() int {
	return fetch(q, q.list.Len)
}

// Empty reports whether the queue has no entries.
func (q *Queue[T]) Empty() bool {
	return q.Len() == 0
}

// Peek returns the value at the head of the queue without consuming
// it. It reports false if the queue is empty. A stored zero value
// comes back as (zero, true), so gate on the bool, not on the value.
func (q *Queue[T]) Peek() (T, bool) {
	n := fetch(q, q.list.Head)
	if n == nil {
		var zero T
		return zero, false
	}
	return n.Val, true
}

// Pop unlinks the head of the queue and returns its value. It reports
// false if the queue was empty, with the same zero-value caveat as
// [Queue.Peek].
func (q *Queue[T]) Pop() (T, bool) {
	n := fetch(q, q.list.Pop)
	if n == nil {
		var zero T
		return zero, false
	}
	return n.Val, true
}

// Prepend jumps the line: v becomes the new head of the queue and
// will be the next value returned by Peek or Pop.
func (q *Queue[T]) Prepend(v T) {
	apply(q, func() { q.list.Prepend(v) })
}

// Append adds the values to the tail of the queue in the given order.
// Calling it with no values is a no-op.
func (q *Queue[T]) Append(vs ...T) {
	if len(vs) == 0 {
		return
	}
	apply(q, func() { q.list.Append(vs...) })
}

// RemoveAllIdentity removes every entry that is the same instance as
// an element of vs: pointers are matched by address, not by what they
// point at, and plain comparable values by ==. It returns the
// elements of vs that removed nothing, in their original order. It
// panics if the dynamic type of T is not comparable.
func (q *Queue[T]) RemoveAllIdentity(vs []T) []T {
	return match(q, vs, same[T])
}

// RemoveAllEqual removes every entry that is equal by value to an
// element of vs, returning the elements of vs that removed nothing in
// their original order. Two nil references are equal to each other.
func (q *Queue[T]) RemoveAllEqual(vs []T) []T {
	return match(q, vs, equal[T])
}

func same[T any](a, b T) bool {
	return any(a) == any(b)
}

func equal[T any](a, b T) bool {
	return reflect.DeepEqual(a, b)
}

// Slice returns a snapshot of the queue's values, head to tail. The
// returned slice is independent of the queue; its length equals Len.
func (q *Queue[T]) Slice() []T {
	return fetch(q, q.list.Slice)
}

// String returns the diagnostic form "Queue(size)[v1, v2, ...]". It
// is not a stable serialization format.
func (q *Queue[T]) String() string {
	return sprint("Queue", q.Slice())
}

func sprint[T any](name string, vs []T) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s(%d)[", name, len(vs))
	for i, v := range vs {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')
	return sb.String()
}
