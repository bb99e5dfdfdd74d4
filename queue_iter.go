//go:build go1.23

package jumpq

import "iter"

// All returns an iterator over the queue's values, head to tail. The
// iterator walks the live chain: the queue must not be structurally
// modified while iterating, and All must not be reached through a
// [SyncQueue] shared with other goroutines. Use [Queue.Slice] for a
// snapshot instead.
func (q *Queue[T]) All() iter.Seq[T] {
	return q.list.All()
}
