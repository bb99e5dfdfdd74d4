package jumpq

import (
	"context"
	"sync"
	"time"
)

// A SyncQueue is a [Queue] that is safe for concurrent use by
// multiple goroutines. Every operation acquires an exclusive lock
// scoped to the SyncQueue and holds it until the operation returns,
// so each operation, including an entire bulk removal, is atomic with
// respect to all other operations on the same instance. A zero value
// SyncQueue is ready to use.
//
// A SyncQueue provides no blocking receive: a consumer that finds the
// queue empty is expected to poll, for example via [SyncQueue.Poll].
//
// A SyncQueue must not be copied after first use.
type SyncQueue[T any] struct {
	_     noCopy
	start sync.Once
	q     Queue[T]
}

func (s *SyncQueue[T]) init() *Queue[T] {
	s.start.Do(func() {
		s.q.ap = new(locked)
	})
	return &s.q
}

// locked is the applier that SyncQueue installs at the queue's seam:
// it wraps every seam invocation in a mutex-guarded call.
type locked struct {
	mu sync.Mutex
}

func (l *locked) do(op func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	op()
}

// Len returns the number of entries currently in the queue.
func (s *SyncQueue[T]) Len() int {
	return s.init().Len()
}

// Empty reports whether the queue has no entries.
func (s *SyncQueue[T]) Empty() bool {
	return s.init().Empty()
}

// Peek returns the value at the head of the queue without consuming
// it. It reports false if the queue is empty.
func (s *SyncQueue[T]) Peek() (T, bool) {
	return s.init().Peek()
}

// Pop unlinks the head of the queue and returns its value. It reports
// false if the queue was empty.
func (s *SyncQueue[T]) Pop() (T, bool) {
	return s.init().Pop()
}

// Prepend jumps the line: v becomes the new head of the queue.
func (s *SyncQueue[T]) Prepend(v T) {
	s.init().Prepend(v)
}

// Append adds the values to the tail of the queue in the given order.
func (s *SyncQueue[T]) Append(vs ...T) {
	s.init().Append(vs...)
}

// RemoveAllIdentity removes every entry that is the same instance as
// an element of vs, returning the elements that removed nothing.
func (s *SyncQueue[T]) RemoveAllIdentity(vs []T) []T {
	return s.init().RemoveAllIdentity(vs)
}

// RemoveAllEqual removes every entry equal by value to an element of
// vs, returning the elements that removed nothing.
func (s *SyncQueue[T]) RemoveAllEqual(vs []T) []T {
	return s.init().RemoveAllEqual(vs)
}

// Slice returns a snapshot of the queue's values, head to tail, taken
// under a single critical section.
func (s *SyncQueue[T]) Slice() []T {
	return s.init().Slice()
}

// String returns the diagnostic form "SyncQueue(size)[v1, v2, ...]"
// built from one consistent snapshot of the queue.
func (s *SyncQueue[T]) String() string {
	return sprint("SyncQueue", s.Slice())
}

// Poll repeatedly attempts to Pop, sleeping for interval between
// attempts, until a value is available or ctx is canceled. It reports
// false only on cancellation. Each attempt is an ordinary Pop; the
// sleeps happen outside of the queue's critical sections.
func (s *SyncQueue[T]) Poll(ctx context.Context, interval time.Duration) (T, bool) {
	q := s.init()
	for {
		if v, ok := q.Pop(); ok {
			return v, true
		}
		select {
		case <-ctx.Done():
			var zero T
			return zero, false
		case <-time.After(interval):
		}
	}
}
