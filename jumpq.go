// Package jumpq provides a FIFO queue built on a singly linked chain
// of nodes. Besides the usual append-to-tail and consume-from-head,
// the queue can jump the line by prepending an entry ahead of the
// current head, and can bulk-remove entries matched either by
// identity or by value equality.
package jumpq

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
