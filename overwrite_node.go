package tasket

import "github.com/ronag/tasket/internal"

// OverwriteNode is a single-slot latch: a most-recently-written
// register. Reads sample the latest value without consuming it.
type OverwriteNode[T any] struct {
	node *internal.OverwriteNode
}

func NewOverwriteNode[T any](name string) *OverwriteNode[T] {
	return &OverwriteNode[T]{node: internal.NewOverwriteNode(name)}
}

func (n *OverwriteNode[T]) senderEngine() internal.Sender     { return n.node }
func (n *OverwriteNode[T]) receiverEngine() internal.Receiver { return n.node }

// TryPut pushes i to every successor, then overwrites the latch. Always
// accepts.
func (n *OverwriteNode[T]) TryPut(i T, s Sender[T]) bool {
	return n.node.TryPut(i, senderEngineOf(s))
}

// TryGet copies out the latched value without consuming it. If no value
// has ever been written, records r and refuses.
func (n *OverwriteNode[T]) TryGet(r Receiver[T]) (T, bool) {
	var o any
	ok := n.node.TryGet(&o, receiverEngineOf(r))
	return as[T](o), ok
}

func (n *OverwriteNode[T]) RegisterSuccessor(r Receiver[T]) {
	n.node.RegisterSuccessor(r.receiverEngine())
}
