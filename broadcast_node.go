package tasket

import "github.com/ronag/tasket/internal"

// BroadcastNode copies every item it receives to every registered
// successor. It buffers nothing: a successor that cannot keep up must
// buffer for itself.
type BroadcastNode[T any] struct {
	node *internal.BroadcastNode
}

// NewBroadcastNode creates a BroadcastNode. name is used only in panic
// messages raised by lock-discipline violations.
func NewBroadcastNode[T any](name string) *BroadcastNode[T] {
	return &BroadcastNode[T]{node: internal.NewBroadcastNode(name)}
}

func (n *BroadcastNode[T]) senderEngine() internal.Sender     { return n.node }
func (n *BroadcastNode[T]) receiverEngine() internal.Receiver { return n.node }

// TryPut copies i to every registered successor and always returns true.
func (n *BroadcastNode[T]) TryPut(i T, s Sender[T]) bool {
	return n.node.TryPut(i, senderEngineOf(s))
}

// TryGet always refuses: broadcast offers no retry contract.
func (n *BroadcastNode[T]) TryGet(r Receiver[T]) (T, bool) {
	var zero T
	return zero, false
}

// RegisterSuccessor wires a permanent edge; prefer MakeEdge.
func (n *BroadcastNode[T]) RegisterSuccessor(r Receiver[T]) {
	n.node.RegisterSuccessor(r.receiverEngine())
}
