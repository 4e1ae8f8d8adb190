package tasket

import "github.com/ronag/tasket/internal"

// QueueNode is an unbounded, passive FIFO buffer. All work is
// caller-driven: no executor task is ever spawned on its behalf.
type QueueNode[T any] struct {
	node *internal.QueueNode
}

func NewQueueNode[T any](name string) *QueueNode[T] {
	return &QueueNode[T]{node: internal.NewQueueNode(name)}
}

func (n *QueueNode[T]) senderEngine() internal.Sender     { return n.node }
func (n *QueueNode[T]) receiverEngine() internal.Receiver { return n.node }

// TryPut enqueues i, or hands it straight to a waiting successor. Always
// accepts.
func (n *QueueNode[T]) TryPut(i T, s Sender[T]) bool {
	return n.node.TryPut(i, senderEngineOf(s))
}

// TryGet dequeues the front item if the FIFO is nonempty; else records r
// and refuses.
func (n *QueueNode[T]) TryGet(r Receiver[T]) (T, bool) {
	var o any
	ok := n.node.TryGet(&o, receiverEngineOf(r))
	return as[T](o), ok
}

func (n *QueueNode[T]) RegisterSuccessor(r Receiver[T]) {
	n.node.RegisterSuccessor(r.receiverEngine())
}
