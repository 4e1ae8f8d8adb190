package tasket

import "github.com/ronag/tasket/internal"

// Predicate reports whether an item should pass through a FilterNode.
type Predicate[T any] func(i T) bool

// FilterNode is a synchronous, predicate-gated pass-through: it runs no
// executor task and buffers nothing.
type FilterNode[T any] struct {
	node *internal.FilterNode
}

func NewFilterNode[T any](name string, predicate Predicate[T]) *FilterNode[T] {
	engineNode := internal.NewFilterNode(name, func(i any) bool {
		return predicate(as[T](i))
	})
	return &FilterNode[T]{node: engineNode}
}

func (n *FilterNode[T]) senderEngine() internal.Sender     { return n.node }
func (n *FilterNode[T]) receiverEngine() internal.Receiver { return n.node }

// TryPut evaluates the predicate; a failing item is silently dropped and
// TryPut still reports accepted.
func (n *FilterNode[T]) TryPut(i T, s Sender[T]) bool {
	return n.node.TryPut(i, senderEngineOf(s))
}

// TryGet pulls from upstream, filtering candidates, and returns the
// first that passes.
func (n *FilterNode[T]) TryGet(r Receiver[T]) (T, bool) {
	var o any
	ok := n.node.TryGet(&o, receiverEngineOf(r))
	return as[T](o), ok
}

func (n *FilterNode[T]) RegisterSuccessor(r Receiver[T]) {
	n.node.RegisterSuccessor(r.receiverEngine())
}
