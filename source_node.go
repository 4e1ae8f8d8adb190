package tasket

import "github.com/ronag/tasket/internal"

// SourceBody produces one output per call. It returns false when
// exhausted; once that happens the source is permanently drained.
type SourceBody[T any] func(o *T) bool

// SourceNode is a pull generator with no input: once activated it
// repeatedly produces values, stashing each in its single latch slot
// whenever every successor refuses it.
type SourceNode[T any] struct {
	node *internal.SourceNode
}

// NewSourceNode creates a SourceNode driven by body, submitting
// production tasks to executor.
func NewSourceNode[T any](name string, executor *Executor, body SourceBody[T]) *SourceNode[T] {
	engineBody := func(o *any) bool {
		var out T
		if !body(&out) {
			return false
		}
		*o = out
		return true
	}
	return &SourceNode[T]{node: internal.NewSourceNode(name, executor.engine, engineBody)}
}

func (n *SourceNode[T]) senderEngine() internal.Sender { return n.node }

// Activate begins production. Calling Activate more than once on the
// same node is a programming error.
func (n *SourceNode[T]) Activate() {
	n.node.Activate()
}

// TryGet retrieves the latched value if present, clears it, resubmits a
// production task, and returns true. If nothing is latched, records r
// and refuses.
func (n *SourceNode[T]) TryGet(r Receiver[T]) (T, bool) {
	var o any
	ok := n.node.TryGet(&o, receiverEngineOf(r))
	return as[T](o), ok
}

func (n *SourceNode[T]) RegisterSuccessor(r Receiver[T]) {
	n.node.RegisterSuccessor(r.receiverEngine())
}
