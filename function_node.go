package tasket

import "github.com/ronag/tasket/internal"

// FunctionBody computes one output from one input.
type FunctionBody[Input, Output any] func(i Input) Output

// FunctionNode is a stateless one-to-one transform serialized per
// instance: at most one body call is ever in flight for a given node.
type FunctionNode[Input, Output any] struct {
	node *internal.FunctionNode
}

// NewFunctionNode creates a FunctionNode driven by body, submitting body
// calls to executor.
func NewFunctionNode[Input, Output any](name string, executor *Executor, body FunctionBody[Input, Output]) *FunctionNode[Input, Output] {
	engineBody := func(i any) any {
		return body(as[Input](i))
	}
	return &FunctionNode[Input, Output]{node: internal.NewFunctionNode(name, executor.engine, engineBody)}
}

func (n *FunctionNode[Input, Output]) senderEngine() internal.Sender     { return n.node }
func (n *FunctionNode[Input, Output]) receiverEngine() internal.Receiver { return n.node }

// TryPut refuses (recording s) if a body call is already running or the
// latch is occupied. Otherwise it starts a body call for i.
func (n *FunctionNode[Input, Output]) TryPut(i Input, s Sender[Input]) bool {
	return n.node.TryPut(i, senderEngineOf(s))
}

// TryGet moves the latched output out, resuming a pending body call if
// one is waiting on a predecessor.
func (n *FunctionNode[Input, Output]) TryGet(r Receiver[Output]) (Output, bool) {
	var o any
	ok := n.node.TryGet(&o, receiverEngineOf(r))
	return as[Output](o), ok
}

func (n *FunctionNode[Input, Output]) RegisterSuccessor(r Receiver[Output]) {
	n.node.RegisterSuccessor(r.receiverEngine())
}
