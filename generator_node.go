package tasket

import "github.com/ronag/tasket/internal"

// Body advances a generator by one step, filling out and returning true
// if it produced a value, or returning false once exhausted.
type Body[Output any] func(out *Output) bool

// Generator instantiates a fresh Body for one input.
type Generator[Input, Output any] func(i Input) Body[Output]

// GeneratorNode is a stateful transform: each input starts or feeds a
// generator that may yield zero or more outputs before exhausting.
type GeneratorNode[Input, Output any] struct {
	node *internal.GeneratorNode
}

// NewGeneratorNode creates a GeneratorNode driven by factory, submitting
// step tasks to executor.
func NewGeneratorNode[Input, Output any](name string, executor *Executor, factory Generator[Input, Output]) *GeneratorNode[Input, Output] {
	engineFactory := func(i any) internal.Body {
		body := factory(as[Input](i))
		return func(o *any) bool {
			var out Output
			if !body(&out) {
				return false
			}
			*o = out
			return true
		}
	}
	return &GeneratorNode[Input, Output]{node: internal.NewGeneratorNode(name, executor.engine, engineFactory)}
}

func (n *GeneratorNode[Input, Output]) senderEngine() internal.Sender     { return n.node }
func (n *GeneratorNode[Input, Output]) receiverEngine() internal.Receiver { return n.node }

// TryPut refuses (recording s) if a step task is already running or the
// latch is occupied. Otherwise it instantiates a fresh generator for i
// and submits the first step task.
func (n *GeneratorNode[Input, Output]) TryPut(i Input, s Sender[Input]) bool {
	return n.node.TryPut(i, senderEngineOf(s))
}

// TryGet moves the latched output out, resuming or restarting the
// generator as needed.
func (n *GeneratorNode[Input, Output]) TryGet(r Receiver[Output]) (Output, bool) {
	var o any
	ok := n.node.TryGet(&o, receiverEngineOf(r))
	return as[Output](o), ok
}

func (n *GeneratorNode[Input, Output]) RegisterSuccessor(r Receiver[Output]) {
	n.node.RegisterSuccessor(r.receiverEngine())
}
