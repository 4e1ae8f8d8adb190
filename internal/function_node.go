package internal

// FunctionBody computes one output from one input.
type FunctionBody func(i any) any

// FunctionNode is a stateless one-to-one transform serialized per
// instance: at most one body call is ever in flight for a given node.
// It shares GeneratorNode's single-flight active/latch shape, simplified
// to a one-shot body instead of a resumable stepper.
//
// active is held true from the moment a body call is accepted until this
// node has fully routed its output (pushed it downstream or latched it)
// and decided whether to immediately chain into another body call —
// never released early — so that the only two places that call into a
// neighbor (successors.tryPut, predecessors.tryGet) always run with the
// node's own mutex released, while still preventing two concurrent body
// calls.
type FunctionNode struct {
	mu           *nodeMutex
	executor     *Executor
	body         FunctionBody
	active       bool
	value        any
	hasValue     bool
	successors   successorCache
	predecessors predecessorCache
}

func NewFunctionNode(name string, executor *Executor, body FunctionBody) *FunctionNode {
	Invariant(body != nil, "function_node %q: body must not be nil", name)

	n := &FunctionNode{mu: newNodeMutex(name), executor: executor, body: body}
	n.successors.setOwner(n)
	n.predecessors.setOwner(n)
	return n
}

// TryPut refuses (recording s) if a body call is already running or the
// latch is occupied. Otherwise it starts a body call for i.
func (n *FunctionNode) TryPut(i any, s Sender) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.active || n.hasValue {
		n.predecessors.add(s)
		return false
	}

	n.active = true
	n.spawn(i)

	return true
}

// spawn only submits a closure to the executor; Run does not execute it
// inline, so spawn itself never touches a neighbor and may be called
// either with or without mu held.
func (n *FunctionNode) spawn(i any) {
	n.executor.Run(func() {
		o := n.body(i)

		accepted := n.successors.tryPut(o)

		if accepted {
			var next any
			if n.predecessors.tryGet(&next) {
				n.spawn(next)
				return
			}

			n.mu.Lock()
			n.active = false
			n.mu.Unlock()
			return
		}

		n.mu.Lock()
		n.active = false
		n.value = o
		n.hasValue = true
		n.mu.Unlock()
	})
}

// TryGet moves the latched value out. If no body call is running, it then
// tentatively claims active (to block a concurrent TryPut from also
// spawning) and tries to pull the next input from the predecessor cache;
// if one materializes it starts a new body call, otherwise it releases
// the claim.
func (n *FunctionNode) TryGet(o *any, r Receiver) bool {
	n.mu.Lock()

	if !n.hasValue {
		n.mu.Unlock()
		n.successors.add(r)
		return false
	}

	*o = n.value
	n.value = nil
	n.hasValue = false

	claimed := false
	if !n.active {
		n.active = true
		claimed = true
	}
	n.mu.Unlock()

	if claimed {
		var next any
		if n.predecessors.tryGet(&next) {
			n.spawn(next)
		} else {
			n.mu.Lock()
			n.active = false
			n.mu.Unlock()
		}
	}

	return true
}

func (n *FunctionNode) RegisterSuccessor(r Receiver) {
	n.successors.add(r)
}
