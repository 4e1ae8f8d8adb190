package internal

import "log/slog"

// Body advances a generator by one step, filling o and returning true if
// it produced a value, or returning false once exhausted. A node calls
// Body exactly once per step task and caches the live Body between tasks,
// so a stateful multi-output transform never needs a real stackful
// coroutine.
type Body func(o *any) bool

// Generator instantiates a fresh Body for one input.
type Generator func(i any) Body

// GeneratorNode is a stateful transform: each input starts or feeds a
// generator that may yield zero or more outputs before exhausting.
//
// active is held true across the entire window between "body produced a
// value or finished" and "the node has fully decided what to do about
// it", which blocks concurrent TryPut/TryGet from racing a second task
// into existence without ever needing to call a neighbor while mu is
// held.
type GeneratorNode struct {
	mu           *nodeMutex
	executor     *Executor
	logger       *slog.Logger
	name         string
	factory      Generator
	active       bool
	body         Body
	value        any
	hasValue     bool
	successors   successorCache
	predecessors predecessorCache
}

func NewGeneratorNode(name string, executor *Executor, factory Generator) *GeneratorNode {
	Invariant(factory != nil, "generator_node %q: factory must not be nil", name)

	n := &GeneratorNode{
		mu:       newNodeMutex(name),
		executor: executor,
		logger:   executor.Logger(),
		name:     name,
		factory:  factory,
	}
	n.successors.setOwner(n)
	n.predecessors.setOwner(n)
	return n
}

// TryPut refuses (recording s) if a step task is already running or the
// latch is occupied. Otherwise it instantiates a fresh Body from i and
// submits the first step task.
func (n *GeneratorNode) TryPut(i any, s Sender) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.active || n.hasValue {
		n.predecessors.add(s)
		return false
	}

	n.body = n.factory(i)
	n.active = true
	n.submitStep()

	return true
}

// submitStep only schedules the closure (Run does not execute inline), so
// it never touches a neighbor and may be called with or without mu held.
func (n *GeneratorNode) submitStep() {
	n.executor.Run(n.step)
}

// logResubmit records, at Debug level, the decision step made about
// whether and why another step task was or wasn't resubmitted.
func (n *GeneratorNode) logResubmit(decision string) {
	if n.logger != nil {
		n.logger.Debug("tasket: generator node step resubmit decision", "node", n.name, "decision", decision)
	}
}

// step advances the live body by exactly one yield. No lock is held while
// calling the body itself: a refusal downstream parks the item in the
// latch and ends the task rather than busy-waiting for capacity. The body
// field is only ever mutated immediately before a submitStep call whose
// goroutine creation happens-before this read, so reading it here without
// the lock is safe — at most one step task is ever in flight, so no other
// goroutine is concurrently mutating it.
func (n *GeneratorNode) step() {
	var o any
	done := !n.body(&o)

	if done {
		n.mu.Lock()
		n.body = nil
		n.mu.Unlock()

		var next any
		if n.predecessors.tryGet(&next) {
			n.mu.Lock()
			n.body = n.factory(next)
			n.mu.Unlock()
			n.logResubmit("exhausted, chaining into buffered next input")
			n.submitStep()
			return
		}

		n.mu.Lock()
		n.active = false
		n.mu.Unlock()
		n.logResubmit("exhausted, no buffered input, going idle")
		return
	}

	if n.successors.tryPut(o) {
		n.logResubmit("output accepted downstream, resubmitting immediately")
		n.submitStep()
		return
	}

	n.mu.Lock()
	n.value = o
	n.hasValue = true
	n.active = false
	n.mu.Unlock()
	n.logResubmit("output refused downstream, latching and pausing")
}

// TryGet moves the latched value out. If no step task is running, it
// resumes the live body (if one is paused waiting for downstream
// capacity) or, failing that, tentatively claims active and tries to pull
// the next input from the predecessor cache to start a fresh body.
func (n *GeneratorNode) TryGet(o *any, r Receiver) bool {
	n.mu.Lock()

	if !n.hasValue {
		n.mu.Unlock()
		n.successors.add(r)
		return false
	}

	*o = n.value
	n.value = nil
	n.hasValue = false

	resumeExisting := false
	claimed := false
	if !n.active {
		n.active = true
		if n.body != nil {
			resumeExisting = true
		} else {
			claimed = true
		}
	}
	n.mu.Unlock()

	switch {
	case resumeExisting:
		n.submitStep()
	case claimed:
		var next any
		if n.predecessors.tryGet(&next) {
			n.mu.Lock()
			n.body = n.factory(next)
			n.mu.Unlock()
			n.submitStep()
		} else {
			n.mu.Lock()
			n.active = false
			n.mu.Unlock()
		}
	}

	return true
}

func (n *GeneratorNode) RegisterSuccessor(r Receiver) {
	n.successors.add(r)
}
