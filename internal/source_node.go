package internal

// SourceBody produces one output per call. It returns false when
// exhausted; once that happens the source is permanently drained and no
// further production tasks are spawned.
type SourceBody func(o *any) bool

// SourceNode is a pull generator with no input: once activated it
// repeatedly submits a production task to the executor, stashing the
// produced value in its single latch slot whenever every successor
// refuses it.
type SourceNode struct {
	mu         *nodeMutex
	name       string
	executor   *Executor
	body       SourceBody
	successors successorCache
	value      any
	hasValue   bool
	exhausted  bool
	activated  bool
}

func NewSourceNode(name string, executor *Executor, body SourceBody) *SourceNode {
	Invariant(body != nil, "source_node %q: body must not be nil", name)

	n := &SourceNode{mu: newNodeMutex(name), name: name, executor: executor, body: body}
	n.successors.setOwner(n)
	return n
}

// Activate begins production. Calling Activate more than once is a
// programming error.
func (n *SourceNode) Activate() {
	n.mu.Lock()
	alreadyActivated := n.activated
	n.activated = true
	n.mu.Unlock()

	Invariant(!alreadyActivated, "source_node %q: Activate called more than once", n.name)

	n.spawnPut()
}

func (n *SourceNode) spawnPut() {
	n.executor.Run(func() {
		var o any
		if !n.body(&o) {
			n.mu.Lock()
			n.exhausted = true
			n.mu.Unlock()
			return
		}

		// successors.tryPut may call into a neighbor's TryPut, so it runs
		// before the lock below is taken, not inside it — a node must
		// never call into a neighbor while holding its own mutex.
		if n.successors.tryPut(o) {
			n.spawnPut()
			return
		}

		n.mu.Lock()
		n.value = o
		n.hasValue = true
		n.mu.Unlock()
	})
}

// TryGet retrieves the latched value if present, clears it, resubmits a
// production task, and returns true. If nothing is latched, records r and
// refuses.
func (n *SourceNode) TryGet(o *any, r Receiver) bool {
	n.mu.Lock()

	if !n.hasValue {
		n.mu.Unlock()
		n.successors.add(r)
		return false
	}

	*o = n.value
	n.value = nil
	n.hasValue = false
	exhausted := n.exhausted
	n.mu.Unlock()

	if !exhausted {
		n.spawnPut()
	}

	return true
}

func (n *SourceNode) RegisterSuccessor(r Receiver) {
	n.successors.add(r)
}
