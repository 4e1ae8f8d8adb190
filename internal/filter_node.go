package internal

// Predicate reports whether an item should pass through a FilterNode.
type Predicate func(i any) bool

// FilterNode is a synchronous, predicate-gated pass-through: it runs no
// executor task and buffers nothing, contributing no latency or buffering
// to the pipeline. It has no mutable state of its own beyond the caches,
// so its methods don't need a node-level lock at all — the caches already
// serialize their own slice mutations, and the predicate is evaluated
// without holding any lock at all.
type FilterNode struct {
	predicate    Predicate
	successors   successorCache
	predecessors predecessorCache
}

func NewFilterNode(name string, predicate Predicate) *FilterNode {
	n := &FilterNode{predicate: predicate}
	n.successors.setOwner(n)
	n.predecessors.setOwner(n)
	return n
}

// TryPut evaluates the predicate; a failing item is silently dropped and
// TryPut still reports accepted. A passing item is offered to the
// successor cache; on refusal, s is recorded in the predecessor cache and
// TryPut reports refused.
func (n *FilterNode) TryPut(i any, s Sender) bool {
	if !n.predicate(i) {
		return true
	}

	if n.successors.tryPut(i) {
		return true
	}

	n.predecessors.add(s)

	return false
}

// TryGet repeatedly pulls from the predecessor cache, filtering each
// candidate, and returns the first that passes. If the predecessor cache
// runs dry before one passes, it records r and refuses.
func (n *FilterNode) TryGet(o *any, r Receiver) bool {
	var candidate any
	for n.predecessors.tryGet(&candidate) {
		if n.predicate(candidate) {
			*o = candidate
			return true
		}
	}

	n.successors.add(r)

	return false
}

func (n *FilterNode) RegisterSuccessor(r Receiver) {
	n.successors.add(r)
}
