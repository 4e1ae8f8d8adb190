package internal

import "sync"

// successorCache is a per-sender FIFO of receivers that refused a push and
// want to be offered the next value the sender produces.
//
// The cache carries its own mutex, independent of the owning node's
// nodeMutex. tryPut calls into a neighbor's TryPut, and a node must never
// do that while its own mutex is held; giving the cache a separate, much
// shorter-lived lock (held only while popping an entry, never while the
// neighbor call is in flight) lets callers invoke tryPut after releasing
// their own node lock, so the invariant holds by construction rather than
// by caller discipline alone.
type successorCache struct {
	mu        sync.Mutex
	owner     Sender
	receivers []Receiver
}

func (c *successorCache) setOwner(s Sender) {
	c.owner = s
}

// add appends r if non-nil. A nil receiver means "fire and forget";
// nothing is recorded for it.
func (c *successorCache) add(r Receiver) {
	if r == nil {
		return
	}

	c.mu.Lock()
	c.receivers = append(c.receivers, r)
	c.mu.Unlock()
}

// tryPut walks the cache front to back, offering i to each entry and
// removing it regardless of outcome (a refuser re-registers itself by
// refusing again later). Stops and returns true on the first acceptance.
// Must be called without the caller's own node lock held.
func (c *successorCache) tryPut(i any) bool {
	for {
		c.mu.Lock()
		if len(c.receivers) == 0 {
			c.mu.Unlock()
			return false
		}
		r := c.receivers[0]
		c.receivers = c.receivers[1:]
		owner := c.owner
		c.mu.Unlock()

		if r.TryPut(i, owner) {
			return true
		}
	}
}

func (c *successorCache) empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.receivers) == 0
}

// predecessorCache is the mirror-image cache held by a receiver: senders
// that had nothing to offer and want to be pulled from once this node has
// free capacity again. Same locking discipline as successorCache.
type predecessorCache struct {
	mu      sync.Mutex
	owner   Receiver
	senders []Sender
}

func (c *predecessorCache) setOwner(r Receiver) {
	c.owner = r
}

func (c *predecessorCache) add(s Sender) {
	if s == nil {
		return
	}

	c.mu.Lock()
	c.senders = append(c.senders, s)
	c.mu.Unlock()
}

// tryGet walks the cache front to back asking each sender for a value,
// removing it regardless of outcome. Stops and returns true (with o
// filled) on the first sender that produces a value. Must be called
// without the caller's own node lock held.
func (c *predecessorCache) tryGet(o *any) bool {
	for {
		c.mu.Lock()
		if len(c.senders) == 0 {
			c.mu.Unlock()
			return false
		}
		s := c.senders[0]
		c.senders = c.senders[1:]
		owner := c.owner
		c.mu.Unlock()

		if s.TryGet(o, owner) {
			return true
		}
	}
}

func (c *predecessorCache) empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.senders) == 0
}
