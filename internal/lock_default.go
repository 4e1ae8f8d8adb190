//go:build !wasm

package internal

import (
	"fmt"
	"sync"

	"github.com/petermattis/goid"
)

// lockOwners maps a goroutine id to the nodeMutex it currently holds. It
// enforces the rule that a node never holds its mutex while calling into
// a neighbor: correct node code always Unlocks before calling a
// neighbor's TryPut/TryGet, so a goroutine should never observe itself
// already holding a lock when it tries to take one.
var lockOwners sync.Map // int64 -> *nodeMutex

// nodeMutex wraps sync.Mutex with reentrant-lock detection so a violation
// of the "never call out while locked" invariant panics with a clear
// message instead of silently deadlocking.
type nodeMutex struct {
	mu   sync.Mutex
	name string
}

func newNodeMutex(name string) *nodeMutex {
	return &nodeMutex{name: name}
}

func (m *nodeMutex) Lock() {
	gid := goid.Get()
	if prev, ok := lockOwners.Load(gid); ok {
		panic(fmt.Errorf("tasket: goroutine holding node lock %q attempted to lock %q — "+
			"a node must release its own lock before calling into a neighbor", prev.(*nodeMutex).name, m.name))
	}

	m.mu.Lock()
	lockOwners.Store(gid, m)
}

func (m *nodeMutex) Unlock() {
	lockOwners.Delete(goid.Get())
	m.mu.Unlock()
}
