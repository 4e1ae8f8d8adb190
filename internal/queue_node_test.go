package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueNode(t *testing.T) {
	t.Run("fifo order preserved", func(t *testing.T) {
		n := NewQueueNode("q")

		assert.True(t, n.TryPut(1, nil))
		assert.True(t, n.TryPut(2, nil))
		assert.True(t, n.TryPut(3, nil))

		var o any
		assert.True(t, n.TryGet(&o, nil))
		assert.Equal(t, 1, o)
		assert.True(t, n.TryGet(&o, nil))
		assert.Equal(t, 2, o)
		assert.True(t, n.TryGet(&o, nil))
		assert.Equal(t, 3, o)
	})

	t.Run("get on empty queue refuses and records r", func(t *testing.T) {
		n := NewQueueNode("q")
		var o any
		assert.False(t, n.TryGet(&o, &recordingReceiver{}))
	})

	t.Run("put hands off directly to a waiting successor", func(t *testing.T) {
		n := NewQueueNode("q")
		a := &recordingReceiver{}
		n.RegisterSuccessor(a)

		assert.True(t, n.TryPut(1, nil))
		assert.Equal(t, []any{1}, a.got)

		var o any
		assert.False(t, n.TryGet(&o, nil))
	})
}
