package internal

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecutor(t *testing.T) {
	t.Run("runs submitted closures and waits for all", func(t *testing.T) {
		e := NewExecutor(WithWorkers(4))

		var n atomic.Int64
		for i := 0; i < 50; i++ {
			e.Run(func() { n.Add(1) })
		}
		e.WaitForAll()

		assert.Equal(t, int64(50), n.Load())
	})

	t.Run("oversubscribe grants and reclaims an extra slot", func(t *testing.T) {
		e := NewExecutor(WithWorkers(1))

		var ran atomic.Bool
		e.Run(func() {
			scope := e.Oversubscribe()
			defer scope.Close()
			ran.Store(true)
		})
		e.WaitForAll()

		assert.True(t, ran.Load())
	})
}
