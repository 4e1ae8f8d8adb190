package tasket

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ronag/tasket/internal"
	"github.com/stretchr/testify/assert"
)

// testSink is a Receiver[T] that records everything pushed to it, safe
// for concurrent TryPut calls from multiple executor workers.
type testSink[T any] struct {
	mu  sync.Mutex
	got []T
}

func (s *testSink[T]) append(v T) bool {
	s.mu.Lock()
	s.got = append(s.got, v)
	s.mu.Unlock()
	return true
}

func (s *testSink[T]) values() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]T(nil), s.got...)
}

func (s *testSink[T]) TryPut(i T, sender Sender[T]) bool {
	return s.append(i)
}

func (s *testSink[T]) receiverEngine() internal.Receiver {
	return testSinkEngine[T]{s}
}

type testSinkEngine[T any] struct{ sink *testSink[T] }

func (e testSinkEngine[T]) TryPut(i any, s internal.Sender) bool {
	return e.sink.append(as[T](i))
}

func sliceSourceBody[T any](items []T) SourceBody[T] {
	idx := 0
	return func(o *T) bool {
		if idx >= len(items) {
			return false
		}
		*o = items[idx]
		idx++
		return true
	}
}

func TestFilterThenSquare(t *testing.T) {
	e := NewExecutor()
	source := NewSourceNode("source", e, sliceSourceBody([]int{1, 2, 3, 4, 5}))
	filter := NewFilterNode[int]("even", func(i int) bool { return i%2 == 0 })
	square := NewFunctionNode[int, int]("square", e, func(i int) int { return i * i })
	sink := &testSink[int]{}

	MakeEdge[int](source, filter)
	MakeEdge[int](filter, square)
	MakeEdge[int](square, sink)

	source.Activate()
	e.WaitForAll()

	assert.Equal(t, []int{4, 16}, sink.values())
}

func TestBroadcastFanOut(t *testing.T) {
	e := NewExecutor()
	source := NewSourceNode("source", e, sliceSourceBody([]int{10, 20}))
	broadcast := NewBroadcastNode[int]("fanout")
	a := NewQueueNode[int]("a")
	b := NewQueueNode[int]("b")

	MakeEdge[int](source, broadcast)
	broadcast.RegisterSuccessor(a)
	broadcast.RegisterSuccessor(b)

	source.Activate()
	e.WaitForAll()

	drain := func(q *QueueNode[int]) []int {
		var got []int
		for {
			v, ok := q.TryGet(nil)
			if !ok {
				return got
			}
			got = append(got, v)
		}
	}

	assert.Equal(t, []int{10, 20}, drain(a))
	assert.Equal(t, []int{10, 20}, drain(b))
}

func TestOverwriteSampling(t *testing.T) {
	n := NewOverwriteNode[int]("cell")

	n.TryPut(1, nil)
	n.TryPut(2, nil)
	n.TryPut(3, nil)

	first, ok := n.TryGet(nil)
	assert.True(t, ok)
	second, ok := n.TryGet(nil)
	assert.True(t, ok)

	assert.LessOrEqual(t, first, second)
	assert.Equal(t, 3, second)
}

func TestGeneratorMultiYield(t *testing.T) {
	e := NewExecutor()
	gen := NewGeneratorNode[int, int]("expand", e, func(n int) Body[int] {
		next := 1
		return func(o *int) bool {
			if next > n {
				return false
			}
			*o = next
			next++
			return true
		}
	})
	sink := &testSink[int]{}
	gen.RegisterSuccessor(sink)

	gen.TryPut(2, nil)
	e.WaitForAll()
	gen.TryPut(3, nil)
	e.WaitForAll()

	assert.Equal(t, []int{1, 2, 1, 2, 3}, sink.values())
}

// ExampleGeneratorNode_spacing expands each line into its characters
// interleaved with a trailing space after every one, demonstrating a
// generator chained behind a source through to a sink.
func ExampleGeneratorNode_spacing() {
	e := NewExecutor()
	source := NewSourceNode("lines", e, sliceSourceBody([]string{"ab", "cd"}))
	gen := NewGeneratorNode[string, string]("space", e, func(line string) Body[string] {
		runes := []rune(line)
		idx := 0
		emittedChar := false
		return func(o *string) bool {
			if idx >= len(runes) {
				return false
			}
			if !emittedChar {
				*o = string(runes[idx])
				emittedChar = true
			} else {
				*o = " "
				emittedChar = false
				idx++
			}
			return true
		}
	})
	sink := &testSink[string]{}

	MakeEdge[string](source, gen)
	gen.RegisterSuccessor(sink)

	source.Activate()
	e.WaitForAll()

	got := ""
	for _, part := range sink.values() {
		got += part
	}
	fmt.Println(got)
	// Output: a b c d
}

func TestBackpressureWithoutLoss(t *testing.T) {
	const total = 1000

	items := make([]int, total)
	for i := range items {
		items[i] = i
	}

	var inFlight atomic.Int32
	var maxInFlight atomic.Int32

	e := NewExecutor(WithWorkers(8))
	source := NewSourceNode("source", e, sliceSourceBody(items))
	filter := NewFilterNode[int]("all", func(int) bool { return true })
	fn := NewFunctionNode[int, int]("slow", e, func(i int) int {
		n := inFlight.Add(1)
		for {
			prev := maxInFlight.Load()
			if n <= prev || maxInFlight.CompareAndSwap(prev, n) {
				break
			}
		}
		time.Sleep(time.Microsecond)
		inFlight.Add(-1)
		return i
	})
	sink := &testSink[int]{}

	MakeEdge[int](source, filter)
	MakeEdge[int](filter, fn)
	MakeEdge[int](fn, sink)

	source.Activate()
	e.WaitForAll()

	assert.Equal(t, items, sink.values())
	assert.LessOrEqual(t, maxInFlight.Load(), int32(1))
}
