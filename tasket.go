// Package tasket is a reactive dataflow library for building parallel,
// push/pull streaming pipelines out of statically typed nodes connected
// by edges. It wraps the untyped node protocol in internal with
// generics so callers never see a bare any.
package tasket

import "github.com/ronag/tasket/internal"

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}

// Sender is the producing half of a typed edge. Its methods reference T
// so that, say, a Sender[int] cannot be passed where a Sender[string] is
// expected even though both are implemented by generic node types.
type Sender[T any] interface {
	TryGet(r Receiver[T]) (T, bool)
	RegisterSuccessor(r Receiver[T])
	senderEngine() internal.Sender
}

// Receiver is the consuming half of a typed edge.
type Receiver[T any] interface {
	TryPut(i T, s Sender[T]) bool
	receiverEngine() internal.Receiver
}

// MakeEdge registers a permanent edge from s to r. Edges may be added
// freely before data flows; adding one after activation is a programming
// error the protocol does not detect.
func MakeEdge[T any](s Sender[T], r Receiver[T]) {
	internal.MakeEdge(s.senderEngine(), r.receiverEngine())
}

// senderEngineOf unwraps s to its internal.Sender, tolerating a nil s
// (fire-and-forget TryPut calls pass a nil sender).
func senderEngineOf[T any](s Sender[T]) internal.Sender {
	if s == nil {
		return nil
	}
	return s.senderEngine()
}

// receiverEngineOf unwraps r to its internal.Receiver, tolerating a nil r
// (fire-and-forget TryGet calls pass a nil receiver).
func receiverEngineOf[T any](r Receiver[T]) internal.Receiver {
	if r == nil {
		return nil
	}
	return r.receiverEngine()
}
