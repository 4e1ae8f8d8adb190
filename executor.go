package tasket

import (
	"log/slog"

	"github.com/ronag/tasket/internal"
)

// Executor is the task dispatcher every node submits work to.
type Executor struct {
	engine *internal.Executor
}

// ExecutorOption configures an Executor at construction time.
type ExecutorOption = internal.ExecutorOption

// WithWorkers bounds how many submitted closures may run concurrently.
// Defaults to runtime.GOMAXPROCS(0).
func WithWorkers(n int) ExecutorOption {
	return internal.WithWorkers(n)
}

// WithLogger attaches an optional debug logger. Without one, the
// executor logs nothing.
func WithLogger(l *slog.Logger) ExecutorOption {
	return internal.WithLogger(l)
}

// NewExecutor creates a ready-to-use Executor.
func NewExecutor(opts ...ExecutorOption) *Executor {
	return &Executor{engine: internal.NewExecutor(opts...)}
}

// WaitForAll blocks until every submitted closure across every node built
// on this executor has completed.
func (e *Executor) WaitForAll() {
	e.engine.WaitForAll()
}

// OversubscriptionScope is returned by Oversubscribe; call Close when the
// blocking call it guards returns.
type OversubscriptionScope struct {
	scope *internal.OversubscriptionScope
}

// Oversubscribe grants one extra worker slot for the duration of a
// blocking call made from within a node body.
func (e *Executor) Oversubscribe() *OversubscriptionScope {
	return &OversubscriptionScope{scope: e.engine.Oversubscribe()}
}

// Close reclaims the extra slot granted by Oversubscribe.
func (s *OversubscriptionScope) Close() {
	s.scope.Close()
}
