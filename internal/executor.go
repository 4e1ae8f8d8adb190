package internal

import (
	"context"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Executor is the task dispatcher every node submits work to. Run submits
// a closure for asynchronous, possibly-parallel execution; WaitForAll
// cooperatively blocks until every submitted closure has completed.
type Executor struct {
	g      *errgroup.Group
	ctx    context.Context
	sem    *semaphore.Weighted
	logger *slog.Logger
}

// ExecutorOption configures an Executor at construction time using the
// functional-options pattern.
type ExecutorOption func(*executorConfig)

type executorConfig struct {
	workers int
	logger  *slog.Logger
}

// WithWorkers bounds how many submitted closures may run concurrently.
// Defaults to runtime.GOMAXPROCS(0) — the closest Go analogue of a
// fixed-size TBB/ConcRT thread pool.
func WithWorkers(n int) ExecutorOption {
	return func(c *executorConfig) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithLogger attaches an optional debug logger. Without one, the executor
// logs nothing.
func WithLogger(l *slog.Logger) ExecutorOption {
	return func(c *executorConfig) {
		c.logger = l
	}
}

func NewExecutor(opts ...ExecutorOption) *Executor {
	cfg := executorConfig{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers < 1 {
		cfg.workers = 1
	}

	return &Executor{
		g:      new(errgroup.Group),
		ctx:    context.Background(),
		sem:    semaphore.NewWeighted(int64(cfg.workers)),
		logger: cfg.logger,
	}
}

// Run submits work for asynchronous execution. Closures may run in
// parallel up to the configured worker width. A panicking closure is
// recovered only to log it (when a logger is set) and is then re-panicked
// with the same value: user-body failures propagate and are fatal to the
// graph.
func (e *Executor) Run(work func()) {
	e.g.Go(func() error {
		if err := e.sem.Acquire(e.ctx, 1); err != nil {
			return err
		}
		defer e.sem.Release(1)

		defer func() {
			if r := recover(); r != nil {
				if e.logger != nil {
					e.logger.Debug("tasket: task panic propagating out of executor", "panic", r)
				}
				panic(r)
			}
		}()

		work()

		return nil
	})
}

// Logger returns the optional debug logger configured via WithLogger, or
// nil if none was given.
func (e *Executor) Logger() *slog.Logger {
	return e.logger
}

// WaitForAll blocks the caller until every submitted closure has
// completed. Cooperative by construction: each closure runs on its own
// goroutine, so one closure blocking (e.g. inside an Oversubscribe scope)
// never starves another from running.
func (e *Executor) WaitForAll() {
	if err := e.g.Wait(); err != nil {
		panic(err)
	}
}

// OversubscriptionScope is an RAII-style hint that the enclosing closure is
// about to perform a blocking call, letting the pool temporarily exceed
// its configured width.
type OversubscriptionScope struct {
	e *Executor
}

// Oversubscribe grants one extra worker slot for the duration of a
// blocking call. Call Close when the blocking call returns.
func (e *Executor) Oversubscribe() *OversubscriptionScope {
	e.sem.Release(1)
	return &OversubscriptionScope{e: e}
}

// Close reclaims the extra slot granted by Oversubscribe, blocking if
// necessary until the pool has capacity to absorb it.
func (s *OversubscriptionScope) Close() {
	_ = s.e.sem.Acquire(context.Background(), 1)
}
