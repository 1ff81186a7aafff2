// Package executors defines the execution contexts that drive futures.
//
// An Executor accepts tasks for asynchronous execution. A Sequenced
// executor additionally guarantees that its tasks run one at a time, in
// submission order; it stands for a serialized execution context, and it is
// the only kind of executor a future may live on.
//
// Each goroutine can be associated with at most one sequenced context at a
// time. The executors in this package maintain that association while they
// run tasks, so code inside a task can recover its own context with
// Current. Embedders that drive work on behalf of a context from their own
// goroutine adopt it with Enter.
package executors

import (
	"sync"

	"github.com/google/uuid"

	"github.com/zenparsing/chromium-futures/internal/goid"
	"github.com/zenparsing/chromium-futures/routine"
)

// Executor posts tasks for asynchronous execution.
type Executor interface {
	Submit(task func())
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(func())

func (e ExecutorFunc) Submit(task func()) {
	e(task)
}

// Sequenced is an executor that runs its tasks serially, in FIFO order.
// Two tasks submitted to the same Sequenced never run concurrently.
type Sequenced interface {
	Executor

	// ID identifies the context for affinity bookkeeping. It is stable for
	// the lifetime of the executor and unique within the process.
	ID() ID
}

// ID identifies a sequenced execution context.
type ID uuid.UUID

// NewID returns a fresh context identifier.
func NewID() ID {
	return ID(uuid.New())
}

func (id ID) String() string {
	return uuid.UUID(id).String()
}

// contexts maps a goroutine id to the Sequenced context driving it.
var contexts sync.Map

// Current returns the sequenced context associated with the calling
// goroutine, or nil when there is none.
func Current() Sequenced {
	if v, ok := contexts.Load(goid.ID()); ok {
		return v.(Sequenced)
	}
	return nil
}

// Enter associates the calling goroutine with s until the returned leave
// function runs. Calls nest: leave restores whatever association was in
// effect before. leave must be called on the same goroutine.
func Enter(s Sequenced) (leave func()) {
	if s == nil {
		panic("executors: enter with nil context")
	}
	gid := goid.ID()
	prev, hadPrev := contexts.Load(gid)
	contexts.Store(gid, s)
	return func() {
		if hadPrev {
			contexts.Store(gid, prev)
		} else {
			contexts.Delete(gid)
		}
	}
}

// Option configures a sequenced executor.
type Option func(*options)

type options struct {
	onPanic func(*routine.Recovered)
}

// WithPanicHandler routes task panics to fn instead of letting them crash
// the drive loop. fn runs on the executor's goroutine with the panic
// already captured.
func WithPanicHandler(fn func(*routine.Recovered)) Option {
	return func(o *options) {
		o.onPanic = fn
	}
}

func runTask(task func(), onPanic func(*routine.Recovered)) {
	if onPanic == nil {
		task()
		return
	}
	defer func() {
		if r := recover(); r != nil {
			// Skip the deferred closure and runtime.gopanic so the trace
			// starts at the panic site.
			onPanic(routine.NewRecovered(2, r))
		}
	}()
	task()
}

// GoExecutor runs each task on its own goroutine. It is not sequenced; use
// it for producer-side work that settles shared promises from outside any
// context.
type GoExecutor struct{}

func (GoExecutor) Submit(task func()) {
	go task()
}

// PoolExecutor bounds the number of concurrently running tasks. It is not
// sequenced.
type PoolExecutor struct {
	sem chan struct{}
}

// NewPoolExecutor creates a PoolExecutor running at most maxWorkers tasks
// at once. maxWorkers must be positive.
func NewPoolExecutor(maxWorkers int) *PoolExecutor {
	if maxWorkers <= 0 {
		panic("executors: maxWorkers must be positive")
	}
	return &PoolExecutor{
		sem: make(chan struct{}, maxWorkers),
	}
}

func (p *PoolExecutor) Submit(task func()) {
	p.sem <- struct{}{}
	go func() {
		defer func() { <-p.sem }()
		task()
	}()
}
