package future

import (
	"go.uber.org/atomic"

	"github.com/zenparsing/chromium-futures/future/executors"
)

// SharedPromise is a copyable, thread-safe producer handle for a promise.
// Set may be called from any goroutine; the write is posted to the owning
// context, so the underlying promise is always settled there. The first
// write wins and later writes are silent no-ops.
type SharedPromise[T any] struct {
	state *sharedPromiseState[T]
}

type sharedPromiseState[T any] struct {
	owner   executors.Sequenced
	written atomic.Bool
	promise *Promise[T]
}

// NewSharedPromise wraps p. It must be called on p's owning context.
func NewSharedPromise[T any](p *Promise[T]) SharedPromise[T] {
	owner := executors.Current()
	if owner == nil {
		panic("future: no current execution context")
	}
	return SharedPromise[T]{state: &sharedPromiseState[T]{owner: owner, promise: p}}
}

// Set settles the wrapped promise with v. Only the first call across all
// copies has an effect.
func (sp SharedPromise[T]) Set(v T) {
	st := sp.state
	if !st.written.CompareAndSwap(false, true) {
		return
	}
	st.owner.Submit(func() {
		p := st.promise
		st.promise = nil
		p.Set(v)
	})
}
