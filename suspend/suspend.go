// Package suspend runs straight-line functions over futures.
//
// A frame started with Run executes its body eagerly on the caller's
// execution context, up to the first Await. Each Await registers the frame
// as the awaited future's continuation and suspends the body; when the
// value arrives, the frame resumes on a later turn of the same context and
// runs until the next Await or until the body returns. To every other task
// on the context, a frame is indistinguishable from a chain of posted
// continuations.
//
// Frames can be tied to capabilities. A frame created with WithCapability
// checks the given capabilities at every resumption; if any has died, the
// frame is torn down instead of resumed. The body's deferred functions
// still run, and the frame's result future is never settled.
package suspend

import (
	"github.com/zenparsing/chromium-futures/future"
	"github.com/zenparsing/chromium-futures/future/executors"
	"github.com/zenparsing/chromium-futures/weakref"
)

// Scope is a frame's await capability, passed to its body. It is only
// valid on the body's goroutine.
type Scope struct {
	c *core
}

// Option configures a frame.
type Option func(*options)

type options struct {
	caps []weakref.Capability
}

// WithCapability ties the frame to caps. Every resumption first checks
// that all of them are alive; a dead one cancels the frame without
// resuming it.
func WithCapability(caps ...weakref.Capability) Option {
	return func(o *options) {
		o.caps = append(o.caps, caps...)
	}
}

// Run starts body eagerly on the caller's current context and returns a
// future for its result. The body runs synchronously up to its first
// Await; afterwards each segment between awaits runs as a continuation
// turn on the same context.
//
// A panic in the body tears the frame down: deferred functions run, the
// result promise is discarded, and the panic is re-raised on the context
// as a *routine.RecoveredError carrying the original stack.
func Run[T any](body func(*Scope) T, opts ...Option) *future.Future[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	owner := executors.Current()
	if owner == nil {
		panic("suspend: no current execution context")
	}
	p := future.NewPromise[T]()
	f := p.Future()
	c := newCore(owner, o.caps)
	s := &Scope{c: c}
	go c.host(func() {
		v := body(s)
		if c.st.CompareAndSwap(stateRunning, stateCompleted) {
			p.Set(v)
		}
	}, p.Discard)
	<-c.yield
	return f
}

// RunVoid is Run for bodies that return no value.
func RunVoid(body func(*Scope), opts ...Option) *future.Future[future.Void] {
	return Run(func(s *Scope) future.Void {
		body(s)
		return future.Void{}
	}, opts...)
}

// Await suspends the frame until f settles and returns the value. It must
// be called on the frame's body goroutine, directly or through its
// callees, and f must belong to the frame's context.
func Await[U any](s *Scope, f *future.Future[U]) U {
	return await(s.c, f.AndThen)
}

// AwaitShared suspends the frame until sf delivers its shared value.
func AwaitShared[U any](s *Scope, sf future.SharedFuture[U]) U {
	return await(s.c, sf.AndThen)
}
