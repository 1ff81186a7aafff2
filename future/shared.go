package future

import (
	"github.com/zenparsing/chromium-futures/future/executors"
)

// SharedFuture is a copyable, thread-safe view of a future that delivers
// the settled value to any number of listeners. Prefer Future; reach for
// SharedFuture only when a result has to be cached or fanned out.
//
// The shared future is owned by the context that wrapped the underlying
// future. All bookkeeping runs there; listeners run on whatever context
// registered them, always in a later turn, and receive the value as a
// shared copy. Listeners must not mutate reference-carrying payloads.
type SharedFuture[T any] struct {
	state *sharedState[T]
}

// NewShared wraps f. It must be called on f's owning context, which becomes
// the shared future's owner.
func NewShared[T any](f *Future[T]) SharedFuture[T] {
	owner := executors.Current()
	if owner == nil {
		panic("future: no current execution context")
	}
	st := &sharedState[T]{owner: owner}
	f.AndThen(st.setValue)
	return SharedFuture[T]{state: st}
}

// AndThen registers fn to receive the value on the caller's current
// context. Listeners are serviced in registration order. A listener
// registered after settlement is still scheduled for a later turn, never
// run inline.
func (sf SharedFuture[T]) AndThen(fn func(T)) {
	if fn == nil {
		panic("future: nil continuation")
	}
	runner := executors.Current()
	if runner == nil {
		panic("future: no current execution context")
	}
	st := sf.state
	l := sharedListener[T]{fn: fn, runner: runner}
	st.owner.Submit(func() { st.addListener(l) })
}

// TransformShared returns a future on the caller's context for fn applied
// to the shared value.
func TransformShared[T, U any](sf SharedFuture[T], fn func(T) U) *Future[U] {
	p := NewPromise[U]()
	out := p.Future()
	sf.AndThen(func(v T) {
		p.SetWithSideEffects(fn(v))
	})
	return out
}

// ThenShared chains the shared value into fn and flattens the resulting
// future onto the caller's context.
func ThenShared[T, U any](sf SharedFuture[T], fn func(T) *Future[U]) *Future[U] {
	p := NewPromise[U]()
	out := p.Future()
	sf.AndThen(func(v T) {
		fn(v).AndThen(func(u U) {
			p.SetWithSideEffects(u)
		})
	})
	return out
}

type sharedListener[T any] struct {
	fn     func(T)
	runner executors.Sequenced
}

// sharedState is mutated only on the owner context; entry points from other
// contexts post themselves there.
type sharedState[T any] struct {
	owner     executors.Sequenced
	val       T
	hasVal    bool
	listeners []sharedListener[T]
}

func (s *sharedState[T]) setValue(v T) {
	if s.hasVal {
		return
	}
	s.val = v
	s.hasVal = true
	for _, l := range s.listeners {
		s.schedule(l)
	}
	s.listeners = nil
}

func (s *sharedState[T]) addListener(l sharedListener[T]) {
	if s.hasVal {
		s.schedule(l)
		return
	}
	s.listeners = append(s.listeners, l)
}

func (s *sharedState[T]) schedule(l sharedListener[T]) {
	v := s.val
	l.runner.Submit(func() { l.fn(v) })
}
