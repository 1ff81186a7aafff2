package future

import (
	"github.com/zenparsing/chromium-futures/callback"
)

// Transform returns a future for fn applied to f's value. The derived
// future lives on the same context; its consumer observes the transformed
// value in the turn that delivers f's value.
func Transform[T, U any](f *Future[T], fn func(T) U) *Future[U] {
	p := NewPromise[U]()
	out := p.Future()
	f.AndThen(func(v T) {
		p.SetWithSideEffects(fn(v))
	})
	return out
}

// Then chains f into fn, which starts a dependent operation, and flattens
// the result: the returned future settles when the future produced by fn
// settles.
func Then[T, U any](f *Future[T], fn func(T) *Future[U]) *Future[U] {
	p := NewPromise[U]()
	out := p.Future()
	f.AndThen(func(v T) {
		fn(v).AndThen(func(u U) {
			p.SetWithSideEffects(u)
		})
	})
	return out
}

// Ready returns an already-settled future wrapping v. Continuations
// attached to it are still posted, never run inline.
func Ready[T any](v T) *Future[T] {
	p := NewPromise[T]()
	p.Set(v)
	return p.Future()
}

// Void is the value type for futures that carry no payload.
type Void struct{}

// ReadyVoid returns an already-settled Future[Void].
func ReadyVoid() *Future[Void] {
	return Ready(Void{})
}

// New bridges a callback-style producer into a future. start receives a
// single-invocation resolver; running the resolver, on the owning context,
// settles the returned future. The resolver panics if run twice.
func New[T any](start func(resolve callback.Once[T])) *Future[T] {
	p := NewPromise[T]()
	f := p.Future()
	start(callback.New(p.Set))
	return f
}

// NewVoid is New for futures that carry no payload; the resolver takes no
// arguments.
func NewVoid(start func(resolve func())) *Future[Void] {
	p := NewPromise[Void]()
	f := p.Future()
	resolve := callback.New(p.Set)
	start(func() { resolve.Run(Void{}) })
	return f
}
