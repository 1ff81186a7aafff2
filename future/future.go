package future

// Promise is the producer half of a single-assignment cell. It settles the
// linked future exactly once, on the execution context that created the
// pair.
//
// A Promise must not be copied.
type Promise[T any] struct {
	link *link[T]
}

// NewPromise creates a linked promise/future pair owned by the calling
// goroutine's current execution context. It panics when no context is
// current.
func NewPromise[T any]() *Promise[T] {
	return &Promise[T]{link: newLink[T]()}
}

// Future returns the consumer half of the pair. It may be called only once;
// a second call panics.
func (p *Promise[T]) Future() *Future[T] {
	checkContext(p.link.ownerID)
	if p.link.futureTaken {
		panic("future: future already taken")
	}
	p.link.futureTaken = true
	return &Future[T]{link: p.link}
}

// Set settles the cell with v. If a continuation is registered it is posted
// to the owning context and runs on a later turn, never inside this call.
// Set panics if the cell is already settled. If the future side has been
// discarded the value is silently dropped.
func (p *Promise[T]) Set(v T) {
	p.link.set(v, false)
}

// SetWithSideEffects settles the cell with v and runs a registered
// continuation synchronously on the caller's stack. It is for call sites
// that are already at the bottom of an executor turn, such as combinator
// unwrapping; everything else should use Set.
func (p *Promise[T]) SetWithSideEffects(v T) {
	p.link.set(v, true)
}

// Discard releases the promise handle without settling. A continuation
// already registered on the future never runs; attaching one afterwards
// panics. Discard after a settle is a no-op.
func (p *Promise[T]) Discard() {
	p.link.discardPromise()
}

// Future is the consumer half of a single-assignment cell. The value is
// consumed exactly once, by AndThen or by Poll.
//
// A Future must not be copied.
type Future[T any] struct {
	link *link[T]
}

// AndThen registers fn as the cell's single continuation. fn runs on the
// owning context in a later turn, even when the value is already available.
// The call consumes the future: a second AndThen panics, as does AndThen
// after Poll has taken the value or after the promise side was discarded
// without settling.
func (f *Future[T]) AndThen(fn func(T)) {
	f.link.andThen(fn)
}

// Poll consumes and returns the settled value if one is available. It never
// panics on an empty cell; it simply reports false.
func (f *Future[T]) Poll() (T, bool) {
	return f.link.poll()
}

// Discard releases the future handle. A value already stored is dropped and
// a later settle on the promise side becomes a silent no-op. Discard after
// AndThen is a no-op; the registered continuation still runs. AndThen on a
// discarded handle panics, Poll on one reports false.
func (f *Future[T]) Discard() {
	f.link.discardFuture()
}
