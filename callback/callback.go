// Package callback provides a single-ownership, single-invocation closure
// carrier. It is the currency for resolver-style APIs: whoever holds the
// callback may run it at most once, and a second run is a programmer error.
package callback

import "go.uber.org/atomic"

// Once wraps a function that may run at most one time. Copies of a Once
// share the invocation gate, so handing a copy away does not mint a second
// shot. The zero Once is empty; running it panics.
type Once[T any] struct {
	cell *cell[T]
}

type cell[T any] struct {
	used atomic.Bool
	fn   func(T)
}

// New wraps fn. fn must not be nil.
func New[T any](fn func(T)) Once[T] {
	if fn == nil {
		panic("callback: nil function")
	}
	return Once[T]{cell: &cell[T]{fn: fn}}
}

// Run invokes the wrapped function with v. It panics if the callback is
// empty or has already been run or discarded.
func (o Once[T]) Run(v T) {
	if !o.TryRun(v) {
		panic("callback: already used")
	}
}

// TryRun invokes the wrapped function with v if the callback is still
// unused and reports whether it ran.
func (o Once[T]) TryRun(v T) bool {
	if o.cell == nil {
		panic("callback: empty")
	}
	if !o.cell.used.CompareAndSwap(false, true) {
		return false
	}
	fn := o.cell.fn
	o.cell.fn = nil
	fn(v)
	return true
}

// Discard marks the callback used without invoking it and reports whether
// this call won the gate. Discarding an empty callback reports false.
func (o Once[T]) Discard() bool {
	if o.cell == nil {
		return false
	}
	if !o.cell.used.CompareAndSwap(false, true) {
		return false
	}
	o.cell.fn = nil
	return true
}

// Used reports whether the callback has been run or discarded. An empty
// callback reports true.
func (o Once[T]) Used() bool {
	return o.cell == nil || o.cell.used.Load()
}
