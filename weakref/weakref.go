// Package weakref provides explicitly invalidated weak references.
//
// A Factory issues references to a single referent; invalidating the
// factory kills every reference it ever issued, at a moment the owner
// chooses. Liveness is a deliberate, observable event, not a garbage
// collection artifact, which makes references suitable as capabilities:
// work that depends on an object checks the reference at the moment it
// would touch the object, never earlier.
package weakref

import "go.uber.org/atomic"

// Capability reports whether the object a computation depends on is still
// alive. Implementations must be safe for concurrent use.
type Capability interface {
	Alive() bool
}

// Factory issues weak references to one referent. The referent's owner
// keeps the factory and calls Invalidate when the referent is torn down,
// typically in a defer. The zero Factory is unusable; use NewFactory.
type Factory[T any] struct {
	referent *T
	alive    *atomic.Bool
}

// NewFactory creates a factory for referent.
func NewFactory[T any](referent *T) *Factory[T] {
	if referent == nil {
		panic("weakref: nil referent")
	}
	return &Factory[T]{referent: referent, alive: atomic.NewBool(true)}
}

// Ref returns a new weak reference to the referent.
func (f *Factory[T]) Ref() Ref[T] {
	return Ref[T]{referent: f.referent, alive: f.alive}
}

// Invalidate kills every reference issued so far and any issued later.
// It is idempotent.
func (f *Factory[T]) Invalidate() {
	f.alive.Store(false)
}

// Alive reports whether Invalidate has been called. A Factory is itself a
// Capability.
func (f *Factory[T]) Alive() bool {
	return f.alive.Load()
}

// Ref is a copyable weak reference. The zero Ref is dead.
type Ref[T any] struct {
	referent *T
	alive    *atomic.Bool
}

// Alive implements Capability.
func (r Ref[T]) Alive() bool {
	return r.alive != nil && r.alive.Load()
}

// Get returns the referent while it is alive.
func (r Ref[T]) Get() (*T, bool) {
	if !r.Alive() {
		return nil, false
	}
	return r.referent, true
}
