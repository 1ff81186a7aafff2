package future

import (
	"github.com/zenparsing/chromium-futures/future/executors"
)

// link is the cell shared by a promise/future pair. Every operation on
// either handle runs on the owning context, so the fields need no lock;
// checked builds enforce the affinity, see check_debug.go.
type link[T any] struct {
	owner   executors.Sequenced
	ownerID executors.ID

	val    T
	hasVal bool

	// cb is the registered continuation. Once it is set the future handle
	// has been relinquished; delivery happens on the settle call.
	cb func(T)

	settled   bool // a settle call was accepted
	attached  bool // a continuation was registered
	delivered bool // the value left the cell, by continuation or by poll

	promiseLive bool
	futureLive  bool
	futureTaken bool
}

func newLink[T any]() *link[T] {
	owner := executors.Current()
	if owner == nil {
		panic("future: no current execution context")
	}
	return &link[T]{
		owner:       owner,
		ownerID:     owner.ID(),
		promiseLive: true,
		futureLive:  true,
	}
}

func (l *link[T]) set(v T, sideEffects bool) {
	checkContext(l.ownerID)
	if l.settled {
		panic("future: promise already settled")
	}
	if !l.promiseLive {
		panic("future: promise used after discard")
	}
	l.settled = true
	l.promiseLive = false
	switch {
	case l.cb != nil:
		cb := l.cb
		l.cb = nil
		l.delivered = true
		if sideEffects {
			cb(v)
		} else {
			l.owner.Submit(func() { cb(v) })
		}
	case l.futureLive:
		l.val = v
		l.hasVal = true
	default:
		// The future side is gone; the value is dropped.
	}
}

func (l *link[T]) andThen(fn func(T)) {
	checkContext(l.ownerID)
	if fn == nil {
		panic("future: nil continuation")
	}
	if l.attached || l.delivered {
		panic("future: continuation already attached or value consumed")
	}
	if !l.futureLive {
		panic("future: future used after discard")
	}
	if l.hasVal {
		v := l.take()
		l.attached = true
		l.delivered = true
		l.futureLive = false
		l.owner.Submit(func() { fn(v) })
		return
	}
	if !l.promiseLive {
		panic("future: promise side discarded without settling")
	}
	l.attached = true
	l.futureLive = false
	l.cb = fn
}

func (l *link[T]) poll() (T, bool) {
	checkContext(l.ownerID)
	if !l.hasVal {
		var zero T
		return zero, false
	}
	v := l.take()
	l.delivered = true
	l.futureLive = false
	return v, true
}

func (l *link[T]) take() T {
	v := l.val
	var zero T
	l.val = zero
	l.hasVal = false
	return v
}

func (l *link[T]) discardFuture() {
	checkContext(l.ownerID)
	if !l.futureLive {
		return
	}
	l.futureLive = false
	if l.hasVal {
		l.take()
	}
}

func (l *link[T]) discardPromise() {
	checkContext(l.ownerID)
	if !l.promiseLive {
		return
	}
	l.promiseLive = false
	// A continuation registered before the promise was dropped never runs.
	l.cb = nil
}
