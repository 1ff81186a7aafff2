package suspend

import (
	"go.uber.org/atomic"

	"github.com/zenparsing/chromium-futures/future/executors"
	"github.com/zenparsing/chromium-futures/internal/goid"
	"github.com/zenparsing/chromium-futures/routine"
	"github.com/zenparsing/chromium-futures/weakref"
)

// Frame states. All transitions happen on the owning context.
const (
	stateRunning int32 = iota
	stateAwaiting
	stateResuming
	stateCompleted
	stateCancelled
)

// frameAborted unwinds the body goroutine during teardown. Body code must
// let it pass: recovering it leaves the frame cancelled and the result
// future unsettled.
type frameAborted struct{}

// core is the non-generic part of a frame: the state machine and the
// two-party handoff between the driving turn and the body goroutine. At any
// instant at most one of the two runs; the other is parked on a channel, so
// the single-threaded discipline of the owning context extends into the
// body.
type core struct {
	st    atomic.Int32
	owner executors.Sequenced
	caps  []weakref.Capability
	gid   int64

	// yield passes the turn from the body to the driving side; turn passes
	// it back, carrying the value-delivery thunk. Closing turn aborts the
	// body.
	yield chan struct{}
	turn  chan func()
	done  chan struct{}
}

func newCore(owner executors.Sequenced, caps []weakref.Capability) *core {
	return &core{
		owner: owner,
		caps:  caps,
		yield: make(chan struct{}),
		turn:  make(chan func()),
		done:  make(chan struct{}),
	}
}

// host runs the frame body on its own goroutine. run executes the body and
// settles the result promise on normal return; discard releases the
// promise without settling.
func (c *core) host(run func(), discard func()) {
	defer close(c.done)
	leave := executors.Enter(c.owner)
	defer leave()
	c.gid = goid.ID()

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		discard()
		if _, ok := r.(frameAborted); ok {
			return
		}
		rec := routine.NewRecovered(2, r)
		cancelled := c.st.Load() == stateCancelled
		if !cancelled {
			c.st.Store(stateCompleted)
		}
		c.owner.Submit(func() { panic(rec.AsError()) })
		if !cancelled {
			// The driving side is parked on yield; hand the turn back so
			// it can finish. On the cancelled path it waits on done
			// instead.
			c.yield <- struct{}{}
		}
	}()

	run()
	if c.st.Load() == stateCancelled {
		// The body swallowed a teardown unwind and returned normally. The
		// resumption side owns the handoff already; just drop the promise.
		discard()
		return
	}
	c.yield <- struct{}{}
}

// park hands the turn back to the driving side and blocks the body until a
// resume thunk arrives. A closed turn channel aborts the body.
func (c *core) park() {
	c.yield <- struct{}{}
	thunk, ok := <-c.turn
	if !ok {
		panic(frameAborted{})
	}
	thunk()
}

// resume drives the body for one more segment. It runs as a continuation
// turn on the owning context. Capabilities are checked here, at the moment
// of resumption, never at capture.
func (c *core) resume(deliver func()) {
	if !c.st.CompareAndSwap(stateAwaiting, stateResuming) {
		return
	}
	for _, w := range c.caps {
		if !w.Alive() {
			c.st.Store(stateCancelled)
			close(c.turn)
			<-c.done
			return
		}
	}
	c.st.Store(stateRunning)
	c.turn <- deliver
	<-c.yield
}

func await[U any](c *core, attach func(func(U))) U {
	if goid.ID() != c.gid {
		panic("suspend: await outside the frame body")
	}
	if c.st.Load() != stateRunning {
		panic("suspend: await on a frame that is not running")
	}
	var got U
	c.st.Store(stateAwaiting)
	attach(func(v U) {
		c.resume(func() { got = v })
	})
	c.park()
	return got
}
