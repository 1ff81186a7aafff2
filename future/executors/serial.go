package executors

import (
	"sync"

	"go.uber.org/atomic"

	"github.com/zenparsing/chromium-futures/routine"
)

// Serial runs submitted tasks in FIFO order on a dedicated goroutine.
// Submit never blocks. Close stops intake, runs the remaining queue and
// joins the goroutine.
type Serial struct {
	id      ID
	onPanic func(*routine.Recovered)

	mu sync.Mutex
	q  []func()

	closed atomic.Bool
	wake   chan struct{}
	done   chan struct{}
}

// NewSerial creates a serial context and starts its loop goroutine.
func NewSerial(opts ...Option) *Serial {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	s := &Serial{
		id:      NewID(),
		onPanic: o.onPanic,
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go s.loop()
	return s
}

func (s *Serial) ID() ID {
	return s.id
}

// Submit queues task for execution on the loop goroutine. Tasks submitted
// after Close are dropped.
func (s *Serial) Submit(task func()) {
	if task == nil {
		panic("executors: nil task")
	}
	if s.closed.Load() {
		return
	}
	s.mu.Lock()
	s.q = append(s.q, task)
	s.mu.Unlock()
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Close stops intake, waits for the queue to drain and for the loop
// goroutine to exit. It is idempotent and must not be called from a task
// running on s.
func (s *Serial) Close() {
	if s.closed.CompareAndSwap(false, true) {
		select {
		case s.wake <- struct{}{}:
		default:
		}
	}
	<-s.done
}

func (s *Serial) loop() {
	leave := Enter(s)
	defer close(s.done)
	defer leave()
	for {
		if task, ok := s.pop(); ok {
			runTask(task, s.onPanic)
			continue
		}
		if s.closed.Load() {
			// Drain anything that raced in between the empty pop and the
			// closed check, then exit.
			if task, ok := s.pop(); ok {
				runTask(task, s.onPanic)
				continue
			}
			return
		}
		<-s.wake
	}
}

func (s *Serial) pop() (func(), bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.q) == 0 {
		return nil, false
	}
	task := s.q[0]
	s.q[0] = nil
	s.q = s.q[1:]
	return task, true
}
