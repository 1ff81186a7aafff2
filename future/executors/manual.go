package executors

import (
	"sync"

	"github.com/zenparsing/chromium-futures/routine"
)

// Manual is a sequenced context whose queue is drained explicitly by the
// goroutine that owns it. Nothing runs until the owner calls RunOne or
// RunUntilIdle, which makes turn boundaries observable; it is the drive
// mechanism for tests and other single-threaded embedders.
//
// Submit is safe from any goroutine. Draining is not: only the owning
// goroutine may call RunOne or RunUntilIdle. Code that creates futures
// outside of a task adopts the context first:
//
//	ctx := executors.NewManual()
//	defer executors.Enter(ctx)()
type Manual struct {
	id      ID
	onPanic func(*routine.Recovered)

	mu sync.Mutex
	q  []func()
}

// NewManual creates an idle manual context.
func NewManual(opts ...Option) *Manual {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Manual{id: NewID(), onPanic: o.onPanic}
}

func (m *Manual) ID() ID {
	return m.id
}

// Submit queues task. It never runs the task inline.
func (m *Manual) Submit(task func()) {
	if task == nil {
		panic("executors: nil task")
	}
	m.mu.Lock()
	m.q = append(m.q, task)
	m.mu.Unlock()
}

// RunOne runs the next queued task and reports whether one ran.
func (m *Manual) RunOne() bool {
	task, ok := m.pop()
	if !ok {
		return false
	}
	leave := Enter(m)
	defer leave()
	runTask(task, m.onPanic)
	return true
}

// RunUntilIdle runs queued tasks, including tasks queued by the tasks
// themselves, until the queue is empty. It returns the number of tasks
// that ran.
func (m *Manual) RunUntilIdle() int {
	leave := Enter(m)
	defer leave()
	n := 0
	for {
		task, ok := m.pop()
		if !ok {
			return n
		}
		runTask(task, m.onPanic)
		n++
	}
}

// Pending returns the number of queued tasks.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.q)
}

func (m *Manual) pop() (func(), bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.q) == 0 {
		return nil, false
	}
	task := m.q[0]
	m.q[0] = nil
	m.q = m.q[1:]
	return task, true
}
