package routine

import (
	"fmt"
	"runtime"

	"github.com/pkg/errors"
)

// Recover recovers an in-flight panic and passes its value to each cleanup
// in order. It must be called directly from a deferred function. When no
// panic is in flight it does nothing.
func Recover(cleanups ...func(r interface{})) {
	if r := recover(); r != nil {
		for _, cleanup := range cleanups {
			cleanup(r)
		}
	}
}

// Recovered is a captured panic: the value passed to panic plus the program
// counters of the frames that raised it.
type Recovered struct {
	Value   interface{}
	Callers []uintptr
}

// NewRecovered captures the call stack around a recovered panic value.
// skip counts frames to omit, with 0 identifying the caller of NewRecovered.
func NewRecovered(skip int, value interface{}) *Recovered {
	var callers [32]uintptr
	n := runtime.Callers(skip+2, callers[:])
	return &Recovered{
		Value:   value,
		Callers: callers[:n],
	}
}

// AsError converts the captured panic to an error. A nil receiver yields a
// nil error.
func (p *Recovered) AsError() error {
	if p == nil {
		return nil
	}
	return &RecoveredError{p}
}

// RecoveredError is a Recovered in error clothing.
type RecoveredError struct {
	*Recovered
}

func (e *RecoveredError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// StackTrace returns the captured frames in the representation used by
// github.com/pkg/errors.
func (e *RecoveredError) StackTrace() errors.StackTrace {
	if e == nil {
		return nil
	}
	frames := make([]errors.Frame, len(e.Callers))
	for i, pc := range e.Callers {
		frames[i] = errors.Frame(pc)
	}
	return frames
}

// Format renders the error with %+v appending the captured stack trace.
func (e *RecoveredError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		fmt.Fprint(s, e.Error())
		if s.Flag('+') {
			e.StackTrace().Format(s, verb)
		}
	case 's':
		fmt.Fprint(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}
