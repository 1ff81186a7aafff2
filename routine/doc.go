// Package routine provides panic capture with caller stack traces.
//
// A panic caught at an execution boundary is wrapped as a Recovered, which
// records the panic value together with the program counters of the frames
// that raised it. Recovered values convert to errors that satisfy the
// stack-trace contract of github.com/pkg/errors, so a panic captured on one
// executor turn can be reported, or re-raised, on a later turn without
// losing the originating frames.
package routine
