// Package future provides single-assignment value cells for sequenced
// execution contexts.
//
// A Promise and a Future are created as a linked pair. The promise side
// settles the cell exactly once; the future side consumes the value exactly
// once, either by attaching a continuation with AndThen or by polling. The
// pair belongs to the execution context (an executors.Sequenced) that was
// current when it was created, and both handles must only be used on that
// context. Continuations never run inside the call that settles or attaches:
// they are posted to the owning context and run on a later turn, so the
// code before and after a settlement observes a consistent world.
//
// Misusing the protocol is a programmer error and panics: settling twice,
// attaching twice, attaching after the value was consumed, settling or
// attaching through a handle that was itself discarded, or attaching when
// the promise side was discarded without settling. The one tolerated
// irregularity is settling after the future side has been discarded, which
// quietly drops the value so producers do not need to know whether anyone
// still cares.
//
// SharedFuture and SharedPromise relax single ownership: both are copyable,
// may be touched from any goroutine, and funnel all real work onto the
// owning context. They exist for fan-out and for producers that complete on
// foreign goroutines; prefer the plain types everywhere else.
package future
