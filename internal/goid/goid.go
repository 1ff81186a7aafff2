// Package goid exposes the runtime's goroutine identifier.
//
// The identifier is read from the goroutine's stack trace header and keys
// the execution-context registry.
package goid

import (
	"bytes"
	"runtime"
	"strconv"
)

var header = []byte("goroutine ")

// ID returns the numeric id of the calling goroutine.
func ID() int64 {
	var buf [40]byte
	n := runtime.Stack(buf[:], false)
	b := bytes.TrimPrefix(buf[:n], header)
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	id, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		panic("goid: unexpected goroutine stack header")
	}
	return id
}
