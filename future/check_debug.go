//go:build seqcheck

package future

import "github.com/zenparsing/chromium-futures/future/executors"

// checkContext panics unless the calling goroutine is currently driven by
// the context that owns the cell.
func checkContext(owner executors.ID) {
	cur := executors.Current()
	if cur == nil || cur.ID() != owner {
		panic("future: used on the wrong execution context")
	}
}
