//go:build !seqcheck

package future

import "github.com/zenparsing/chromium-futures/future/executors"

// checkContext is a no-op unless the seqcheck build tag is set. Without it,
// cross-context use of a promise or future is unchecked.
func checkContext(executors.ID) {}
