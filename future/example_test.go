package future

import (
	"fmt"

	"github.com/zenparsing/chromium-futures/callback"
	"github.com/zenparsing/chromium-futures/future/executors"
)

// ExampleNewPromise demonstrates settling a promise and consuming the value
// on the next turn.
func ExampleNewPromise() {
	ctx := executors.NewManual()
	defer executors.Enter(ctx)()

	p := NewPromise[string]()
	f := p.Future()
	f.AndThen(func(v string) { fmt.Println("got:", v) })

	p.Set("promise result")
	fmt.Println("set, nothing delivered yet")
	ctx.RunUntilIdle()

	// Output:
	// set, nothing delivered yet
	// got: promise result
}

// ExamplePromise_Set_panic demonstrates that Set panics when called twice.
func ExamplePromise_Set_panic() {
	ctx := executors.NewManual()
	defer executors.Enter(ctx)()

	defer func() {
		if r := recover(); r != nil {
			fmt.Println("panic caught")
		}
	}()

	p := NewPromise[int]()
	p.Set(1)
	p.Set(2) // This will panic.

	// Output: panic caught
}

// ExampleFuture_Poll demonstrates the consuming poll.
func ExampleFuture_Poll() {
	ctx := executors.NewManual()
	defer executors.Enter(ctx)()

	p := NewPromise[int]()
	f := p.Future()

	_, ok := f.Poll()
	fmt.Println("before set:", ok)

	p.Set(10)
	v, ok := f.Poll()
	fmt.Println("after set:", ok, v)

	// Output:
	// before set: false
	// after set: true 10
}

// ExampleTransform demonstrates mapping a future value.
func ExampleTransform() {
	ctx := executors.NewManual()
	defer executors.Enter(ctx)()

	half := Transform(Ready(10), func(v int) float64 { return float64(v) / 2 })
	half.AndThen(func(v float64) { fmt.Println(v) })

	ctx.RunUntilIdle()

	// Output: 5
}

// ExampleThen demonstrates chaining a dependent asynchronous operation.
func ExampleThen() {
	ctx := executors.NewManual()
	defer executors.Enter(ctx)()

	lookup := func(id int) *Future[string] {
		return Ready(fmt.Sprintf("user-%d", id))
	}

	f := Then(Ready(7), lookup)
	f.AndThen(func(v string) { fmt.Println(v) })

	ctx.RunUntilIdle()

	// Output: user-7
}

// ExampleNew demonstrates bridging a callback-style producer.
func ExampleNew() {
	ctx := executors.NewManual()
	defer executors.Enter(ctx)()

	f := New(func(resolve callback.Once[int]) {
		ctx.Submit(func() { resolve.Run(42) })
	})
	f.AndThen(func(v int) { fmt.Println("resolved:", v) })

	ctx.RunUntilIdle()

	// Output: resolved: 42
}

// ExampleNewShared demonstrates fanning a result out to several listeners.
func ExampleNewShared() {
	ctx := executors.NewManual()
	defer executors.Enter(ctx)()

	sf := NewShared(Ready("hello"))
	sf.AndThen(func(v string) { fmt.Println("first:", v) })
	sf.AndThen(func(v string) { fmt.Println("second:", v) })

	ctx.RunUntilIdle()

	// Output:
	// first: hello
	// second: hello
}

// ExampleSharedPromise_Set demonstrates that the first write wins.
func ExampleSharedPromise_Set() {
	ctx := executors.NewManual()
	defer executors.Enter(ctx)()

	p := NewPromise[int]()
	f := p.Future()
	f.AndThen(func(v int) { fmt.Println("winner:", v) })

	sp := NewSharedPromise(p)
	sp.Set(42)
	sp.Set(24) // No effect; the first write wins.

	ctx.RunUntilIdle()

	// Output: winner: 42
}
