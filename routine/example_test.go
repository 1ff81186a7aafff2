package routine_test

import (
	"fmt"

	"github.com/zenparsing/chromium-futures/routine"
)

// ExampleRecover shows panic recovery with a cleanup.
func ExampleRecover() {
	func() {
		defer routine.Recover(func(r interface{}) {
			fmt.Println("cleaned up after:", r)
		})
		panic("boom")
	}()

	fmt.Println("still running")

	// Output:
	// cleaned up after: boom
	// still running
}

// ExampleNewRecovered shows capturing a panic as an error.
func ExampleNewRecovered() {
	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = routine.NewRecovered(0, r).AsError()
			}
		}()
		panic("bad input")
	}()

	fmt.Println(err)

	// Output:
	// panic: bad input
}
