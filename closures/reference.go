package main

import (
	"fmt"

	"github.com/rmonte/go-features/closures/capture"
)

// demoReferenceCapture shows a live binding: closure and caller share one
// variable. Writes flow both ways — an external reassignment is visible on
// the next call, and the closure's increment lands in the outer variable.
//
// This is what a plain Go closure does by default; the capture.Live and
// capture.LiveInc constructors only make the pointer explicit at the API
// boundary.
func demoReferenceCapture() {
	v := 123

	inc := capture.LiveInc(&v)
	fmt.Printf("  inc() = %d (incremented through the binding)\n", inc())
	fmt.Printf("  outer v = %d (the write is shared)\n", v)

	// External mutation before the next call is visible inside.
	v = 200
	fmt.Printf("  after v=200, inc() = %d\n", inc())

	// The default form: a closure over a local variable is already live.
	count := 0
	bump := func() { count++ }
	bump()
	bump()
	fmt.Printf("  plain closure bumped count to %d\n", count)

	read := capture.Live(&count)
	count = 42
	fmt.Printf("  read() = %d (tracks every external write)\n", read())
}
