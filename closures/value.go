package main

import (
	"fmt"

	"github.com/rmonte/go-features/closures/capture"
)

// demoValueCapture shows snapshot semantics: the closure holds a copy taken
// at construction, so reassigning the outer variable afterwards changes
// nothing inside.
//
// Go closures capture by reference, so the snapshot is made explicit — the
// value crosses into the closure through a parameter (capture.Snapshot) or
// a shadowing copy.
func demoValueCapture() {
	v := 123

	get := capture.Snapshot(v) // v copied here, at construction
	fmt.Printf("  captured while v=%d → get() = %d\n", v, get())

	v = 234
	fmt.Printf("  after v=%d        → get() = %d (frozen snapshot)\n", v, get())

	// The same discipline inline: shadow the variable before closing over it.
	w := 123
	w2 := w // explicit copy; the closure sees w2, never w
	getW := func() int { return w2 }
	w = 999
	fmt.Printf("  shadow copy: w=%d, closure still sees %d\n", w, getW())
}

// demoCounterCapture shows a value capture the closure itself may mutate:
// a private copy, like a mutable value capture. Internal increments
// accumulate across calls but never reach the outer variable.
func demoCounterCapture() {
	v := 123

	next := capture.Counter(v) // private copy starts at 123
	fmt.Printf("  next() = %d (incremented its own copy)\n", next())
	fmt.Printf("  next() = %d (the copy persists between calls)\n", next())
	fmt.Printf("  outer v = %d (untouched)\n", v)
}
