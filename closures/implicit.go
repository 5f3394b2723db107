package main

import (
	"fmt"

	"github.com/rmonte/go-features/closures/capture"
)

// demoImplicitCapture contrasts the two blanket disciplines.
//
// Capture-everything-by-reference is Go's implicit default: any variable a
// closure mentions is shared, no declaration needed. The opposite blanket —
// snapshot everything — has no shorthand; each variable must be copied
// before the closure is built.
func demoImplicitCapture() {
	// Implicit reference capture: both variables shared, both writes land.
	a, b := 123, 456
	bumpBoth := func() (int, int) {
		a++
		b++
		return a - 1, b - 1 // values as seen on entry
	}
	ra, rb := bumpBoth()
	fmt.Printf("  closure saw a=%d b=%d\n", ra, rb)
	fmt.Printf("  outer now a=%d b=%d (both captured live)\n", a, b)

	// Snapshot-all: copy each variable explicitly, then close over the copies.
	x, y := 123, 456
	cx, cy := x, y
	showBoth := func() { fmt.Printf("  snapshot sees x=%d y=%d\n", cx, cy) }
	x, y = 999, 888
	showBoth()
	fmt.Printf("  outer moved on to x=%d y=%d\n", x, y)
}

// demoMixedCapture singles one variable out for live capture while the rest
// stay frozen: a snapshot of val1 next to a shared binding of val2.
func demoMixedCapture() {
	val1, val2 := 123, 456

	both := capture.Mixed(val1, &val2) // val1 copied, val2 live

	f, l := both() // also increments val2
	fmt.Printf("  closure saw frozen=%d live=%d\n", f, l)
	fmt.Printf("  outer: val1=%d val2=%d (only the live side advanced)\n", val1, val2)

	// External churn: the frozen side ignores it, the live side tracks it.
	val1, val2 = 777, 500
	f, l = both()
	fmt.Printf("  after reassigning both: frozen=%d live=%d\n", f, l)
	fmt.Printf("  outer: val1=%d val2=%d\n", val1, val2)
}
