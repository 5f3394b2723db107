package main

import "fmt"

// Capture semantics, one discipline per demo: what a closure sees when the
// variable it closed over changes, and who sees the closure's own writes.
//
// Run:
//
//	go run ./closures
func main() {
	section("No capture — inline functions without free variables")
	demoNoCapture()

	section("Value capture — frozen snapshot at construction")
	demoValueCapture()

	section("Value capture with a mutable private copy")
	demoCounterCapture()

	section("Reference capture — one shared variable")
	demoReferenceCapture()

	section("Implicit capture — Go's default, and the snapshot-all analog")
	demoImplicitCapture()

	section("Mixed capture — one live variable among frozen ones")
	demoMixedCapture()

	section("Loop-variable capture")
	demoLoopCapture()

	section("Background sampler — capture by copy across a goroutine")
	demoBackground()
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}
