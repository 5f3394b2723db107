package main

import "fmt"

// demoLoopCapture revisits the classic trap: closures created in a loop all
// capture the loop variable. Before Go 1.22 there was one variable per loop,
// so every closure shared it and saw its final value; since 1.22 each
// iteration gets a fresh variable and the closures disagree — in a good way.
func demoLoopCapture() {
	// One closure per iteration, invoked only after the loop ends.
	var fns []func() int
	for i := 0; i < 3; i++ {
		fns = append(fns, func() int { return i })
	}
	fmt.Print("  per-iteration variables (Go ≥ 1.22):")
	for _, fn := range fns {
		fmt.Printf(" %d", fn())
	}
	fmt.Println()

	// Recreating the old shared-variable behavior: hoist the variable out of
	// the loop and every closure is live on the same storage.
	var shared []func() int
	j := 0
	for ; j < 3; j++ {
		shared = append(shared, func() int { return j })
	}
	fmt.Print("  one hoisted variable:                ")
	for _, fn := range shared {
		fmt.Printf(" %d", fn())
	}
	fmt.Println("  ← all see the final value")

	// The portable snapshot fix works under either semantics: pass the value
	// through a parameter at creation time.
	var snap []func() int
	k := 0
	for ; k < 3; k++ {
		mk := func(n int) func() int { return func() int { return n } }
		snap = append(snap, mk(k))
	}
	fmt.Print("  snapshot via parameter:              ")
	for _, fn := range snap {
		fmt.Printf(" %d", fn())
	}
	fmt.Println()
}
