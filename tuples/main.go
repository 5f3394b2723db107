package main

import "fmt"

// Fixed-size heterogeneous records and how Go unpacks them.
//
// Go has no variadic tuple type; a small named struct is the idiomatic
// stand-in, and parallel assignment covers unpacking.
//
// Run:
//
//	go run ./tuples
func main() {
	section("Records — a named struct as a 3-tuple")
	demoTuple()

	section("Ordering — lexicographic comparison")
	demoTupleCompare()

	section("Unpacking — parallel assignment and the blank identifier")
	demoUnpack()

	section("Swap without a temporary")
	demoSwap()
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}
