package main

import "fmt"

// Each demo covers one way of pairing two heterogeneous values in Go.
//
// Run:
//
//	go run ./pairs
func main() {
	section("Pair[K, V] — construct, access, compare, swap")
	demoPair()

	section("Pairs in collections")
	demoPairList()

	section("Multiple return values — Go's native pair")
	demoMultiReturn()

	section("The (value, ok) idiom")
	demoCommaOk()
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}
