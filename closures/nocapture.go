package main

import (
	"cmp"
	"fmt"
	"slices"
)

// demoNoCapture shows closures that close over nothing: anonymous functions
// used purely for their parameters, interchangeable with named functions.
// The classic spot is a sort comparator.
func demoNoCapture() {
	vals := []int{3, 2, 1, 5, 4, 6}
	vals2 := append([]int(nil), vals...)

	// Named comparator.
	fmt.Println("  named function:")
	fmt.Println("    before:", vals)
	slices.SortFunc(vals, ascending)
	fmt.Println("    after: ", vals)

	// Inline comparator — same behavior, defined at the point of use.
	fmt.Println("  anonymous function:")
	fmt.Println("    before:", vals2)
	slices.SortFunc(vals2, func(a, b int) int { return cmp.Compare(a, b) })
	fmt.Println("    after: ", vals2)

	// An anonymous function taking its input as a parameter captures
	// nothing; values arrive through the call, like any function.
	show := func(v int) { fmt.Printf("    got %d\n", v) }
	show(2222)
}

func ascending(a, b int) int { return cmp.Compare(a, b) }
