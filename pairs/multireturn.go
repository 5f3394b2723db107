package main

import (
	"fmt"
	"strconv"
)

// demoMultiReturn shows Go's built-in answer to pair-returning APIs.
//
// Where other languages bundle two results into a pair object, Go functions
// simply return two values. The caller names both, no aggregate type needed.
func demoMultiReturn() {
	q, r := divmod(17, 5)
	fmt.Printf("  divmod(17, 5) = quotient %d, remainder %d\n", q, r)

	// The second value is often an error — the most common pair in Go.
	n, err := strconv.Atoi("123")
	fmt.Printf("  Atoi(\"123\") = %d, err = %v\n", n, err)

	n, err = strconv.Atoi("12x")
	fmt.Printf("  Atoi(\"12x\") = %d, err = %v\n", n, err)
}

func divmod(a, b int) (int, int) {
	return a / b, a % b
}

// demoCommaOk shows the (value, ok) idiom: a boolean second value reporting
// whether the first one is meaningful. Maps, type assertions and channel
// receives all use it.
func demoCommaOk() {
	ages := map[string]int{"Mark": 12, "Jack": 17}

	// Map lookup: ok distinguishes "absent" from "present with zero value".
	age, ok := ages["Mark"]
	fmt.Printf("  ages[\"Mark\"] = %d, ok = %v\n", age, ok)

	age, ok = ages["Rose"]
	fmt.Printf("  ages[\"Rose\"] = %d, ok = %v\n", age, ok)

	// Type assertion: ok avoids the panic of a failed assertion.
	var v any = "hello"
	if s, ok := v.(string); ok {
		fmt.Printf("  v.(string) = %q\n", s)
	}
	if _, ok := v.(int); !ok {
		fmt.Println("  v.(int) failed — ok form returned false instead of panicking")
	}
}
