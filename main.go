package main

import "fmt"

// Each topic directory is a self-contained program. The root command just
// prints the index so `go run .` tells you where to go next.
var topics = []struct {
	dir  string
	what string
}{
	{"pairs", "pairing heterogeneous values: Pair[K, V], multiple returns"},
	{"tuples", "fixed-size heterogeneous records and unpacking"},
	{"clocks", "wall clock vs monotonic clock, measuring elapsed time"},
	{"closures", "capture semantics: snapshot vs live binding, background sampler"},
}

func main() {
	fmt.Println("language feature tours — run each topic directly:")
	for _, t := range topics {
		fmt.Printf("  go run ./%-10s %s\n", t.dir, t.what)
	}
}
