package main

import "fmt"

// Wall clock vs monotonic clock, and which one to measure time with.
//
// Go folds both into time.Time: a Time from time.Now carries a wall reading
// and a monotonic reading, and the package picks the right one per operation.
//
// Run:
//
//	go run ./clocks
func main() {
	section("Wall clock — time.Now, formatting, epoch")
	demoWallClock()

	section("Monotonic clock — the reading hidden inside time.Time")
	demoMonotonic()

	section("Why durations need the monotonic clock")
	demoWallVsMonotonic()

	section("Stopwatch — measuring a workload")
	demoStopwatch()
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}
