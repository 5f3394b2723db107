package main

import (
	"fmt"
	"time"
)

// demoStopwatch times a workload the standard way: capture time.Now before,
// time.Since after. Both lean on the monotonic clock, so the measurement
// holds even if the wall clock changes underneath.
func demoStopwatch() {
	start := time.Now()
	sum := busyWork(200_000)
	elapsed := time.Since(start)

	fmt.Printf("  busyWork result %d in %s\n", sum, elapsed.Round(time.Microsecond))

	// Laps: keep one start, read Since repeatedly.
	lapStart := time.Now()
	for lap := 1; lap <= 3; lap++ {
		time.Sleep(30 * time.Millisecond)
		fmt.Printf("  lap %d at %s\n", lap, time.Since(lapStart).Round(time.Millisecond))
	}
}

// busyWork burns CPU deterministically so the stopwatch has something to
// measure.
func busyWork(n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += i % 7
	}
	return sum
}
