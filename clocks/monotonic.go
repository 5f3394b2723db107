package main

import (
	"fmt"
	"time"
)

// demoMonotonic shows the monotonic reading that time.Now embeds in every
// Time. The monotonic clock only moves forward — a coach's stopwatch — which
// makes it the safe source for measuring elapsed time.
//
// Printing a Time with %v reveals the extra reading as "m=+12.345…".
// Round(0) strips it, leaving a wall-only Time.
func demoMonotonic() {
	t := time.Now()

	fmt.Printf("  with monotonic:    %v\n", t)
	fmt.Printf("  wall only (Round): %v\n", t.Round(0))

	// Sub between two Times that both carry monotonic readings uses the
	// monotonic clock, so the result is immune to wall-clock jumps.
	t2 := time.Now()
	fmt.Printf("  t2.Sub(t) = %s (monotonic difference)\n", t2.Sub(t))

	// Once stripped, Sub falls back to wall arithmetic.
	fmt.Printf("  wall-only diff = %s (could be wrong if the clock stepped)\n",
		t2.Round(0).Sub(t.Round(0)))
}

// demoWallVsMonotonic spells out the failure mode: computing a duration from
// two wall readings breaks the moment the system clock is adjusted between
// them. time.Since avoids it because the start Time keeps its monotonic
// reading.
func demoWallVsMonotonic() {
	start := time.Now() // carries both readings

	time.Sleep(50 * time.Millisecond)

	// Correct: Since uses the monotonic readings of start and now.
	fmt.Printf("  time.Since(start)      = %s\n", time.Since(start).Round(time.Millisecond))

	// Fragile: differencing Unix timestamps is pure wall arithmetic. Fine
	// here, wrong whenever NTP steps the clock mid-measurement.
	wall := time.Now().UnixNano() - start.UnixNano()
	fmt.Printf("  wall Unix difference   = %s\n", time.Duration(wall).Round(time.Millisecond))

	fmt.Println("  rule: timestamps from the wall clock, durations from the monotonic clock")
}
