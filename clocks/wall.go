package main

import (
	"fmt"
	"time"
)

// demoWallClock reads the system (wall) clock: the time a human would agree
// with. It can jump — NTP adjustments, manual changes, leap corrections — so
// it answers "what time is it?", never "how long did this take?".
func demoWallClock() {
	now := time.Now()

	fmt.Printf("  now:        %s\n", now.Format("2006-01-02 15:04:05.000 MST"))
	fmt.Printf("  unix epoch: %d s / %d ns\n", now.Unix(), now.UnixNano())
	fmt.Printf("  utc:        %s\n", now.UTC().Format(time.RFC3339))

	// Calendar arithmetic belongs to the wall clock.
	fmt.Printf("  tomorrow:   %s\n", now.AddDate(0, 0, 1).Format("2006-01-02"))
	fmt.Printf("  truncated:  %s (to the hour)\n", now.Truncate(time.Hour).Format("15:04:05"))
}
