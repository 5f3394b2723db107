package main

import "fmt"

// ── Unpacking ─────────────────────────────────────────────────────────────────
// Parallel assignment is Go's tie: every variable on the left receives the
// matching value on the right, all at once. There is no partial state in
// between — the right side is fully evaluated first.

// trip returns three values; callers destructure them directly.
func trip() (int, string, string) {
	return 24, "June", "America"
}

// demoUnpack shows destructuring a multi-value result, including skipping
// positions with the blank identifier.
func demoUnpack() {
	// All three at once.
	day, month, country := trip()
	fmt.Printf("  day=%d month=%s country=%s\n", day, month, country)

	// _ discards a position you don't need — nothing is bound, so the
	// compiler never complains about an unused variable.
	day, _, country = trip()
	fmt.Printf("  day=%d country=%s (month skipped)\n", day, country)

	// Anonymous structs make one-off tuples for literal tables.
	rows := []struct {
		Day     int
		Month   string
		Country string
	}{
		{12, "Feb", "China"},
		{24, "Jun", "America"},
		{31, "Mar", "France"},
	}
	for _, r := range rows {
		d, m := r.Day, r.Month // fields unpack by plain access
		fmt.Printf("  %2d %-4s %s\n", d, m, r.Country)
	}
}

// demoSwap shows exchange via parallel assignment. Both right-hand values
// are read before either left-hand variable is written, so no temporary is
// needed — for two variables or for ten.
func demoSwap() {
	x, y := 1, 2
	fmt.Printf("  before: x=%d y=%d\n", x, y)

	x, y = y, x
	fmt.Printf("  after:  x=%d y=%d\n", x, y)

	// Rotation works the same way.
	a, b, c := "red", "green", "blue"
	a, b, c = c, a, b
	fmt.Printf("  rotated: a=%s b=%s c=%s\n", a, b, c)
}
