// Package capture builds closures with explicit capture disciplines over an
// external integer variable: frozen snapshots taken at construction time,
// private mutable copies, and live bindings that see and mutate the original.
//
// Go closures always capture variables by reference. Snapshot semantics are
// therefore opt-in: copy the value into a parameter or a local before the
// closure is built. Each constructor here pins down one discipline so the
// difference is observable and testable.
package capture

// Snapshot returns a closure frozen on v's value at the moment of the call.
// Later changes to the caller's variable are invisible: the parameter v is
// already a copy by the time the closure is built.
func Snapshot(v int) func() int {
	return func() int { return v }
}

// Counter returns a closure with a private mutable copy of v. Each call
// increments the copy and returns it; the caller's variable never changes.
func Counter(v int) func() int {
	return func() int {
		v++
		return v
	}
}

// Live returns a closure bound to v's storage. Every call reads the current
// value, so external writes between calls are visible inside.
func Live(v *int) func() int {
	return func() int { return *v }
}

// LiveInc returns a closure that increments through the live binding and
// returns the new value. The mutation is visible to the caller: both sides
// share one variable.
func LiveInc(v *int) func() int {
	return func() int {
		*v++
		return *v
	}
}

// Mixed returns a closure over one frozen and one live variable: frozen is
// copied here and never changes; live is read fresh and post-incremented on
// every call. The returned values are (frozen snapshot, live value before
// the increment).
func Mixed(frozen int, live *int) func() (int, int) {
	return func() (int, int) {
		cur := *live
		*live++
		return frozen, cur
	}
}
