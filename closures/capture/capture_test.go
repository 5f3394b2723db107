package capture_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rmonte/go-features/closures/capture"
)

// ── Snapshot ─────────────────────────────────────────────────────────────────

// TestSnapshotFrozenAtConstruction verifies that a snapshot closure keeps the
// value from capture time, immune to later writes to the source variable.
func TestSnapshotFrozenAtConstruction(t *testing.T) {
	t.Parallel()

	v := 123
	get := capture.Snapshot(v)

	v = 234
	assert.Equal(t, 123, get(), "snapshot must ignore external mutation")
	assert.Equal(t, 234, v)

	// Repeat invocations keep returning the same snapshot.
	v = 777
	assert.Equal(t, 123, get())
	assert.Equal(t, 123, get())
}

// ── Counter (mutable private copy) ───────────────────────────────────────────

// TestCounterMutatesOnlyItsCopy verifies that internal increments accumulate
// in the closure's private copy and never reach the outer variable.
func TestCounterMutatesOnlyItsCopy(t *testing.T) {
	t.Parallel()

	v := 123
	next := capture.Counter(v)

	assert.Equal(t, 124, next())
	assert.Equal(t, 125, next())
	assert.Equal(t, 123, v, "outer variable must be untouched")

	// External mutation after construction is equally invisible.
	v = 500
	assert.Equal(t, 126, next())
}

// ── Live / LiveInc (reference capture) ───────────────────────────────────────

// TestLiveSeesExternalWrites verifies that a live closure reads the current
// value of the shared variable on every call.
func TestLiveSeesExternalWrites(t *testing.T) {
	t.Parallel()

	v := 123
	read := capture.Live(&v)

	assert.Equal(t, 123, read())

	v = 234
	assert.Equal(t, 234, read(), "live binding must track external writes")
}

// TestLiveIncMutatesExternal verifies that writes through the live binding
// are visible on both sides.
func TestLiveIncMutatesExternal(t *testing.T) {
	t.Parallel()

	v := 123
	inc := capture.LiveInc(&v)

	assert.Equal(t, 124, inc())
	assert.Equal(t, 124, v, "increment must land in the outer variable")

	// External bump before the next call is visible inside.
	v = 200
	assert.Equal(t, 201, inc())
	assert.Equal(t, 201, v)
}

// ── Mixed ────────────────────────────────────────────────────────────────────

// TestMixedCapture verifies the split discipline: the frozen side ignores all
// later mutation while the live side tracks and applies it.
func TestMixedCapture(t *testing.T) {
	t.Parallel()

	frozen, live := 123, 456
	both := capture.Mixed(frozen, &live)

	f, l := both()
	assert.Equal(t, 123, f)
	assert.Equal(t, 456, l)
	assert.Equal(t, 457, live, "live side must be incremented")
	assert.Equal(t, 123, frozen)

	// Reassign both externally: only the live side follows.
	frozen, live = 777, 500
	f, l = both()
	assert.Equal(t, 123, f, "frozen side must keep the construction-time value")
	assert.Equal(t, 500, l)
	assert.Equal(t, 501, live)
	assert.Equal(t, 777, frozen)
}

// ── Independence of separate closures ────────────────────────────────────────

// TestClosuresAreIndependent verifies that two closures built from the same
// variable do not share a private copy.
func TestClosuresAreIndependent(t *testing.T) {
	t.Parallel()

	v := 10
	a := capture.Counter(v)
	b := capture.Counter(v)

	assert.Equal(t, 11, a())
	assert.Equal(t, 11, b(), "each closure must own its copy")
	assert.Equal(t, 12, a())
	assert.Equal(t, 10, v)
}
