package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakePairInfersTypes(t *testing.T) {
	p := MakePair(12, "Mark")

	assert.Equal(t, 12, p.First)
	assert.Equal(t, "Mark", p.Second)
	assert.Equal(t, Pair[int, string]{12, "Mark"}, p)
}

func TestSwapReturnsNewPair(t *testing.T) {
	p := MakePair(1, "one")
	s := p.Swap()

	assert.Equal(t, Pair[string, int]{"one", 1}, s)
	assert.Equal(t, MakePair(1, "one"), p, "receiver must be unchanged")
}

func TestPairIsValueType(t *testing.T) {
	p := MakePair(12, "Mark")
	cp := p
	cp.Second = "Mara"

	assert.Equal(t, "Mark", p.Second, "mutating a copy must not touch the original")
}

func TestForEachVisitsInOrder(t *testing.T) {
	var seen []string
	forEach([]Pair[int, string]{{12, "Mark"}, {17, "Jack"}}, func(p Pair[int, string]) {
		seen = append(seen, p.Second)
	})

	assert.Equal(t, []string{"Mark", "Jack"}, seen)
}
