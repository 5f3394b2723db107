package main

import "fmt"

// ── Pair[K, V] ────────────────────────────────────────────────────────────────
// Two values of independent types aggregated into one. Go has no pair in the
// standard library because multiple return values and small structs cover the
// same ground; when an explicit pair type helps (map entries, coordinates),
// a two-line generic struct is all it takes.

type Pair[K, V any] struct {
	First  K
	Second V
}

// MakePair infers both type parameters from its arguments, so call sites
// read like a literal: MakePair(12, "Mark").
func MakePair[K, V any](first K, second V) Pair[K, V] {
	return Pair[K, V]{First: first, Second: second}
}

// Swap returns the pair with its halves exchanged. Pairs are plain values,
// so the receiver is untouched.
func (p Pair[K, V]) Swap() Pair[V, K] {
	return Pair[V, K]{First: p.Second, Second: p.First}
}

// demoPair shows construction, field access, equality and swapping.
//
// A Pair is an ordinary struct value: assignment copies it, == compares it
// field by field (when both type parameters are comparable), and there is no
// hidden sharing between copies.
func demoPair() {
	// Three equivalent constructions.
	p1 := Pair[int, string]{First: 12, Second: "Mark"}
	p2 := MakePair(17, "Jack") // types inferred: Pair[int, string]
	var p3 Pair[int, string]   // zero value: {0, ""}
	p3.First, p3.Second = 11, "Jim"

	fmt.Printf("  p1 = %v\n", p1)
	fmt.Printf("  p2 = {%d %s}\n", p2.First, p2.Second)
	fmt.Printf("  p3 = %v\n", p3)

	// Equality is structural.
	fmt.Println("  p1 == {12 Mark}:", p1 == MakePair(12, "Mark"))
	fmt.Println("  p1 == p2:       ", p1 == p2)

	// Swap produces a new pair; the original keeps its order.
	swapped := p1.Swap()
	fmt.Printf("  p1.Swap() = %v, p1 still %v\n", swapped, p1)

	// Assignment copies — mutating the copy leaves the original alone.
	cp := p1
	cp.Second = "Mara"
	fmt.Printf("  copy mutated to %v, original still %v\n", cp, p1)
}

// demoPairList shows pairs as collection elements: a roster of age/name
// records walked with a closure, the usual job for a key/value aggregate.
func demoPairList() {
	roster := []Pair[int, string]{
		{12, "Mark"},
		MakePair(17, "Jack"),
		MakePair(11, "Jim"),
	}
	roster = append(roster, MakePair(14, "Rose"))

	forEach(roster, func(p Pair[int, string]) {
		fmt.Printf("  name: %-5s age: %d\n", p.Second, p.First)
	})
}

// forEach applies fn to every element. Defined here only to mirror how pairs
// travel through generic algorithms; range loops are the everyday spelling.
func forEach[T any](items []T, fn func(T)) {
	for _, v := range items {
		fn(v)
	}
}
