package main

import "fmt"

// ── person — a 3-tuple with names ─────────────────────────────────────────────
// Where a tuple language writes (int, string, int), Go writes a struct.
// The fields get names, which is the point: person.Height reads better than
// get<2>(user), and the compiler checks every access.

type person struct {
	Age    int
	Name   string
	Height int
}

// demoTuple builds a list of three-field records and walks it with a closure.
// Construction mirrors the usual tuple forms: positional literal, named
// literal, and a make-style helper (just a function).
func demoTuple() {
	u1 := person{26, "Richard", 178}                 // positional
	u2 := person{Age: 29, Name: "Jack", Height: 180} // named fields
	u3 := makePerson(25, "Smith", 191)               // constructor helper

	users := []person{u1, u2, u3}

	forEach(users, func(p person) {
		fmt.Printf("  age: %d  name: %-7s  height: %d\n", p.Age, p.Name, p.Height)
	})

	// Structs are values: assignment copies all three fields at once.
	cp := u1
	cp.Name = "Rick"
	fmt.Printf("  copy renamed to %s, original still %s\n", cp.Name, u1.Name)
}

func makePerson(age int, name string, height int) person {
	return person{Age: age, Name: name, Height: height}
}

// demoTupleCompare shows lexicographic ordering: compare the first fields,
// and only on a tie move to the next. Tuple types get this for free; in Go
// you spell it out once (or derive it with cmp.Compare chains).
func demoTupleCompare() {
	a := person{26, "Richard", 178}
	b := person{26, "Richard", 180}
	c := person{25, "Smith", 191}

	fmt.Printf("  less(%v, %v) = %v\n", a, b, less(a, b)) // ages tie, names tie, 178 < 180
	fmt.Printf("  less(%v, %v) = %v\n", a, c, less(a, c)) // 26 > 25, later fields ignored
	fmt.Println("  a == {26 Richard 178}:", a == person{26, "Richard", 178})
}

func less(a, b person) bool {
	if a.Age != b.Age {
		return a.Age < b.Age
	}
	if a.Name != b.Name {
		return a.Name < b.Name
	}
	return a.Height < b.Height
}

func forEach[T any](items []T, fn func(T)) {
	for _, v := range items {
		fn(v)
	}
}
