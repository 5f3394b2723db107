package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestLessIsLexicographic checks field-by-field ordering with ties falling
// through to the next field.
func TestLessIsLexicographic(t *testing.T) {
	a := person{26, "Richard", 178}

	assert.True(t, less(a, person{26, "Richard", 180}), "height breaks the tie")
	assert.True(t, less(a, person{26, "Smith", 100}), "name decides before height")
	assert.True(t, less(a, person{27, "Aaron", 100}), "age decides first")

	assert.False(t, less(a, a), "strict ordering: not less than itself")
	assert.False(t, less(person{27, "Aaron", 100}, a))
}

func TestTripUnpacks(t *testing.T) {
	day, month, country := trip()

	assert.Equal(t, 24, day)
	assert.Equal(t, "June", month)
	assert.Equal(t, "America", country)
}
