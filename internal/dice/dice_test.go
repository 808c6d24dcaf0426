package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoll_StaysInRange(t *testing.T) {
	r := New(&Config{Seed: 42})

	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := r.Roll(6)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 6)
		seen[v] = true
	}

	// Every face should turn up in a thousand throws
	assert.Len(t, seen, 6)
}

func TestRoll_SameSeedSameSequence(t *testing.T) {
	a := New(&Config{Seed: 7})
	b := New(&Config{Seed: 7})

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Roll(6), b.Roll(6))
	}
}

func TestRoll_InvalidSidesDefaultsToSix(t *testing.T) {
	r := New(nil)

	for i := 0; i < 100; i++ {
		v := r.Roll(0)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 6)
	}
}
