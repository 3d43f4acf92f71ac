package jitter

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDurationWithinBounds(t *testing.T) {
	base := time.Second
	for i := 0; i < 100; i++ {
		d := Duration(base, DefaultJitter)
		assert.GreaterOrEqual(t, d, base)
		assert.LessOrEqual(t, d, base+base/2)
	}
}

func TestDurationWithSeedIsDeterministic(t *testing.T) {
	a := DurationWithSeed(time.Second, DefaultJitter, rand.New(rand.NewSource(42)))
	b := DurationWithSeed(time.Second, DefaultJitter, rand.New(rand.NewSource(42)))
	assert.Equal(t, a, b)
}

func TestExponentialBackoffGrowsAndCaps(t *testing.T) {
	base := time.Second
	max := 10 * time.Second

	// attempt 0 → base, attempt 2 → 4*base, большой attempt упирается в max
	d0 := ExponentialBackoff(base, max, 0, 0)
	assert.Equal(t, base, d0)

	d2 := ExponentialBackoff(base, max, 2, 0)
	assert.Equal(t, 4*time.Second, d2)

	d10 := ExponentialBackoff(base, max, 10, 0)
	assert.Equal(t, max, d10)

	// С джиттером не выходит за max*(1+jitter)
	dj := ExponentialBackoff(base, max, 10, DefaultJitter)
	assert.GreaterOrEqual(t, dj, max)
	assert.LessOrEqual(t, dj, max+max/2)
}
