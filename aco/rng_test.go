package aco

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSeed(t *testing.T) {
	assert.Equal(t, defaultRNGSeed, normalizeSeed(0))
	assert.Equal(t, int64(-7), normalizeSeed(-7))
}

// TestAntRNG_Streams checks that a stream depends only on its
// (seed, iteration, ant) triple.
func TestAntRNG_Streams(t *testing.T) {
	draw := func(seed int64, it, k int) [4]float64 {
		r := antRNG(seed, it, k, 30)
		var out [4]float64
		for i := range out {
			out[i] = r.Float64()
		}
		return out
	}

	assert.Equal(t, draw(5, 3, 7), draw(5, 3, 7))
	assert.Equal(t, draw(0, 0, 0), draw(defaultRNGSeed, 0, 0), "seed 0 is the default seed")

	seen := map[[4]float64]bool{}
	for it := 0; it < 4; it++ {
		for k := 0; k < 30; k++ {
			v := draw(5, it, k)
			assert.False(t, seen[v], "stream (%d,%d) repeats another", it, k)
			seen[v] = true
		}
	}
	assert.NotEqual(t, draw(5, 0, 0), draw(6, 0, 0))
}

func TestDeriveSeed_Mixes(t *testing.T) {
	a, b := deriveSeed(1, 0), deriveSeed(1, 1)
	assert.NotEqual(t, a, b)
	// Neighbouring streams should differ in many bits, not one or two.
	diff := uint64(a ^ b)
	bits := 0
	for ; diff != 0; diff &= diff - 1 {
		bits++
	}
	assert.Greater(t, bits, 8)
}
