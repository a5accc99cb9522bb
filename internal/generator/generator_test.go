package generator_test

import (
	"math/rand"
	"testing"

	"orderseed/internal/generator"

	"github.com/stretchr/testify/assert"
)

// newSeeded returns a generator on a fixed-seed source so the statistical
// assertions below are reproducible.
func newSeeded(seed int64) *generator.Generator {
	return generator.New(rand.New(rand.NewSource(seed)))
}

// scriptedRand replays a fixed list of draws, reducing each value modulo the
// requested bound so a script stays valid whatever the collection size.
type scriptedRand struct {
	draws []int
	pos   int
}

func (r *scriptedRand) next() int {
	if r.pos >= len(r.draws) {
		return 0
	}
	v := r.draws[r.pos]
	r.pos++
	return v
}

func (r *scriptedRand) Intn(n int) int { return r.next() % n }

func (r *scriptedRand) Int63n(n int64) int64 { return int64(r.next()) % n }

// assertRoughlyUniform checks that every bucket was hit and that no bucket
// drifted more than 50% from the uniform expectation. Generous on purpose:
// the seed is fixed, the tolerance just documents the uniformity claim.
func assertRoughlyUniform(t *testing.T, counts map[string]int, trials, buckets int) {
	t.Helper()
	assert.Len(t, counts, buckets)
	expected := float64(trials) / float64(buckets)
	for bucket, count := range counts {
		assert.InDeltaf(t, expected, float64(count), expected/2, "bucket %s drifted from uniform", bucket)
	}
}
