// Package generator draws the random ingredients of a generated order:
// which customer buys, which variant they buy, and the synthetic payment,
// fulfillment, delivery and address attributes the order carries.
package generator

import (
	"errors"
	"strconv"
)

// Rand is the source of randomness for all draws. *math/rand.Rand satisfies
// it; tests substitute scripted implementations.
type Rand interface {
	Intn(n int) int
	Int63n(n int64) int64
}

// ErrNoCandidates is returned when a pick is attempted over an empty or
// fully filtered-out collection.
var ErrNoCandidates = errors.New("no candidates to pick from")

// Generator draws uniformly from an injected random source. It holds no
// other state; every method is a pure function of the source.
type Generator struct {
	rng Rand
}

// New creates a Generator backed by rng.
func New(rng Rand) *Generator {
	return &Generator{rng: rng}
}

// index draws a uniform index into a collection of size n. Callers guard n > 0.
func (g *Generator) index(n int) int {
	return g.rng.Intn(n)
}

// intBetween draws a uniform int in [lo, hi].
func (g *Generator) intBetween(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

// digitsBetween draws a uniform integer in [lo, hi] and formats it in
// decimal. Callers size the bounds so the digit count is fixed.
func (g *Generator) digitsBetween(lo, hi int64) string {
	return strconv.FormatInt(lo+g.rng.Int63n(hi-lo+1), 10)
}
