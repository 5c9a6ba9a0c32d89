package paging

import "math/rand"

// RandomPolicy reclaims a uniformly chosen frame.
type RandomPolicy struct {
	numFrames int
	rng       *rand.Rand
}

// NewRandomPolicy creates a RandomPolicy over numFrames frames. The generator
// is seeded once, here.
func NewRandomPolicy(numFrames int, seed int64) *RandomPolicy {
	return &RandomPolicy{
		numFrames: numFrames,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Reclaim returns a random frame.
func (p *RandomPolicy) Reclaim(int) (int, bool) {
	return p.rng.Intn(p.numFrames), false
}
