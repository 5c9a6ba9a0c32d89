package workload

import "math/rand"

const (
	focusSeed     = 38290
	focusRegions  = 100
	focusWrites   = 100
	focusSpanSize = 25
)

// Focus zeroes the memory and then writes in many small, randomly placed
// regions, so that most accesses land on a few pages at a time.
func Focus(mem Memory) int {
	length := mem.Len()
	for i := 0; i < length; i++ {
		mem.Store(i, 0)
	}

	rng := rand.New(rand.NewSource(focusSeed))
	for range focusRegions {
		start := rng.Intn(length)
		for range focusWrites {
			addr := (start + rng.Intn(focusSpanSize)) % length
			mem.Store(addr, byte(rng.Intn(256)))
		}
	}

	return sum(mem)
}
