package workload

import (
	"math/rand"
	"sort"
)

const sortSeed = 4856

// byteArray lets sort.Sort work on a Memory in place.
type byteArray struct {
	Memory
}

func (a byteArray) Less(i, j int) bool {
	return a.Load(i) < a.Load(j)
}

func (a byteArray) Swap(i, j int) {
	vi, vj := a.Load(i), a.Load(j)
	a.Store(i, vj)
	a.Store(j, vi)
}

// Sort fills the memory with pseudo-random bytes and sorts them in place.
func Sort(mem Memory) int {
	rng := rand.New(rand.NewSource(sortSeed))
	for i := 0; i < mem.Len(); i++ {
		mem.Store(i, byte(rng.Intn(256)))
	}

	sort.Sort(byteArray{mem})

	return sum(mem)
}
