package workload

const scanPasses = 10

// Scan zeroes the memory and then reads it from start to end several times.
func Scan(mem Memory) int {
	for i := 0; i < mem.Len(); i++ {
		mem.Store(i, 0)
	}

	total := 0
	for range scanPasses {
		total += sum(mem)
	}

	return total
}
