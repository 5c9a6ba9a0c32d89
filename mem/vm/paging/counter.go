package paging

// FaultCounter counts miss faults. Permission upgrades are not counted.
type FaultCounter struct {
	count uint64
}

// Inc records one miss fault.
func (c *FaultCounter) Inc() {
	c.count++
}

// Count returns the number of miss faults recorded so far.
func (c *FaultCounter) Count() uint64 {
	return c.count
}
