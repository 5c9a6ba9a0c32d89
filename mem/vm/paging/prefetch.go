package paging

import "github.com/sarchlab/virtmem/mem/vm"

// PrefetchPolicy replaces the whole frame pool at once. On a miss for page p
// it loads pages p, p+1, ... into frames 0, 1, ... until either the frames or
// the address space run out.
type PrefetchPolicy struct {
	pageTable vm.PageTable
	evictor   *Evictor
}

// NewPrefetchPolicy creates a PrefetchPolicy that maps pages through
// pageTable and moves data with evictor.
func NewPrefetchPolicy(pageTable vm.PageTable, evictor *Evictor) *PrefetchPolicy {
	return &PrefetchPolicy{
		pageTable: pageTable,
		evictor:   evictor,
	}
}

// Reclaim loads the window starting at page and reports it installed.
func (p *PrefetchPolicy) Reclaim(page int) (int, bool) {
	count := p.WindowSize(page)

	// A page of the window may sit in a frame outside [0, count).
	for i := 0; i < count; i++ {
		p.evictor.Unmap(page + i)
	}

	// Pages outside the window may still occupy the target frames.
	for frame := 0; frame < count; frame++ {
		p.evictor.Evict(frame)
	}

	for i := 0; i < count; i++ {
		p.evictor.Load(page+i, i)
	}

	return 0, true
}

// WindowSize returns how many pages a miss on page brings in.
func (p *PrefetchPolicy) WindowSize(page int) int {
	return min(p.pageTable.NumFrames(), p.pageTable.NumPages()-page)
}
