// Package paging resolves page faults. It decides which frame a faulting page
// gets, evicts the page that held the frame before and keeps permissions in
// the page table up to date.
package paging

import (
	"fmt"

	"github.com/sarchlab/virtmem/mem/vm"
)

// A Dispatcher is the fault handler registered with the virtual memory. It
// owns the fault count and the free frame pool for the whole run.
type Dispatcher struct {
	*hookList

	pageTable vm.PageTable
	allocator *FrameAllocator
	evictor   *Evictor
	counter   FaultCounter
}

// HandleFault resolves a fault. A write to a read-only page is an upgrade; a
// fault on an unmapped page is a miss. Anything else means the page table
// and the access disagree, and HandleFault panics.
func (d *Dispatcher) HandleFault(f vm.Fault) {
	frame, perm := d.pageTable.Entry(f.Page)

	switch {
	case perm == vm.ReadOnly && f.Access == vm.Write:
		d.upgrade(f.Page, frame)
	case perm == vm.Unmapped:
		d.miss(f.Page)
	default:
		panic(fmt.Sprintf("invalid %s fault on page %d with %s permission",
			f.Access, f.Page, perm))
	}
}

func (d *Dispatcher) upgrade(page, frame int) {
	d.pageTable.SetEntry(page, frame, vm.ReadWrite)
	d.invoke(HookPosUpgrade, page, frame)
}

func (d *Dispatcher) miss(page int) {
	d.counter.Inc()
	d.invoke(HookPosMiss, page, -1)

	frame, installed := d.allocator.Acquire(page)
	if installed {
		return
	}

	d.evictor.Load(page, frame)
}

// NumFaults returns the number of miss faults handled so far.
func (d *Dispatcher) NumFaults() uint64 {
	return d.counter.Count()
}

// FreeFrames returns the number of frames that were never used.
func (d *Dispatcher) FreeFrames() int {
	return d.allocator.FreeFrames()
}
