package paging

import (
	"fmt"

	"github.com/sarchlab/virtmem/mem/disk"
	"github.com/sarchlab/virtmem/mem/vm"
)

// An Evictor moves page data between frames and the store and keeps the page
// table in sync with it.
type Evictor struct {
	pageTable vm.PageTable
	store     disk.Store
	hooks     *hookList
}

// NewEvictor creates an Evictor.
func NewEvictor(pageTable vm.PageTable, store disk.Store) *Evictor {
	return &Evictor{
		pageTable: pageTable,
		store:     store,
		hooks:     &hookList{},
	}
}

// Evict removes whichever page occupies frame. It returns the evicted page,
// or false if the frame held no page.
func (e *Evictor) Evict(frame int) (page int, found bool) {
	page, found = e.findPage(frame)
	if !found {
		return -1, false
	}

	e.Unmap(page)

	return page, true
}

// findPage scans the page table for the page mapped to frame. Unmapped pages
// also record frame 0, so only pages with a permission count.
func (e *Evictor) findPage(frame int) (int, bool) {
	for page := 0; page < e.pageTable.NumPages(); page++ {
		f, perm := e.pageTable.Entry(page)
		if perm != vm.Unmapped && f == frame {
			return page, true
		}
	}

	return -1, false
}

// Unmap writes page back if it is dirty and clears its mapping. Unmapped
// pages are left alone.
func (e *Evictor) Unmap(page int) {
	frame, perm := e.pageTable.Entry(page)
	if perm == vm.Unmapped {
		return
	}

	if perm == vm.ReadWrite {
		err := e.store.Write(page, e.pageTable.Frame(frame))
		if err != nil {
			panic(fmt.Sprintf("write back page %d from frame %d: %v",
				page, frame, err))
		}

		e.hooks.invoke(HookPosWriteBack, page, frame)
	}

	e.pageTable.SetEntry(page, 0, vm.Unmapped)
	e.hooks.invoke(HookPosEvict, page, frame)
}

// Load reads page from the store into frame and maps it read-only.
func (e *Evictor) Load(page, frame int) {
	err := e.store.Read(page, e.pageTable.Frame(frame))
	if err != nil {
		panic(fmt.Sprintf("load page %d into frame %d: %v", page, frame, err))
	}

	e.pageTable.SetEntry(page, frame, vm.ReadOnly)
	e.hooks.invoke(HookPosLoad, page, frame)
}
