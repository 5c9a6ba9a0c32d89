package vm

import "fmt"

// A PageTable maps virtual pages to physical frames and holds the
// permission of every virtual page.
type PageTable interface {
	// NumPages returns the number of virtual pages.
	NumPages() int

	// NumFrames returns the number of physical frames.
	NumFrames() int

	// Entry returns the frame and permission of a page. The frame is only
	// meaningful when the permission is not Unmapped.
	Entry(page int) (frame int, perm Permission)

	// SetEntry updates the mapping and the permission of a page together.
	SetEntry(page, frame int, perm Permission)

	// Frame returns the bytes of a physical frame. The slice aliases
	// physical memory.
	Frame(frame int) []byte
}

// NewPageTable creates a PageTable with numPages virtual pages and numFrames
// physical frames. All pages start unmapped.
func NewPageTable(numPages, numFrames int) PageTable {
	if numPages <= 0 || numFrames <= 0 {
		panic(fmt.Sprintf("invalid page table size: %d pages, %d frames",
			numPages, numFrames))
	}

	return &pageTableImpl{
		frames:  make([]int, numPages),
		perms:   make([]Permission, numPages),
		physMem: make([]byte, numFrames*PageSize),
	}
}

// pageTableImpl keeps the mapping in two flat arrays indexed by page and the
// physical memory in one contiguous buffer.
type pageTableImpl struct {
	frames  []int
	perms   []Permission
	physMem []byte
}

func (pt *pageTableImpl) NumPages() int {
	return len(pt.frames)
}

func (pt *pageTableImpl) NumFrames() int {
	return len(pt.physMem) / PageSize
}

func (pt *pageTableImpl) Entry(page int) (int, Permission) {
	pt.pageMustExist(page)

	return pt.frames[page], pt.perms[page]
}

func (pt *pageTableImpl) SetEntry(page, frame int, perm Permission) {
	pt.pageMustExist(page)
	pt.frameMustExist(frame)

	if perm < Unmapped || perm > ReadWrite {
		panic(fmt.Sprintf("invalid permission %d", int(perm)))
	}

	pt.frames[page] = frame
	pt.perms[page] = perm
}

func (pt *pageTableImpl) Frame(frame int) []byte {
	pt.frameMustExist(frame)

	start := frame * PageSize

	return pt.physMem[start : start+PageSize : start+PageSize]
}

func (pt *pageTableImpl) pageMustExist(page int) {
	if page < 0 || page >= len(pt.frames) {
		panic(fmt.Sprintf("page %d does not exist", page))
	}
}

func (pt *pageTableImpl) frameMustExist(frame int) {
	if frame < 0 || frame >= pt.NumFrames() {
		panic(fmt.Sprintf("frame %d does not exist", frame))
	}
}
