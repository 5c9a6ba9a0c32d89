package vm

import "fmt"

// maxFaultsPerAccess bounds how many times one access may trap. A miss on a
// write traps twice: once to map the page and once to grant write access.
const maxFaultsPerAccess = 2

// Memory is the virtual address space seen by a workload. Every access is
// checked against the page table and traps into the fault handler when the
// page permission does not allow it.
type Memory struct {
	pageTable PageTable
	handler   FaultHandler
}

// NewMemory creates a Memory that translates through pageTable and reports
// faults to handler.
func NewMemory(pageTable PageTable, handler FaultHandler) *Memory {
	return &Memory{
		pageTable: pageTable,
		handler:   handler,
	}
}

// Len returns the size of the virtual address space in bytes.
func (m *Memory) Len() int {
	return m.pageTable.NumPages() * PageSize
}

// Load reads the byte at a virtual address.
func (m *Memory) Load(addr int) byte {
	frame, offset := m.translate(addr, Read)

	return m.pageTable.Frame(frame)[offset]
}

// Store writes the byte at a virtual address.
func (m *Memory) Store(addr int, value byte) {
	frame, offset := m.translate(addr, Write)
	m.pageTable.Frame(frame)[offset] = value
}

func (m *Memory) translate(addr int, access AccessKind) (frame, offset int) {
	if addr < 0 || addr >= m.Len() {
		panic(fmt.Sprintf("address 0x%x is out of range", addr))
	}

	page := addr / PageSize
	offset = addr % PageSize

	for numFaults := 0; ; numFaults++ {
		frame, perm := m.pageTable.Entry(page)
		if perm.Allows(access) {
			return frame, offset
		}

		if numFaults == maxFaultsPerAccess {
			panic(fmt.Sprintf(
				"%s on page %d still not permitted after %d faults (%s)",
				access, page, numFaults, perm))
		}

		m.handler.HandleFault(Fault{Page: page, Access: access})
	}
}
