// Package vm provides the page table and the permission-checked virtual
// memory that workloads run on.
package vm

import "fmt"

// PageSize is the number of bytes in a page and in a frame.
const PageSize = 4096

// Permission is the access right a virtual page currently holds. Permissions
// are ordered: Unmapped < ReadOnly < ReadWrite.
type Permission int

// The permissions a page can hold.
const (
	Unmapped Permission = iota
	ReadOnly
	ReadWrite
)

func (p Permission) String() string {
	switch p {
	case Unmapped:
		return "unmapped"
	case ReadOnly:
		return "read-only"
	case ReadWrite:
		return "read-write"
	default:
		return fmt.Sprintf("Permission(%d)", int(p))
	}
}

// Allows returns true if an access of the given kind is permitted.
func (p Permission) Allows(access AccessKind) bool {
	switch access {
	case Read:
		return p >= ReadOnly
	case Write:
		return p == ReadWrite
	default:
		return false
	}
}

// AccessKind tells whether an access reads or writes memory.
type AccessKind int

// The kinds of memory accesses.
const (
	Read AccessKind = iota
	Write
)

func (a AccessKind) String() string {
	if a == Write {
		return "write"
	}

	return "read"
}

// A Fault describes an access that the current permission of a page does not
// allow.
type Fault struct {
	Page   int
	Access AccessKind
}

// A FaultHandler resolves faults. When HandleFault returns, the page table
// entry of the faulting page should permit the access.
type FaultHandler interface {
	HandleFault(f Fault)
}
