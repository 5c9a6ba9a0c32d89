// Package disk provides block-addressable stores that back virtual pages.
// Every block holds exactly one page.
package disk

import (
	"errors"
	"fmt"

	"github.com/sarchlab/virtmem/mem/vm"
)

// BlockSize is the number of bytes in a block.
const BlockSize = vm.PageSize

var (
	// ErrOutOfRange is returned when a block index is outside the store.
	ErrOutOfRange = errors.New("block out of range")

	// ErrBlockSize is returned when a buffer is not exactly one block long.
	ErrBlockSize = errors.New("buffer is not one block long")
)

// A Store keeps one block per virtual page.
type Store interface {
	// Read copies a block into buf.
	Read(block int, buf []byte) error

	// Write copies buf into a block.
	Write(block int, buf []byte) error

	// NumBlocks returns the number of blocks in the store.
	NumBlocks() int

	// Close releases the resources held by the store.
	Close() error
}

func checkAccess(s Store, block int, buf []byte) error {
	if block < 0 || block >= s.NumBlocks() {
		return fmt.Errorf("block %d of %d: %w", block, s.NumBlocks(),
			ErrOutOfRange)
	}

	if len(buf) != BlockSize {
		return fmt.Errorf("%d bytes: %w", len(buf), ErrBlockSize)
	}

	return nil
}
