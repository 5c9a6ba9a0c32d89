package paging

import (
	"errors"
	"fmt"
	"time"

	"github.com/sarchlab/virtmem/mem/disk"
	"github.com/sarchlab/virtmem/mem/vm"
)

// A Builder can build Dispatchers.
type Builder struct {
	pageTable  vm.PageTable
	store      disk.Store
	policyName string
	seed       int64
}

// MakeBuilder creates a new Builder that uses the FIFO policy.
func MakeBuilder() Builder {
	return Builder{
		policyName: PolicyFIFO,
	}
}

// WithPageTable sets the page table that the dispatcher maintains.
func (b Builder) WithPageTable(pageTable vm.PageTable) Builder {
	b.pageTable = pageTable
	return b
}

// WithStore sets the store that backs the virtual pages.
func (b Builder) WithStore(store disk.Store) Builder {
	b.store = store
	return b
}

// WithPolicy selects the replacement policy by name. See PolicyNames.
func (b Builder) WithPolicy(name string) Builder {
	b.policyName = name
	return b
}

// WithSeed seeds the random policy. A zero seed uses the current time.
func (b Builder) WithSeed(seed int64) Builder {
	b.seed = seed
	return b
}

// Build returns a newly created Dispatcher.
func (b Builder) Build() (*Dispatcher, error) {
	err := b.validate()
	if err != nil {
		return nil, err
	}

	evictor := NewEvictor(b.pageTable, b.store)
	policy := b.createPolicy(evictor)

	d := &Dispatcher{
		hookList:  evictor.hooks,
		pageTable: b.pageTable,
		evictor:   evictor,
		allocator: NewFrameAllocator(b.pageTable.NumFrames(), policy, evictor),
	}

	return d, nil
}

func (b Builder) validate() error {
	if b.pageTable == nil {
		return errors.New("paging: page table is not set")
	}

	if b.store == nil {
		return errors.New("paging: store is not set")
	}

	if b.store.NumBlocks() < b.pageTable.NumPages() {
		return fmt.Errorf("paging: store has %d blocks for %d pages",
			b.store.NumBlocks(), b.pageTable.NumPages())
	}

	return CheckPolicy(b.policyName)
}

func (b Builder) createPolicy(evictor *Evictor) ReplacementPolicy {
	numFrames := b.pageTable.NumFrames()

	switch b.policyName {
	case PolicyRandom:
		seed := b.seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		return NewRandomPolicy(numFrames, seed)
	case PolicyCustom:
		return NewPrefetchPolicy(b.pageTable, evictor)
	default:
		return NewFIFOPolicy(numFrames)
	}
}
