// Package workload provides the programs that drive a virtual memory
// simulation. Each program touches memory in a fixed pattern and returns a
// checksum of what it read.
package workload

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownProgram is returned when a program name is not recognized.
var ErrUnknownProgram = errors.New("unknown program")

// Memory is the byte-addressable memory that a program works on.
type Memory interface {
	Len() int
	Load(addr int) byte
	Store(addr int, value byte)
}

// A Program runs over a memory region and returns its result.
type Program func(mem Memory) int

var programs = map[string]Program{
	"scan":  Scan,
	"sort":  Sort,
	"focus": Focus,
}

// Lookup returns the program registered under name.
func Lookup(name string) (Program, error) {
	p, ok := programs[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownProgram)
	}

	return p, nil
}

// Names returns the names of all programs, sorted.
func Names() []string {
	names := make([]string, 0, len(programs))
	for name := range programs {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func sum(mem Memory) int {
	total := 0
	for i := 0; i < mem.Len(); i++ {
		total += int(mem.Load(i))
	}

	return total
}
