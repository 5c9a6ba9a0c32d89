package paging

import (
	"errors"
	"fmt"
)

// Names that select a replacement policy.
const (
	PolicyFIFO   = "fifo"
	PolicyRandom = "rand"
	PolicyCustom = "custom"
)

// ErrUnknownPolicy is returned when a policy name is not recognized.
var ErrUnknownPolicy = errors.New("unknown replacement policy")

// PolicyNames lists the names accepted by Builder.WithPolicy.
func PolicyNames() []string {
	return []string{PolicyFIFO, PolicyRandom, PolicyCustom}
}

// A ReplacementPolicy makes room for a page once every frame is in use.
type ReplacementPolicy interface {
	// Reclaim is called on a miss for page when no free frame remains. It
	// either returns the victim frame that the caller should evict and fill,
	// or reports installed when the policy has already mapped page itself.
	Reclaim(page int) (frame int, installed bool)
}

// CheckPolicy returns ErrUnknownPolicy if name does not select a policy.
func CheckPolicy(name string) error {
	for _, n := range PolicyNames() {
		if n == name {
			return nil
		}
	}

	return fmt.Errorf("%q: %w", name, ErrUnknownPolicy)
}
