package paging

// A FrameAllocator hands out never-used frames first and falls back to the
// replacement policy once they run out.
type FrameAllocator struct {
	numFrames  int
	freeFrames int
	policy     ReplacementPolicy
	evictor    *Evictor
}

// NewFrameAllocator creates a FrameAllocator with all numFrames frames free.
func NewFrameAllocator(
	numFrames int,
	policy ReplacementPolicy,
	evictor *Evictor,
) *FrameAllocator {
	return &FrameAllocator{
		numFrames:  numFrames,
		freeFrames: numFrames,
		policy:     policy,
		evictor:    evictor,
	}
}

// Acquire returns a frame that can receive page. If installed is true, the
// policy has already loaded and mapped page and the frame must not be
// refilled.
func (a *FrameAllocator) Acquire(page int) (frame int, installed bool) {
	if a.freeFrames > 0 {
		frame = a.numFrames - a.freeFrames
		a.freeFrames--

		return frame, false
	}

	frame, installed = a.policy.Reclaim(page)
	if installed {
		return frame, true
	}

	a.evictor.Evict(frame)

	return frame, false
}

// FreeFrames returns the number of frames that were never used.
func (a *FrameAllocator) FreeFrames() int {
	return a.freeFrames
}
