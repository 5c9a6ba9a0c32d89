package paging

// FIFOPolicy reclaims frames round robin. Because free frames are handed out
// in index order, the frame after the last one reclaimed is the one that has
// held its page the longest, as long as no other policy reuses frames.
type FIFOPolicy struct {
	numFrames int
	cursor    int
}

// NewFIFOPolicy creates a FIFOPolicy over numFrames frames. The cursor starts
// at the last frame the free pool hands out, so the first victim is frame 0.
func NewFIFOPolicy(numFrames int) *FIFOPolicy {
	return &FIFOPolicy{
		numFrames: numFrames,
		cursor:    numFrames - 1,
	}
}

// Reclaim advances the cursor and returns the frame it points to.
func (p *FIFOPolicy) Reclaim(int) (int, bool) {
	p.cursor = (p.cursor + 1) % p.numFrames
	return p.cursor, false
}

// Cursor returns the frame most recently reclaimed.
func (p *FIFOPolicy) Cursor() int {
	return p.cursor
}
