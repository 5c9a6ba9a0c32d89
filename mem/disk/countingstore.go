package disk

// CountingStore forwards to another Store and counts successful reads and
// writes.
type CountingStore struct {
	Store

	reads  uint64
	writes uint64
}

// NewCountingStore wraps s.
func NewCountingStore(s Store) *CountingStore {
	return &CountingStore{Store: s}
}

// Read reads a block from the wrapped store.
func (s *CountingStore) Read(block int, buf []byte) error {
	err := s.Store.Read(block, buf)
	if err == nil {
		s.reads++
	}

	return err
}

// Write writes a block to the wrapped store.
func (s *CountingStore) Write(block int, buf []byte) error {
	err := s.Store.Write(block, buf)
	if err == nil {
		s.writes++
	}

	return err
}

// Reads returns the number of blocks read so far.
func (s *CountingStore) Reads() uint64 {
	return s.reads
}

// Writes returns the number of blocks written so far.
func (s *CountingStore) Writes() uint64 {
	return s.writes
}
