package disk

// MemStore keeps all blocks in memory. Nothing survives Close.
type MemStore struct {
	data []byte
}

// NewMemStore creates a MemStore with numBlocks zeroed blocks.
func NewMemStore(numBlocks int) *MemStore {
	return &MemStore{data: make([]byte, numBlocks*BlockSize)}
}

// Read copies a block into buf.
func (s *MemStore) Read(block int, buf []byte) error {
	if err := checkAccess(s, block, buf); err != nil {
		return err
	}

	copy(buf, s.data[block*BlockSize:])

	return nil
}

// Write copies buf into a block.
func (s *MemStore) Write(block int, buf []byte) error {
	if err := checkAccess(s, block, buf); err != nil {
		return err
	}

	copy(s.data[block*BlockSize:], buf)

	return nil
}

// NumBlocks returns the number of blocks in the store.
func (s *MemStore) NumBlocks() int {
	return len(s.data) / BlockSize
}

// Close drops the stored data.
func (s *MemStore) Close() error {
	s.data = nil
	return nil
}
