package disk

import (
	"fmt"
	"os"
)

// FileStore keeps blocks in a regular file, block i at offset i*BlockSize.
type FileStore struct {
	file      *os.File
	numBlocks int
}

// OpenFile creates or truncates the file at path so that it holds numBlocks
// blocks.
func OpenFile(path string, numBlocks int) (*FileStore, error) {
	if numBlocks <= 0 {
		return nil, fmt.Errorf("open %s: invalid block count %d",
			path, numBlocks)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	err = f.Truncate(int64(numBlocks) * BlockSize)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("size store %s: %w", path, err)
	}

	return &FileStore{file: f, numBlocks: numBlocks}, nil
}

// Read copies a block into buf.
func (s *FileStore) Read(block int, buf []byte) error {
	if err := checkAccess(s, block, buf); err != nil {
		return err
	}

	_, err := s.file.ReadAt(buf, int64(block)*BlockSize)
	if err != nil {
		return fmt.Errorf("read block %d: %w", block, err)
	}

	return nil
}

// Write copies buf into a block.
func (s *FileStore) Write(block int, buf []byte) error {
	if err := checkAccess(s, block, buf); err != nil {
		return err
	}

	_, err := s.file.WriteAt(buf, int64(block)*BlockSize)
	if err != nil {
		return fmt.Errorf("write block %d: %w", block, err)
	}

	return nil
}

// NumBlocks returns the number of blocks in the store.
func (s *FileStore) NumBlocks() int {
	return s.numBlocks
}

// Close closes the underlying file. The file is left on disk.
func (s *FileStore) Close() error {
	return s.file.Close()
}
