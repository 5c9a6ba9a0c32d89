package disk

import (
	"database/sql"
	"errors"
	"fmt"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore keeps blocks as rows of a SQLite database. Blocks that were
// never written read as zeros.
type SQLiteStore struct {
	*sql.DB

	numBlocks int
	readStmt  *sql.Stmt
	writeStmt *sql.Stmt
}

// OpenSQLite opens (or creates) the database at path and prepares it to hold
// numBlocks blocks. Blocks beyond numBlocks left over from earlier runs are
// removed.
func OpenSQLite(path string, numBlocks int) (*SQLiteStore, error) {
	if numBlocks <= 0 {
		return nil, fmt.Errorf("open %s: invalid block count %d",
			path, numBlocks)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	s := &SQLiteStore{DB: db, numBlocks: numBlocks}

	err = s.init()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init store %s: %w", path, err)
	}

	return s, nil
}

func (s *SQLiteStore) init() error {
	_, err := s.Exec(`CREATE TABLE IF NOT EXISTS blocks (
	id INTEGER PRIMARY KEY,
	data BLOB NOT NULL
);`)
	if err != nil {
		return err
	}

	_, err = s.Exec(`DELETE FROM blocks WHERE id >= ?`, s.numBlocks)
	if err != nil {
		return err
	}

	s.readStmt, err = s.Prepare(`SELECT data FROM blocks WHERE id = ?`)
	if err != nil {
		return err
	}

	s.writeStmt, err = s.Prepare(
		`INSERT OR REPLACE INTO blocks (id, data) VALUES (?, ?)`)

	return err
}

// Read copies a block into buf.
func (s *SQLiteStore) Read(block int, buf []byte) error {
	if err := checkAccess(s, block, buf); err != nil {
		return err
	}

	var data []byte

	err := s.readStmt.QueryRow(block).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		clear(buf)
		return nil
	}

	if err != nil {
		return fmt.Errorf("read block %d: %w", block, err)
	}

	n := copy(buf, data)
	clear(buf[n:])

	return nil
}

// Write copies buf into a block.
func (s *SQLiteStore) Write(block int, buf []byte) error {
	if err := checkAccess(s, block, buf); err != nil {
		return err
	}

	_, err := s.writeStmt.Exec(block, buf)
	if err != nil {
		return fmt.Errorf("write block %d: %w", block, err)
	}

	return nil
}

// NumBlocks returns the number of blocks in the store.
func (s *SQLiteStore) NumBlocks() int {
	return s.numBlocks
}

// Close releases the prepared statements and the database connection.
func (s *SQLiteStore) Close() error {
	s.readStmt.Close()
	s.writeStmt.Close()

	return s.DB.Close()
}
