// Package storage implements the record store backing all tables: one
// delimited-text file per table with a header row. Every access is a full
// read or a full overwrite; there is no indexing and no locking, which is
// acceptable because the system is single-process by design.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// Table names. Each maps to <name>.csv inside the data directory.
const (
	TableUsers    = "users"
	TableCars     = "cars"
	TableRentals  = "rentals"
	TableFeedback = "feedback"
)

// Store reads and writes whole tables in a single data directory.
type Store struct {
	dir string
}

// New opens a store rooted at dir, creating the directory when absent.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(table string) string {
	return filepath.Join(s.dir, table+".csv")
}

// Read loads every row of a table into out, which must be a pointer to a
// slice of record pointers. A missing table file reads as an empty table,
// not an error.
func (s *Store) Read(table string, out interface{}) error {
	b, err := os.ReadFile(s.path(table))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read table %s: %w", table, err)
	}
	if len(b) == 0 {
		return nil
	}
	if err := gocsv.UnmarshalBytes(b, out); err != nil {
		return fmt.Errorf("decode table %s: %w", table, err)
	}
	return nil
}

// Write replaces the whole table with rows, header included. The file is
// written to a temp sibling and renamed into place so a reader never sees
// a half-written table.
func (s *Store) Write(table string, rows interface{}) error {
	b, err := gocsv.MarshalBytes(rows)
	if err != nil {
		return fmt.Errorf("encode table %s: %w", table, err)
	}
	return s.writeBytes(table, b)
}

func (s *Store) writeBytes(table string, b []byte) error {
	dst := s.path(table)
	tmp, err := os.CreateTemp(s.dir, table+".*.tmp")
	if err != nil {
		return fmt.Errorf("write table %s: %w", table, err)
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write table %s: %w", table, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write table %s: %w", table, err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write table %s: %w", table, err)
	}
	return nil
}

// Txn stages whole-table writes so a multi-table mutation commits in one
// pass. Rows are encoded at stage time, which surfaces marshal errors
// before anything touches disk; a failure before Commit leaves the store
// untouched. Commit writes tables in stage order and stops at the first
// write error, so callers stage the most dependent table last.
type Txn struct {
	store  *Store
	tables []string
	data   [][]byte
}

// Begin starts an empty staged commit.
func (s *Store) Begin() *Txn {
	return &Txn{store: s}
}

// Stage records a pending full overwrite of a table. Staging the same
// table twice keeps the later version.
func (t *Txn) Stage(table string, rows interface{}) error {
	b, err := gocsv.MarshalBytes(rows)
	if err != nil {
		return fmt.Errorf("encode table %s: %w", table, err)
	}
	for i, name := range t.tables {
		if name == table {
			t.data[i] = b
			return nil
		}
	}
	t.tables = append(t.tables, table)
	t.data = append(t.data, b)
	return nil
}

// Commit writes every staged table. There is no rollback across files; an
// error mid-sequence can leave tables mutually inconsistent, which is a
// documented gap of the flat-file store.
func (t *Txn) Commit() error {
	for i, table := range t.tables {
		if err := t.store.writeBytes(table, t.data[i]); err != nil {
			return fmt.Errorf("commit: %w", err)
		}
	}
	return nil
}
