// Copyright (c) 2026 Keymaster Team
// Addressbook - personal contact manager
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/toeirei/addressbook/internal/book"
)

// FileStore keeps a book in a single file written by book.Save.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore for path. The file is not touched until
// Load or Save is called.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the file the store reads and writes.
func (s *FileStore) Path() string { return s.path }

// Load reads the book from disk. A missing file yields an empty book.
func (s *FileStore) Load(ctx context.Context) (*book.AddressBook, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := book.Load(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		dbLogf("db: %s does not exist, starting with an empty book", s.path)
		return book.New(), nil
	}
	if err != nil {
		return nil, err
	}
	dbLogf("db: loaded %d contacts from %s", b.Len(), s.path)
	return b, nil
}

// Save writes b to disk, creating parent directories as needed.
func (s *FileStore) Save(ctx context.Context, b *book.AddressBook) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("could not create directory %s: %w", dir, err)
		}
	}
	if err := b.Save(s.path); err != nil {
		return err
	}
	dbLogf("db: saved %d contacts to %s", b.Len(), s.path)
	return nil
}

// Close is a no-op; FileStore holds no open handles between calls.
func (s *FileStore) Close() error { return nil }
