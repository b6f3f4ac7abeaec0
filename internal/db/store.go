// Copyright (c) 2026 Keymaster Team
// Addressbook - personal contact manager
// This source code is licensed under the MIT license found in the LICENSE file.

package db // import "github.com/toeirei/addressbook/internal/db"

import (
	"context"
	"fmt"

	"github.com/toeirei/addressbook/internal/book"
)

// Store loads and saves whole address books.
type Store interface {
	// Load returns the stored book. A store that holds nothing yet yields an
	// empty book.
	Load(ctx context.Context) (*book.AddressBook, error)
	// Save replaces the stored book with b.
	Save(ctx context.Context, b *book.AddressBook) error
	Close() error
}

// NewStoreFromDSN returns the Store for storeType. For "file" the DSN is a
// path; for "sqlite", "postgres" and "mysql" it is a driver DSN and pending
// migrations are applied before returning.
func NewStoreFromDSN(storeType, dsn string) (Store, error) {
	switch storeType {
	case "", "file":
		return NewFileStore(dsn), nil
	case "sqlite", "postgres", "mysql":
		return NewSQLStore(storeType, dsn)
	default:
		return nil, fmt.Errorf("%w: '%s'", ErrUnsupportedStore, storeType)
	}
}
