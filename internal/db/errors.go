// Copyright (c) 2026 Keymaster Team
// Addressbook - personal contact manager
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"errors"
	"strings"
)

// ErrDuplicate is returned when attempting to insert a row that already exists.
var ErrDuplicate = errors.New("duplicate record")

// ErrUnsupportedStore is returned for store types NewStoreFromDSN does not know.
var ErrUnsupportedStore = errors.New("unsupported store type")

// MapDBError maps common constraint violations reported by the SQL drivers to
// package-level sentinel errors. The mapping is string based so this file does
// not import driver packages.
func MapDBError(err error) error {
	if err == nil {
		return nil
	}
	le := strings.ToLower(err.Error())
	// MySQL duplicate entry, Postgres unique violation (23505), SQLite unique constraint
	if strings.Contains(le, "duplicate") || strings.Contains(le, "unique") || strings.Contains(le, "23505") || strings.Contains(le, "1062") {
		return ErrDuplicate
	}
	return err
}
