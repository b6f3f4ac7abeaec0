// Copyright (c) 2026 Keymaster Team
// Addressbook - personal contact manager
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"testing"

	"github.com/toeirei/addressbook/internal/book"
	"github.com/toeirei/addressbook/internal/model"
)

// newTestSQLStore opens a shared in-memory sqlite store private to the test.
func newTestSQLStore(t *testing.T) *SQLStore {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	s, err := NewSQLStore("sqlite", dsn)
	if err != nil {
		t.Fatalf("NewSQLStore failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleBook(t *testing.T) *book.AddressBook {
	t.Helper()
	b := book.New()
	for _, c := range []struct {
		name, birthday string
		phones         []string
	}{
		{"Bilbo", "1990-09-22", []string{"123456789", "987654321"}},
		{"Frodo", "", []string{"555000111"}},
		{"Samwise", "1980-04-06", nil},
	} {
		r, err := model.NewRecord(c.name, c.birthday, c.phones...)
		if err != nil {
			t.Fatalf("NewRecord(%q) failed: %v", c.name, err)
		}
		b.AddRecord(r)
	}
	return b
}

func assertSameBook(t *testing.T, got, want *book.AddressBook) {
	t.Helper()
	if got.Len() != want.Len() {
		t.Fatalf("expected %d contacts, got %d", want.Len(), got.Len())
	}
	for _, w := range want.Records() {
		g, ok := got.Get(w.Name())
		if !ok {
			t.Fatalf("contact %q missing", w.Name())
		}
		if g.String() != w.String() {
			t.Fatalf("contact %q: expected %q, got %q", w.Name(), w.String(), g.String())
		}
	}
}

var bg = context.Background()
