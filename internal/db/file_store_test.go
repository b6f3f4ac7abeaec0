// Copyright (c) 2026 Keymaster Team
// Addressbook - personal contact manager
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/toeirei/addressbook/internal/book"
)

func TestFileStore_MissingFileLoadsEmpty(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "nope.bin.zst"))
	b, err := s.Load(bg)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if b.Len() != 0 {
		t.Fatalf("expected empty book, got %d contacts", b.Len())
	}
}

func TestFileStore_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "book.bin.zst")
	s := NewFileStore(path)
	want := sampleBook(t)
	if err := s.Save(bg, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file at %s: %v", path, err)
	}
	got, err := s.Load(bg)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	assertSameBook(t, got, want)
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.bin.zst")
	if err := os.WriteFile(path, []byte("garbage"), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	_, err := NewFileStore(path).Load(bg)
	if !errors.Is(err, book.ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
}

func TestFileStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(bg)
	cancel()
	s := NewFileStore(filepath.Join(t.TempDir(), "book.bin.zst"))
	if _, err := s.Load(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled from Load, got %v", err)
	}
	if err := s.Save(ctx, book.New()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled from Save, got %v", err)
	}
}
