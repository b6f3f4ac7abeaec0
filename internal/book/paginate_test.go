// Copyright (c) 2026 Keymaster Team
// Addressbook - personal contact manager
// This source code is licensed under the MIT license found in the LICENSE file.

package book

import (
	"slices"
	"strings"
	"testing"
)

func collect(b *AddressBook, size int) []string {
	var pages []string
	for page := range b.Paginate(size) {
		pages = append(pages, page)
	}
	return pages
}

func TestPaginate_ThirteenBySix(t *testing.T) {
	b := dwarves(t)
	pages := collect(b, 6)
	if len(pages) != 3 || b.PageCount(6) != 3 {
		t.Fatalf("expected 3 pages, got %d (PageCount %d)", len(pages), b.PageCount(6))
	}

	var names []string
	for i, page := range pages {
		if strings.HasSuffix(page, "\n") {
			t.Fatalf("page %d has a trailing newline", i)
		}
		lines := strings.Split(page, "\n")
		if want := []int{6, 6, 1}[i]; len(lines) != want {
			t.Fatalf("page %d has %d lines, want %d", i, len(lines), want)
		}
		for _, line := range lines {
			names = append(names, strings.TrimSpace(line[:8]))
		}
	}
	if !slices.Equal(names, b.Names()) {
		t.Fatalf("pages not in ascending name order: %v", names)
	}
}

func TestPaginate_LineFormat(t *testing.T) {
	b := New()
	b.AddRecord(mustRecord(t, "Oin", "2001-01-23", "123123123"))
	b.AddRecord(mustRecord(t, "Bartholomew", ""))

	pages := collect(b, 10)
	want := "Bartholo  name: Bartholomew, phones: [], birthday: None\n" +
		"Oin       name: Oin, phones: ['123123123'], birthday: 2001-01-23"
	if len(pages) != 1 || pages[0] != want {
		t.Fatalf("unexpected page:\n%q\nwant:\n%q", pages, want)
	}
}

func TestPaginate_RestartsOnEachRange(t *testing.T) {
	b := dwarves(t)
	seq := b.Paginate(5)

	var first string
	for page := range seq {
		first = page
		break
	}
	again := collect(b, 5)
	if len(again) != 3 || again[0] != first {
		t.Fatalf("a fresh pagination should start from the first page")
	}

	// Ranging over the same sequence value again also restarts.
	count := 0
	for range seq {
		count++
	}
	if count != 3 {
		t.Fatalf("expected 3 pages on second range, got %d", count)
	}
}

func TestPaginate_EmptyAndInvalidSize(t *testing.T) {
	if pages := collect(New(), 6); len(pages) != 0 {
		t.Fatalf("empty book should have no pages, got %v", pages)
	}
	b := dwarves(t)
	if pages := collect(b, 0); len(pages) != 0 || b.PageCount(0) != 0 {
		t.Fatalf("page size 0 should yield nothing, got %d pages", len(pages))
	}
	if pages := collect(b, 100); len(pages) != 1 {
		t.Fatalf("expected a single page, got %d", len(pages))
	}
}
