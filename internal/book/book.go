// Copyright (c) 2026 Keymaster Team
// Addressbook - personal contact manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package book implements the address book: a collection of contact records
// keyed by name, with substring search, pagination and file persistence.
package book

import (
	"strings"

	"github.com/toeirei/addressbook/internal/model"
	"github.com/toeirei/addressbook/util/mapst"
	"github.com/toeirei/addressbook/util/slicest"
)

// AddressBook maps contact names to records. The key of every entry is the
// name of its record. The zero value is not usable; call New.
type AddressBook struct {
	records map[string]*model.Record
}

func New() *AddressBook {
	return &AddressBook{records: make(map[string]*model.Record)}
}

// AddRecord stores r under its name, replacing any record with the same name.
func (b *AddressBook) AddRecord(r *model.Record) {
	b.records[r.Name()] = r
}

func (b *AddressBook) Get(name string) (*model.Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Remove deletes the record stored under name and reports whether it existed.
func (b *AddressBook) Remove(name string) bool {
	if _, ok := b.records[name]; !ok {
		return false
	}
	delete(b.records, name)
	return true
}

func (b *AddressBook) Len() int { return len(b.records) }

// Names returns all contact names in ascending order.
func (b *AddressBook) Names() []string {
	return mapst.SortedKeys(b.records)
}

// Records returns all records ordered by name.
func (b *AddressBook) Records() []*model.Record {
	return slicest.Map(b.Names(), func(name string) *model.Record { return b.records[name] })
}

// Search returns the entries whose search string contains query. Matching is
// case sensitive and an empty query matches every entry.
func (b *AddressBook) Search(query string) map[string]*model.Record {
	return mapst.Filter(b.records, func(_ string, r *model.Record) bool {
		return strings.Contains(r.SearchString(), query)
	})
}
