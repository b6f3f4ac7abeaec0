// Copyright (c) 2026 Keymaster Team
// Addressbook - personal contact manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package db persists address books.
//
// Two kinds of Store exist. FileStore keeps the whole book in a single
// zstd-compressed file and is the default. SQLStore keeps contacts in a
// relational database (sqlite, postgres or mysql) through Bun and applies the
// embedded migrations for its dialect when opened.
//
// Both stores load and save whole books; there is no per-record API. Callers
// load once, mutate the in-memory book and save it back.
//
// Testing notes
//   - Use a shared in-memory sqlite DSN (file:<name>?mode=memory&cache=shared)
//     for tests that need real SQL semantics.
package db
