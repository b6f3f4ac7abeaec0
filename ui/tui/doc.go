// Copyright (c) 2026 Keymaster Team
// Addressbook - personal contact manager
// This source code is licensed under the MIT license found in the LICENSE file.
// Package tui implements the interactive pager used by "list --interactive".
// It renders pages produced by the address book and holds no contact state of
// its own.
package tui
