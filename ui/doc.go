// Copyright (c) 2026 Keymaster Team
// Addressbook - personal contact manager
// This source code is licensed under the MIT license found in the LICENSE file.

// Package ui groups the user interfaces of the address book: the Cobra
// command line in ui/cli and the interactive pager in ui/tui.
package ui
